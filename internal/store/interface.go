package store

import "github.com/hance08/tally/internal/model"

type Repository interface {
	// Commodity operations
	CreateCommodity(mnemonic, name string, fraction int64) (int64, error)
	GetCommodityByID(id int64) (*model.Commodity, error)
	GetCommodityByMnemonic(mnemonic string) (*model.Commodity, error)
	GetAllCommodities() ([]*model.Commodity, error)

	// Account operations
	CreateAccount(account *model.Account) (int64, error)
	GetAllAccounts() ([]*model.Account, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountByFullName(fullName string) (*model.Account, error)
	AccountExists(fullName string) (bool, error)
	DeleteAccount(id int64) error
	AccountHasChildren(id int64) (bool, error)
	AccountSplitCount(id int64) (int64, error)

	// Balance reads: own-postings sums of quantity_minor, in each
	// account's native commodity.
	GetAccountBalance(accountID int64) (int64, error)
	GetAllAccountBalances() (map[int64]int64, error)

	// Transaction operations
	CreateTransactionWithSplits(txn *model.Transaction) (int64, error)
	GetTransactionByID(id int64) (*model.Transaction, error)
	GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error)
	GetTransactionsByDateRange(from, to string) ([]*model.Transaction, error)
	GetAllTransactions(limit int) ([]*model.Transaction, error)
	UpdateTransactionWithSplits(txn *model.Transaction) error
	DeleteTransaction(id int64) error

	// ExecTx runs fn against a Repository bound to a single database
	// transaction, committing only when fn returns nil.
	ExecTx(fn func(Repository) error) error

	Close() error
}
