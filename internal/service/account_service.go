package service

import (
	"fmt"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/money"
	"github.com/hance08/tally/internal/store"
)

type AccountService struct {
	repo   store.Repository
	config *config.Config
}

func NewAccountService(repo store.Repository, cfg *config.Config) *AccountService {
	return &AccountService{repo: repo, config: cfg}
}

// CreateAccountInput carries the user's intent; full name derivation and
// commodity resolution happen here.
type CreateAccountInput struct {
	Name           string
	Type           model.AccountType
	ParentFullName string // empty for a root account
	Currency       string // commodity mnemonic; empty uses the default
	Placeholder    bool
	Description    string
}

func (as *AccountService) CreateAccount(input CreateAccountInput) (*model.Account, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("invalid account type %q", input.Type)
	}

	currency := input.Currency
	if currency == "" {
		currency = as.config.Defaults.Currency
	}
	commodity, err := as.repo.GetCommodityByMnemonic(currency)
	if err != nil {
		return nil, fmt.Errorf("unknown currency %q: %w", currency, err)
	}

	account := &model.Account{
		Name:        input.Name,
		FullName:    input.Name,
		Type:        input.Type,
		CommodityID: commodity.ID,
		Placeholder: input.Placeholder,
		Description: input.Description,
	}

	if input.ParentFullName != "" {
		parent, err := as.repo.GetAccountByFullName(input.ParentFullName)
		if err != nil {
			return nil, fmt.Errorf("parent account not found: %w", err)
		}
		account.ParentID = &parent.ID
		account.FullName = parent.FullName + model.FullNameSep + input.Name
	}

	exists, err := as.repo.AccountExists(account.FullName)
	if err != nil {
		return nil, fmt.Errorf("failed to check account existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", store.ErrAccountExists, account.FullName)
	}

	newID, err := as.repo.CreateAccount(account)
	if err != nil {
		return nil, err
	}
	account.ID = newID
	return account, nil
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

func (as *AccountService) GetAccountByFullName(fullName string) (*model.Account, error) {
	return as.repo.GetAccountByFullName(fullName)
}

func (as *AccountService) CheckAccountExists(fullName string) (bool, error) {
	return as.repo.AccountExists(fullName)
}

// AccountTree loads the current account and balance snapshots and aggregates
// them into the displayed forest.
func (as *AccountService) AccountTree() ([]*ledger.TreeNode, error) {
	accounts, err := as.repo.GetAllAccounts()
	if err != nil {
		return nil, err
	}
	balances, err := as.repo.GetAllAccountBalances()
	if err != nil {
		return nil, err
	}
	return ledger.BuildAccountTree(accounts, balances)
}

// GetAccountBalanceFormatted renders an account's own-postings balance in
// its native commodity.
func (as *AccountService) GetAccountBalanceFormatted(account *model.Account) (string, error) {
	balance, err := as.repo.GetAccountBalance(account.ID)
	if err != nil {
		return "", err
	}
	commodity, err := as.repo.GetCommodityByID(account.CommodityID)
	if err != nil {
		return "", err
	}
	text, err := money.Encode(balance, commodity.Fraction)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", text, commodity.Mnemonic), nil
}

// DeleteAccount refuses to drop an account that still organizes children or
// holds postings.
func (as *AccountService) DeleteAccount(fullName string) error {
	account, err := as.repo.GetAccountByFullName(fullName)
	if err != nil {
		return err
	}

	hasChildren, err := as.repo.AccountHasChildren(account.ID)
	if err != nil {
		return err
	}
	if hasChildren {
		return fmt.Errorf("%w: %s has child accounts", store.ErrAccountInUse, fullName)
	}

	splitCount, err := as.repo.AccountSplitCount(account.ID)
	if err != nil {
		return err
	}
	if splitCount > 0 {
		return fmt.Errorf("%w: %s has %d postings", store.ErrAccountInUse, fullName, splitCount)
	}

	return as.repo.DeleteAccount(account.ID)
}

// EnsureDefaultCommodity creates the configured default currency on first
// run so accounts always have a commodity to reference.
func (as *AccountService) EnsureDefaultCommodity(fraction int64) (*model.Commodity, error) {
	mnemonic := as.config.Defaults.Currency

	commodity, err := as.repo.GetCommodityByMnemonic(mnemonic)
	if err == nil {
		return commodity, nil
	}

	if _, err := money.Decimals(fraction); err != nil {
		return nil, err
	}

	newID, err := as.repo.CreateCommodity(mnemonic, mnemonic, fraction)
	if err != nil {
		return nil, fmt.Errorf("failed to create default commodity: %w", err)
	}
	return &model.Commodity{ID: newID, Mnemonic: mnemonic, Name: mnemonic, Fraction: fraction}, nil
}

func (as *AccountService) GetAllCommodities() ([]*model.Commodity, error) {
	return as.repo.GetAllCommodities()
}

// DefaultCommodity resolves the configured default currency.
func (as *AccountService) DefaultCommodity() (*model.Commodity, error) {
	return as.repo.GetCommodityByMnemonic(as.config.Defaults.Currency)
}

// GetCommodityByMnemonic looks up a commodity by its code, e.g. "USD".
func (as *AccountService) GetCommodityByMnemonic(mnemonic string) (*model.Commodity, error) {
	return as.repo.GetCommodityByMnemonic(mnemonic)
}

// GetCommodityByID looks up a commodity by its row ID.
func (as *AccountService) GetCommodityByID(id int64) (*model.Commodity, error) {
	return as.repo.GetCommodityByID(id)
}
