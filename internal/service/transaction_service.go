package service

import (
	"fmt"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
)

type TransactionService struct {
	repo   store.Repository
	config *config.Config
}

func NewTransactionService(repo store.Repository, cfg *config.Config) *TransactionService {
	return &TransactionService{repo: repo, config: cfg}
}

// TransactionInput is the drafting form of a transaction: a date, free text,
// a currency mnemonic and editable split drafts. Commit is all-or-nothing —
// nothing persists unless the whole transaction validates.
type TransactionInput struct {
	Date        string
	Description string
	Notes       string
	Currency    string // mnemonic; empty uses the default
	Drafts      []ledger.SplitDraft
}

// snapshot bundles the immutable account/commodity views every core call
// takes as explicit parameters.
type snapshot struct {
	accounts    map[int64]*model.Account
	commodities map[int64]*model.Commodity
}

func (ts *TransactionService) loadSnapshot() (*snapshot, error) {
	accounts, err := ts.repo.GetAllAccounts()
	if err != nil {
		return nil, err
	}
	commodities, err := ts.repo.GetAllCommodities()
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		accounts:    make(map[int64]*model.Account, len(accounts)),
		commodities: make(map[int64]*model.Commodity, len(commodities)),
	}
	for _, acc := range accounts {
		snap.accounts[acc.ID] = acc
	}
	for _, c := range commodities {
		snap.commodities[c.ID] = c
	}
	return snap, nil
}

// buildTransaction commits every draft against the snapshot and assembles
// the transaction, without validating the whole.
func (ts *TransactionService) buildTransaction(input TransactionInput, snap *snapshot) (*model.Transaction, error) {
	currency := input.Currency
	if currency == "" {
		currency = ts.config.Defaults.Currency
	}
	txCommodity, err := ts.repo.GetCommodityByMnemonic(currency)
	if err != nil {
		return nil, fmt.Errorf("unknown currency %q: %w", currency, err)
	}

	txn := &model.Transaction{
		Date:        input.Date,
		Description: input.Description,
		Notes:       input.Notes,
		CurrencyID:  txCommodity.ID,
	}

	for i, draft := range input.Drafts {
		account := snap.accounts[draft.AccountID]
		var acctCommodity *model.Commodity
		if account != nil {
			acctCommodity = snap.commodities[account.CommodityID]
		}
		split, err := ledger.CommitSplit(draft, account, txCommodity, acctCommodity)
		if err != nil {
			return nil, fmt.Errorf("split #%d: %w", i+1, err)
		}
		txn.Splits = append(txn.Splits, split)
	}

	return txn, nil
}

// CreateTransaction runs the full drafting pipeline: commit drafts, validate
// the transaction, persist. The validation gate is the only path to the
// write sink.
func (ts *TransactionService) CreateTransaction(input TransactionInput) (int64, error) {
	snap, err := ts.loadSnapshot()
	if err != nil {
		return 0, err
	}

	txn, err := ts.buildTransaction(input, snap)
	if err != nil {
		return 0, err
	}

	if err := ledger.ValidateTransaction(txn, snap.accounts, snap.commodities); err != nil {
		return 0, err
	}

	var txnID int64
	err = ts.repo.ExecTx(func(repo store.Repository) error {
		var err error
		txnID, err = repo.CreateTransactionWithSplits(txn)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txnID, nil
}

// UpdateTransaction re-validates an edited transaction and replaces it
// atomically.
func (ts *TransactionService) UpdateTransaction(txnID int64, input TransactionInput) error {
	if _, err := ts.repo.GetTransactionByID(txnID); err != nil {
		return err
	}

	snap, err := ts.loadSnapshot()
	if err != nil {
		return err
	}

	txn, err := ts.buildTransaction(input, snap)
	if err != nil {
		return err
	}
	txn.ID = txnID

	if err := ledger.ValidateTransaction(txn, snap.accounts, snap.commodities); err != nil {
		return err
	}

	return ts.repo.ExecTx(func(repo store.Repository) error {
		return repo.UpdateTransactionWithSplits(txn)
	})
}

// DecodeTransaction fetches a persisted transaction back into its editable
// drafting form, for the edit → re-validate → resubmit cycle.
func (ts *TransactionService) DecodeTransaction(txnID int64) (*model.Transaction, TransactionInput, error) {
	txn, err := ts.repo.GetTransactionByID(txnID)
	if err != nil {
		return nil, TransactionInput{}, err
	}

	snap, err := ts.loadSnapshot()
	if err != nil {
		return nil, TransactionInput{}, err
	}
	txCommodity, ok := snap.commodities[txn.CurrencyID]
	if !ok {
		return nil, TransactionInput{}, fmt.Errorf("transaction %d references unknown currency %d", txnID, txn.CurrencyID)
	}

	input := TransactionInput{
		Date:        txn.Date,
		Description: txn.Description,
		Notes:       txn.Notes,
		Currency:    txCommodity.Mnemonic,
	}
	for _, split := range txn.Splits {
		account, ok := snap.accounts[split.AccountID]
		if !ok {
			return nil, TransactionInput{}, fmt.Errorf("split %d references unknown account %d", split.ID, split.AccountID)
		}
		acctCommodity, ok := snap.commodities[account.CommodityID]
		if !ok {
			return nil, TransactionInput{}, fmt.Errorf("account %q references unknown commodity %d", account.FullName, account.CommodityID)
		}
		draft, err := ledger.DraftFromSplit(split, txCommodity, acctCommodity)
		if err != nil {
			return nil, TransactionInput{}, err
		}
		input.Drafts = append(input.Drafts, draft)
	}

	return txn, input, nil
}

func (ts *TransactionService) GetTransactionByID(txnID int64) (*model.Transaction, error) {
	return ts.repo.GetTransactionByID(txnID)
}

func (ts *TransactionService) GetRecentTransactions(limit int) ([]*model.Transaction, error) {
	txns, err := ts.repo.GetAllTransactions(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return txns, nil
}

func (ts *TransactionService) DeleteTransaction(txnID int64) error {
	return ts.repo.DeleteTransaction(txnID)
}

// Register produces one account's ordered postings with a running balance.
// The opening offset is explicit; pass 0 to start from nothing.
func (ts *TransactionService) Register(accountFullName string, opening int64) ([]*model.RegisterEntry, *model.Account, *model.Commodity, error) {
	account, err := ts.repo.GetAccountByFullName(accountFullName)
	if err != nil {
		return nil, nil, nil, err
	}
	commodity, err := ts.repo.GetCommodityByID(account.CommodityID)
	if err != nil {
		return nil, nil, nil, err
	}

	txns, err := ts.repo.GetTransactionsByAccount(account.ID, 0)
	if err != nil {
		return nil, nil, nil, err
	}

	snap, err := ts.loadSnapshot()
	if err != nil {
		return nil, nil, nil, err
	}

	entries := ledger.BuildRegister(account.ID, txns, snap.accounts, opening)
	return entries, account, commodity, nil
}

// Imbalance exposes the current signed imbalance of a draft set so the entry
// UI can display "short by X" while the user is still typing.
func (ts *TransactionService) Imbalance(input TransactionInput) (int64, error) {
	snap, err := ts.loadSnapshot()
	if err != nil {
		return 0, err
	}
	txn, err := ts.buildTransaction(input, snap)
	if err != nil {
		return 0, err
	}
	return ledger.Imbalance(txn.Splits), nil
}
