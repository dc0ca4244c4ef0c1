package store

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/model"
)

// newTestStore opens an in-memory database and runs the real migrations from
// the repository root.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:", os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedLedger(t *testing.T, s *Store) (usdID int64, checkingID int64, foodID int64) {
	t.Helper()

	usdID, err := s.CreateCommodity("USD", "US Dollar", 100)
	require.NoError(t, err)

	expensesID, err := s.CreateAccount(&model.Account{
		Name: "Expenses", FullName: "Expenses", Type: model.TypeExpense,
		CommodityID: usdID, Placeholder: true,
	})
	require.NoError(t, err)

	checkingID, err = s.CreateAccount(&model.Account{
		Name: "Checking", FullName: "Assets:Checking", Type: model.TypeAsset,
		CommodityID: usdID,
	})
	require.NoError(t, err)

	foodID, err = s.CreateAccount(&model.Account{
		Name: "Food", FullName: "Expenses:Food", Type: model.TypeExpense,
		CommodityID: usdID, ParentID: &expensesID,
	})
	require.NoError(t, err)

	return usdID, checkingID, foodID
}

func TestCommodityRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateCommodity("EUR", "Euro", 100)
	require.NoError(t, err)

	byID, err := s.GetCommodityByID(id)
	require.NoError(t, err)
	assert.Equal(t, "EUR", byID.Mnemonic)
	assert.Equal(t, int64(100), byID.Fraction)

	byMnemonic, err := s.GetCommodityByMnemonic("EUR")
	require.NoError(t, err)
	assert.Equal(t, id, byMnemonic.ID)

	_, err = s.CreateCommodity("EUR", "Euro again", 100)
	assert.True(t, errors.Is(err, ErrCommodityExists))

	_, err = s.GetCommodityByMnemonic("XXX")
	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestAccountRoundTrip(t *testing.T) {
	s := newTestStore(t)
	_, checkingID, foodID := seedLedger(t, s)

	acc, err := s.GetAccountByID(foodID)
	require.NoError(t, err)
	assert.Equal(t, "Food", acc.Name)
	assert.Equal(t, "Expenses:Food", acc.FullName)
	assert.Equal(t, model.TypeExpense, acc.Type)
	require.NotNil(t, acc.ParentID)

	byName, err := s.GetAccountByFullName("Assets:Checking")
	require.NoError(t, err)
	assert.Equal(t, checkingID, byName.ID)
	assert.Nil(t, byName.ParentID)

	exists, err := s.AccountExists("Expenses:Food")
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := s.GetAllAccounts()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = s.CreateAccount(&model.Account{
		Name: "Food", FullName: "Expenses:Food", Type: model.TypeExpense, CommodityID: 1,
	})
	assert.True(t, errors.Is(err, ErrAccountExists))
}

func TestTransactionLifecycle(t *testing.T) {
	s := newTestStore(t)
	usdID, checkingID, foodID := seedLedger(t, s)

	txnID, err := s.CreateTransactionWithSplits(&model.Transaction{
		Date:        "2024-03-01",
		Description: "groceries",
		CurrencyID:  usdID,
		Splits: []model.Split{
			{AccountID: foodID, ValueMinor: 2500, QuantityMinor: 2500, Reconciled: model.NotReconciled},
			{AccountID: checkingID, ValueMinor: -2500, QuantityMinor: -2500, Reconciled: model.NotReconciled},
		},
	})
	require.NoError(t, err)

	txn, err := s.GetTransactionByID(txnID)
	require.NoError(t, err)
	assert.Equal(t, "groceries", txn.Description)
	require.Len(t, txn.Splits, 2)
	assert.Equal(t, int64(2500), txn.Splits[0].ValueMinor)

	balance, err := s.GetAccountBalance(checkingID)
	require.NoError(t, err)
	assert.Equal(t, int64(-2500), balance)

	balances, err := s.GetAllAccountBalances()
	require.NoError(t, err)
	assert.Equal(t, int64(2500), balances[foodID])

	// Editing replaces the whole split set.
	txn.Description = "groceries (edited)"
	txn.Splits = []model.Split{
		{AccountID: foodID, ValueMinor: 3000, QuantityMinor: 3000, Reconciled: model.NotReconciled},
		{AccountID: checkingID, ValueMinor: -3000, QuantityMinor: -3000, Reconciled: model.NotReconciled},
	}
	require.NoError(t, s.UpdateTransactionWithSplits(txn))

	edited, err := s.GetTransactionByID(txnID)
	require.NoError(t, err)
	assert.Equal(t, "groceries (edited)", edited.Description)
	require.Len(t, edited.Splits, 2)
	assert.Equal(t, int64(3000), edited.Splits[0].ValueMinor)

	byAccount, err := s.GetTransactionsByAccount(checkingID, 0)
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Len(t, byAccount[0].Splits, 2)

	require.NoError(t, s.DeleteTransaction(txnID))
	_, err = s.GetTransactionByID(txnID)
	assert.True(t, errors.Is(err, ErrRecordNotFound))

	count, err := s.AccountSplitCount(foodID)
	require.NoError(t, err)
	assert.Zero(t, count, "splits must cascade with the transaction")
}

func TestTransactionQueriesOrdering(t *testing.T) {
	s := newTestStore(t)
	usdID, checkingID, foodID := seedLedger(t, s)

	for _, date := range []string{"2024-01-05", "2024-01-01", "2024-01-03"} {
		_, err := s.CreateTransactionWithSplits(&model.Transaction{
			Date: date, Description: "txn " + date, CurrencyID: usdID,
			Splits: []model.Split{
				{AccountID: foodID, ValueMinor: 100, QuantityMinor: 100, Reconciled: model.NotReconciled},
				{AccountID: checkingID, ValueMinor: -100, QuantityMinor: -100, Reconciled: model.NotReconciled},
			},
		})
		require.NoError(t, err)
	}

	asc, err := s.GetTransactionsByAccount(checkingID, 0)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, "2024-01-01", asc[0].Date)
	assert.Equal(t, "2024-01-05", asc[2].Date)

	desc, err := s.GetAllTransactions(2)
	require.NoError(t, err)
	require.Len(t, desc, 2)
	assert.Equal(t, "2024-01-05", desc[0].Date)

	ranged, err := s.GetTransactionsByDateRange("2024-01-02", "2024-01-04")
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "2024-01-03", ranged[0].Date)
}

func TestExecTx(t *testing.T) {
	s := newTestStore(t)
	usdID, checkingID, foodID := seedLedger(t, s)

	txn := &model.Transaction{
		Date: "2024-03-01", Description: "atomic", CurrencyID: usdID,
		Splits: []model.Split{
			{AccountID: foodID, ValueMinor: 100, QuantityMinor: 100, Reconciled: model.NotReconciled},
			{AccountID: checkingID, ValueMinor: -100, QuantityMinor: -100, Reconciled: model.NotReconciled},
		},
	}

	boom := errors.New("boom")
	err := s.ExecTx(func(repo Repository) error {
		if _, err := repo.CreateTransactionWithSplits(txn); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := s.GetAllTransactions(0)
	require.NoError(t, err)
	assert.Empty(t, all, "rolled-back transaction must not persist")

	var txnID int64
	require.NoError(t, s.ExecTx(func(repo Repository) error {
		var err error
		txnID, err = repo.CreateTransactionWithSplits(txn)
		return err
	}))

	persisted, err := s.GetTransactionByID(txnID)
	require.NoError(t, err)
	assert.Len(t, persisted.Splits, 2)
}

func TestDeleteAccountGuards(t *testing.T) {
	s := newTestStore(t)
	usdID, checkingID, foodID := seedLedger(t, s)

	expenses, err := s.GetAccountByFullName("Expenses")
	require.NoError(t, err)

	hasChildren, err := s.AccountHasChildren(expenses.ID)
	require.NoError(t, err)
	assert.True(t, hasChildren)

	_, err = s.CreateTransactionWithSplits(&model.Transaction{
		Date: "2024-03-01", CurrencyID: usdID,
		Splits: []model.Split{
			{AccountID: foodID, ValueMinor: 100, QuantityMinor: 100, Reconciled: model.NotReconciled},
			{AccountID: checkingID, ValueMinor: -100, QuantityMinor: -100, Reconciled: model.NotReconciled},
		},
	})
	require.NoError(t, err)

	count, err := s.AccountSplitCount(foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
