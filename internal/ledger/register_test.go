package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/model"
)

func registerFixtures() (map[int64]*model.Account, []*model.Transaction) {
	accounts := map[int64]*model.Account{
		1: {ID: 1, Name: "Checking", FullName: "Assets:Checking"},
		2: {ID: 2, Name: "Food", FullName: "Expenses:Food"},
		3: {ID: 3, Name: "Rent", FullName: "Expenses:Rent"},
		4: {ID: 4, Name: "Salary", FullName: "Income:Salary"},
	}

	txns := []*model.Transaction{
		{
			ID: 101, Date: "2024-01-05", Description: "groceries", CurrencyID: 1,
			Splits: []model.Split{
				{ID: 1, AccountID: 1, ValueMinor: 100, QuantityMinor: 100},
				{ID: 2, AccountID: 2, ValueMinor: -100, QuantityMinor: -100},
			},
		},
		{
			ID: 102, Date: "2024-01-01", Description: "paycheck", CurrencyID: 1,
			Splits: []model.Split{
				{ID: 3, AccountID: 1, ValueMinor: 50, QuantityMinor: 50},
				{ID: 4, AccountID: 4, ValueMinor: -50, QuantityMinor: -50},
			},
		},
		{
			ID: 103, Date: "2024-01-03", Description: "rent share", CurrencyID: 1,
			Splits: []model.Split{
				{ID: 5, AccountID: 1, ValueMinor: -20, QuantityMinor: -20},
				{ID: 6, AccountID: 3, ValueMinor: 12, QuantityMinor: 12},
				{ID: 7, AccountID: 2, ValueMinor: 8, QuantityMinor: 8},
			},
		},
	}
	return accounts, txns
}

func TestBuildRegister_OrderAndRunningBalance(t *testing.T) {
	accounts, txns := registerFixtures()

	entries := BuildRegister(1, txns, accounts, 0)
	require.Len(t, entries, 3)

	assert.Equal(t, "2024-01-01", entries[0].Date)
	assert.Equal(t, int64(50), entries[0].RunningBalance)
	assert.Equal(t, "2024-01-03", entries[1].Date)
	assert.Equal(t, int64(30), entries[1].RunningBalance)
	assert.Equal(t, "2024-01-05", entries[2].Date)
	assert.Equal(t, int64(130), entries[2].RunningBalance)
}

func TestBuildRegister_OpeningBalanceOffset(t *testing.T) {
	accounts, txns := registerFixtures()

	entries := BuildRegister(1, txns, accounts, 1000)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(1050), entries[0].RunningBalance)
	assert.Equal(t, int64(1130), entries[2].RunningBalance)
}

func TestBuildRegister_CounterAccounts(t *testing.T) {
	accounts, txns := registerFixtures()

	entries := BuildRegister(1, txns, accounts, 0)
	require.Len(t, entries, 3)

	// Single counter-split: show its full name directly.
	assert.Equal(t, []string{"Income:Salary"}, entries[0].CounterAccounts)
	// Multi-way transaction: every counter-account is exposed so the caller
	// can summarize (e.g. "multiple") instead of the core picking one.
	assert.Equal(t, []string{"Expenses:Rent", "Expenses:Food"}, entries[1].CounterAccounts)
	assert.Equal(t, []string{"Expenses:Food"}, entries[2].CounterAccounts)
}

func TestBuildRegister_DateTiesBrokenByIDs(t *testing.T) {
	accounts := map[int64]*model.Account{1: {ID: 1, Name: "Checking"}}
	txns := []*model.Transaction{
		{ID: 7, Date: "2024-02-01", Splits: []model.Split{{ID: 9, AccountID: 1, QuantityMinor: 10}}},
		{ID: 5, Date: "2024-02-01", Splits: []model.Split{
			{ID: 3, AccountID: 1, QuantityMinor: 1},
			{ID: 8, AccountID: 1, QuantityMinor: 2},
		}},
	}

	entries := BuildRegister(1, txns, accounts, 0)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(5), entries[0].TransactionID)
	assert.Equal(t, int64(3), entries[0].SplitID)
	assert.Equal(t, int64(8), entries[1].SplitID)
	assert.Equal(t, int64(7), entries[2].TransactionID)
	assert.Equal(t, int64(13), entries[2].RunningBalance)
}

func TestBuildRegister_NoPostings(t *testing.T) {
	accounts, txns := registerFixtures()
	entries := BuildRegister(99, txns, accounts, 500)
	assert.Empty(t, entries)
}
