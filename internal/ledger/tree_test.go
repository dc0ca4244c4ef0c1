package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/model"
)

func ptr(v int64) *int64 { return &v }

func TestBuildAccountTree_PlaceholderRollup(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "Expenses", Type: model.TypeExpense, Placeholder: true},
		{ID: 2, Name: "Food", Type: model.TypeExpense, ParentID: ptr(1)},
		{ID: 3, Name: "Rent", Type: model.TypeExpense, ParentID: ptr(1)},
	}
	balances := map[int64]int64{2: 2000, 3: 8000}

	forest, err := BuildAccountTree(accounts, balances)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	root := forest[0]
	assert.Equal(t, "Expenses", root.Account.Name)
	assert.Equal(t, int64(10000), root.DisplayedBalance)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "Food", root.Children[0].Account.Name)
	assert.Equal(t, int64(2000), root.Children[0].DisplayedBalance)
	assert.Equal(t, "Rent", root.Children[1].Account.Name)
	assert.Equal(t, int64(8000), root.Children[1].DisplayedBalance)
}

func TestBuildAccountTree_DeepRollup(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "Assets", Placeholder: true},
		{ID: 2, Name: "Cash", ParentID: ptr(1)},
		{ID: 3, Name: "Bank", Placeholder: true, ParentID: ptr(1)},
		{ID: 4, Name: "Checking", ParentID: ptr(3)},
		{ID: 5, Name: "Savings", ParentID: ptr(3)},
	}
	balances := map[int64]int64{2: 100, 4: 5000, 5: 20000}

	forest, err := BuildAccountTree(accounts, balances)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	assets := forest[0]
	assert.Equal(t, int64(25100), assets.DisplayedBalance)

	// Siblings sort ascending by name: Bank before Cash.
	require.Len(t, assets.Children, 2)
	assert.Equal(t, "Bank", assets.Children[0].Account.Name)
	assert.Equal(t, int64(25000), assets.Children[0].DisplayedBalance)
	assert.Equal(t, "Cash", assets.Children[1].Account.Name)
}

func TestBuildAccountTree_MultipleRootsDeterministicOrder(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "Income"},
		{ID: 2, Name: "Assets"},
		{ID: 3, Name: "Expenses"},
	}

	forest, err := BuildAccountTree(accounts, nil)
	require.NoError(t, err)
	require.Len(t, forest, 3)
	assert.Equal(t, "Assets", forest[0].Account.Name)
	assert.Equal(t, "Expenses", forest[1].Account.Name)
	assert.Equal(t, "Income", forest[2].Account.Name)
}

func TestBuildAccountTree_MissingParentBecomesRoot(t *testing.T) {
	accounts := []*model.Account{
		{ID: 2, Name: "Orphan", ParentID: ptr(99)},
	}

	forest, err := BuildAccountTree(accounts, map[int64]int64{2: 7})
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, "Orphan", forest[0].Account.Name)
	assert.Equal(t, int64(7), forest[0].DisplayedBalance)
}

func TestBuildAccountTree_CycleDetected(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "A", ParentID: ptr(2)},
		{ID: 2, Name: "B", ParentID: ptr(1)},
	}

	_, err := BuildAccountTree(accounts, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycleDetected))
}

func TestBuildAccountTree_SelfParentCycle(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "Loop", ParentID: ptr(1)},
	}

	_, err := BuildAccountTree(accounts, nil)
	assert.True(t, errors.Is(err, ErrCycleDetected))
}

func TestResolveFullNames(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "Expenses"},
		{ID: 2, Name: "Food", ParentID: ptr(1)},
		{ID: 3, Name: "Groceries", ParentID: ptr(2)},
		{ID: 4, Name: "Checking"},
	}

	require.NoError(t, ResolveFullNames(accounts))
	assert.Equal(t, "Expenses", accounts[0].FullName)
	assert.Equal(t, "Expenses:Food", accounts[1].FullName)
	assert.Equal(t, "Expenses:Food:Groceries", accounts[2].FullName)
	assert.Equal(t, "Checking", accounts[3].FullName)
}

func TestResolveFullNames_Cycle(t *testing.T) {
	accounts := []*model.Account{
		{ID: 1, Name: "A", ParentID: ptr(2)},
		{ID: 2, Name: "B", ParentID: ptr(1)},
	}
	err := ResolveFullNames(accounts)
	assert.True(t, errors.Is(err, ErrCycleDetected))
}
