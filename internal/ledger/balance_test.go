package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/model"
)

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   bool
	}{
		{name: "two balanced splits", values: []int64{1500, -1500}, want: true},
		{name: "unbalanced pair", values: []int64{1500, -1400}, want: false},
		{name: "multi-way balanced", values: []int64{1000, -400, -600}, want: true},
		{name: "empty", values: nil, want: true},
		{name: "all zero", values: []int64{0, 0}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := make([]model.Split, len(tt.values))
			for i, v := range tt.values {
				splits[i] = model.Split{ValueMinor: v}
			}
			assert.Equal(t, tt.want, IsBalanced(splits))
			assert.Equal(t, tt.want, Imbalance(splits) == 0)
		})
	}
}

func TestImbalance(t *testing.T) {
	splits := []model.Split{{ValueMinor: 1500}, {ValueMinor: -1400}}
	assert.Equal(t, int64(100), Imbalance(splits))
}

func validatorFixtures() (map[int64]*model.Account, map[int64]*model.Commodity) {
	accounts := map[int64]*model.Account{
		1: {ID: 1, Name: "Checking", FullName: "Assets:Checking", Type: model.TypeAsset, CommodityID: 1},
		2: {ID: 2, Name: "Food", FullName: "Expenses:Food", Type: model.TypeExpense, CommodityID: 1},
		3: {ID: 3, Name: "Expenses", FullName: "Expenses", Type: model.TypeExpense, CommodityID: 1, Placeholder: true},
	}
	commodities := map[int64]*model.Commodity{
		1: {ID: 1, Mnemonic: "USD", Fraction: 100},
	}
	return accounts, commodities
}

func TestValidateTransaction(t *testing.T) {
	accounts, commodities := validatorFixtures()

	valid := func() *model.Transaction {
		return &model.Transaction{
			Date:        "2024-01-15",
			Description: "groceries",
			CurrencyID:  1,
			Splits: []model.Split{
				{AccountID: 2, ValueMinor: 1500, QuantityMinor: 1500},
				{AccountID: 1, ValueMinor: -1500, QuantityMinor: -1500},
			},
		}
	}

	t.Run("valid transaction passes", func(t *testing.T) {
		require.NoError(t, ValidateTransaction(valid(), accounts, commodities))
	})

	t.Run("fewer than two splits", func(t *testing.T) {
		txn := valid()
		txn.Splits = txn.Splits[:1]
		var vErr *ValidationError
		require.ErrorAs(t, ValidateTransaction(txn, accounts, commodities), &vErr)
	})

	t.Run("unbalanced carries imbalance", func(t *testing.T) {
		txn := valid()
		txn.Splits[0].ValueMinor = 1510
		var vErr *ValidationError
		require.ErrorAs(t, ValidateTransaction(txn, accounts, commodities), &vErr)
		assert.Equal(t, int64(10), vErr.Imbalance)
	})

	t.Run("placeholder posting rejected", func(t *testing.T) {
		txn := valid()
		txn.Splits[0].AccountID = 3
		var vErr *ValidationError
		require.ErrorAs(t, ValidateTransaction(txn, accounts, commodities), &vErr)
		assert.Zero(t, vErr.Imbalance)
	})

	t.Run("unknown account", func(t *testing.T) {
		txn := valid()
		txn.Splits[1].AccountID = 42
		var vErr *ValidationError
		require.ErrorAs(t, ValidateTransaction(txn, accounts, commodities), &vErr)
	})

	t.Run("unknown currency", func(t *testing.T) {
		txn := valid()
		txn.CurrencyID = 9
		var vErr *ValidationError
		require.ErrorAs(t, ValidateTransaction(txn, accounts, commodities), &vErr)
	})

	t.Run("malformed date", func(t *testing.T) {
		for _, date := range []string{"", "2024-13-01", "01/15/2024", "2024-02-30"} {
			txn := valid()
			txn.Date = date
			var vErr *ValidationError
			require.ErrorAs(t, ValidateTransaction(txn, accounts, commodities), &vErr, "date %q", date)
		}
	})
}
