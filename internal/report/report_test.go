package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/model"
)

func fixtures() (map[int64]*model.Account, []*model.Transaction) {
	accounts := map[int64]*model.Account{
		1: {ID: 1, Name: "Checking", FullName: "Assets:Checking", Type: model.TypeAsset, CommodityID: 1},
		2: {ID: 2, Name: "Salary", FullName: "Income:Salary", Type: model.TypeIncome, CommodityID: 1},
		3: {ID: 3, Name: "Food", FullName: "Expenses:Food", Type: model.TypeExpense, CommodityID: 1},
		4: {ID: 4, Name: "Visa", FullName: "Liabilities:Visa", Type: model.TypeLiability, CommodityID: 1},
	}

	txns := []*model.Transaction{
		{
			ID: 1, Date: "2024-01-10", Description: "paycheck", CurrencyID: 1,
			Splits: []model.Split{
				{AccountID: 1, ValueMinor: 500000, QuantityMinor: 500000},
				{AccountID: 2, ValueMinor: -500000, QuantityMinor: -500000},
			},
		},
		{
			ID: 2, Date: "2024-01-20", Description: "groceries", CurrencyID: 1,
			Splits: []model.Split{
				{AccountID: 3, ValueMinor: 12000, QuantityMinor: 12000},
				{AccountID: 1, ValueMinor: -12000, QuantityMinor: -12000},
			},
		},
		{
			ID: 3, Date: "2024-02-05", Description: "dining", CurrencyID: 1,
			Splits: []model.Split{
				{AccountID: 3, ValueMinor: 4000, QuantityMinor: 4000},
				{AccountID: 4, ValueMinor: -4000, QuantityMinor: -4000},
			},
		},
	}
	return accounts, txns
}

func TestPnL_MonthlyGrouping(t *testing.T) {
	accounts, txns := fixtures()

	report := PnL(txns, accounts, "2024-01-01", "2024-12-31", ByMonth)
	require.Len(t, report.Rows, 3)

	// Rows sort by full name, then period.
	assert.Equal(t, "Expenses:Food", report.Rows[0].Account.FullName)
	assert.Equal(t, "2024-01-01", report.Rows[0].Period)
	assert.Equal(t, int64(12000), report.Rows[0].AmountMinor)

	assert.Equal(t, "Expenses:Food", report.Rows[1].Account.FullName)
	assert.Equal(t, "2024-02-01", report.Rows[1].Period)
	assert.Equal(t, int64(4000), report.Rows[1].AmountMinor)

	// Income is display-signed: credits flip to positive revenue.
	assert.Equal(t, "Income:Salary", report.Rows[2].Account.FullName)
	assert.Equal(t, int64(500000), report.Rows[2].AmountMinor)

	assert.Equal(t, int64(484000), report.NetIncomeMinor)
}

func TestPnL_DateRangeFilter(t *testing.T) {
	accounts, txns := fixtures()

	report := PnL(txns, accounts, "2024-02-01", "2024-02-29", ByDay)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2024-02-05", report.Rows[0].Period)
	assert.Equal(t, int64(4000), report.Rows[0].AmountMinor)
	assert.Equal(t, int64(-4000), report.NetIncomeMinor)
}

func TestNetWorth(t *testing.T) {
	accounts, _ := fixtures()
	flat := make([]*model.Account, 0, len(accounts))
	for _, acc := range accounts {
		flat = append(flat, acc)
	}

	balances := map[int64]int64{
		1: 488000, // checking
		2: -500000,
		3: 16000,
		4: -4000, // visa debt
	}

	snapshot := NetWorth(flat, balances)
	assert.Equal(t, int64(488000), snapshot.AssetsMinor)
	assert.Equal(t, int64(-4000), snapshot.LiabilitiesMinor)
	assert.Equal(t, int64(484000), snapshot.NetWorthMinor)
}

func TestBalanceHistory(t *testing.T) {
	_, txns := fixtures()

	points := BalanceHistory(1, txns, "2024-01-15", "2024-12-31", ByMonth)
	require.Len(t, points, 1)
	// The January paycheck (before the range) seeds the opening balance;
	// only the groceries withdrawal lands inside the range.
	assert.Equal(t, "2024-01-01", points[0].Period)
	assert.Equal(t, int64(488000), points[0].BalanceMinor)
}

func TestBalanceHistory_DailyAcrossRange(t *testing.T) {
	_, txns := fixtures()

	points := BalanceHistory(1, txns, "2024-01-01", "2024-12-31", ByDay)
	require.Len(t, points, 2)
	assert.Equal(t, BalancePoint{Period: "2024-01-10", BalanceMinor: 500000}, points[0])
	assert.Equal(t, BalancePoint{Period: "2024-01-20", BalanceMinor: 488000}, points[1])
}

func TestParseGroupBy(t *testing.T) {
	for _, ok := range []string{"day", "month", "year"} {
		g, err := ParseGroupBy(ok)
		require.NoError(t, err)
		assert.Equal(t, GroupBy(ok), g)
	}
	_, err := ParseGroupBy("week")
	assert.Error(t, err)
}
