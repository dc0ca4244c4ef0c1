package report

import (
	"sort"

	"github.com/hance08/tally/internal/model"
)

// PnLRow is one income or expense account's total over a period bucket.
// AmountMinor is display-signed: income totals are negated so revenue reads
// positive, expense totals keep their natural double-entry sign.
type PnLRow struct {
	Account     *model.Account
	Period      string
	AmountMinor int64
}

// PnLReport is a profit-and-loss statement over [From, To].
type PnLReport struct {
	Rows           []PnLRow
	NetIncomeMinor int64 // revenue minus expenses
	From, To       string
}

// PnL totals QuantityMinor per INCOME/EXPENSE account and period bucket over
// the inclusive [from, to] date range. Rows are ordered by account full name
// then period so repeated runs are reproducible. Amounts are per-account
// native commodity; NetIncomeMinor sums them as given.
func PnL(txns []*model.Transaction, accountsByID map[int64]*model.Account, from, to string, groupBy GroupBy) *PnLReport {
	type key struct {
		accountID int64
		period    string
	}
	totals := make(map[key]int64)

	for _, txn := range txns {
		if txn.Date < from || txn.Date > to {
			continue
		}
		period := periodKey(txn.Date, groupBy)
		for _, s := range txn.Splits {
			acc, ok := accountsByID[s.AccountID]
			if !ok {
				continue
			}
			switch acc.Type {
			case model.TypeIncome, model.TypeExpense:
				totals[key{acc.ID, period}] += s.QuantityMinor
			case model.TypeAsset, model.TypeLiability, model.TypeEquity:
				// balance-sheet accounts do not appear on a P&L
			}
		}
	}

	report := &PnLReport{From: from, To: to}
	for k, total := range totals {
		acc := accountsByID[k.accountID]
		amount := total
		switch acc.Type {
		case model.TypeIncome:
			// Income posts as credits (negative); flip for display.
			amount = -total
			report.NetIncomeMinor += amount
		case model.TypeExpense:
			report.NetIncomeMinor -= amount
		case model.TypeAsset, model.TypeLiability, model.TypeEquity:
		}
		report.Rows = append(report.Rows, PnLRow{Account: acc, Period: k.period, AmountMinor: amount})
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].Account.FullName != report.Rows[j].Account.FullName {
			return report.Rows[i].Account.FullName < report.Rows[j].Account.FullName
		}
		return report.Rows[i].Period < report.Rows[j].Period
	})
	return report
}
