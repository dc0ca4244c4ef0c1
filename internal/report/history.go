package report

import (
	"sort"

	"github.com/hance08/tally/internal/model"
)

// BalancePoint is one period's closing balance for an account.
type BalancePoint struct {
	Period       string
	BalanceMinor int64
}

// BalanceHistory produces a per-period running balance series for one
// account over the inclusive [from, to] range. Postings dated before the
// range seed the series, so each point is the true closing balance in the
// account's native commodity at the end of its bucket.
func BalanceHistory(accountID int64, txns []*model.Transaction, from, to string, groupBy GroupBy) []BalancePoint {
	var opening int64
	deltas := make(map[string]int64)

	for _, txn := range txns {
		if txn.Date > to {
			continue
		}
		for _, s := range txn.Splits {
			if s.AccountID != accountID {
				continue
			}
			if txn.Date < from {
				opening += s.QuantityMinor
				continue
			}
			deltas[periodKey(txn.Date, groupBy)] += s.QuantityMinor
		}
	}

	periods := make([]string, 0, len(deltas))
	for p := range deltas {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	points := make([]BalancePoint, 0, len(periods))
	running := opening
	for _, p := range periods {
		running += deltas[p]
		points = append(points, BalancePoint{Period: p, BalanceMinor: running})
	}
	return points
}
