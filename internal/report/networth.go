package report

import "github.com/hance08/tally/internal/model"

// NetWorthSnapshot totals the balance-sheet side of the ledger. Liabilities
// carry their natural negative sign, so NetWorthMinor is a plain sum.
type NetWorthSnapshot struct {
	AssetsMinor      int64
	LiabilitiesMinor int64
	NetWorthMinor    int64
}

// NetWorth sums per-account own-postings balances over ASSET and LIABILITY
// accounts. Balances must already be expressed in a single reporting
// commodity by the caller.
func NetWorth(accounts []*model.Account, ownBalances map[int64]int64) NetWorthSnapshot {
	var snapshot NetWorthSnapshot
	for _, acc := range accounts {
		switch acc.Type {
		case model.TypeAsset:
			snapshot.AssetsMinor += ownBalances[acc.ID]
		case model.TypeLiability:
			snapshot.LiabilitiesMinor += ownBalances[acc.ID]
		case model.TypeEquity, model.TypeIncome, model.TypeExpense:
			// not part of net worth
		}
	}
	snapshot.NetWorthMinor = snapshot.AssetsMinor + snapshot.LiabilitiesMinor
	return snapshot
}
