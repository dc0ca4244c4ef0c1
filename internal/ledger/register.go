package ledger

import (
	"sort"

	"github.com/hance08/tally/internal/model"
)

// BuildRegister projects every split of the given transactions that posts to
// accountID into an ordered register with a running balance. Ordering is by
// transaction date ascending, then transaction ID, then split ID, so the
// sequence is deterministic across calls with identical input. The running
// balance accumulates QuantityMinor (the account's native commodity) starting
// from the explicit opening offset; each entry includes itself.
func BuildRegister(accountID int64, txns []*model.Transaction, accountsByID map[int64]*model.Account, opening int64) []*model.RegisterEntry {
	var entries []*model.RegisterEntry
	for _, txn := range txns {
		for _, s := range txn.Splits {
			if s.AccountID != accountID {
				continue
			}
			entries = append(entries, &model.RegisterEntry{
				SplitID:         s.ID,
				TransactionID:   txn.ID,
				Date:            txn.Date,
				Description:     txn.Description,
				Memo:            s.Memo,
				CounterAccounts: counterAccounts(txn, accountID, accountsByID),
				QuantityMinor:   s.QuantityMinor,
				Reconciled:      s.Reconciled,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		if entries[i].TransactionID != entries[j].TransactionID {
			return entries[i].TransactionID < entries[j].TransactionID
		}
		return entries[i].SplitID < entries[j].SplitID
	})

	running := opening
	for _, e := range entries {
		running += e.QuantityMinor
		e.RunningBalance = running
	}
	return entries
}

// counterAccounts lists the full names of the other accounts on the same
// transaction, deduplicated in split order. With exactly one counter-account
// the register shows it directly; with more the caller decides how to
// summarize.
func counterAccounts(txn *model.Transaction, accountID int64, accountsByID map[int64]*model.Account) []string {
	var names []string
	seen := make(map[int64]bool)
	for _, s := range txn.Splits {
		if s.AccountID == accountID || seen[s.AccountID] {
			continue
		}
		seen[s.AccountID] = true
		if acc, ok := accountsByID[s.AccountID]; ok {
			if acc.FullName != "" {
				names = append(names, acc.FullName)
			} else {
				names = append(names, acc.Name)
			}
		} else {
			names = append(names, "(unknown)")
		}
	}
	return names
}
