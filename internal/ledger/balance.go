package ledger

import (
	"time"

	"github.com/hance08/tally/internal/model"
)

// Imbalance returns the signed sum of ValueMinor across splits. Zero means
// the split set honors the double-entry invariant.
func Imbalance(splits []model.Split) int64 {
	var total int64
	for _, s := range splits {
		total += s.ValueMinor
	}
	return total
}

// IsBalanced reports whether the splits sum to exactly zero. Minor units are
// exact integers, so there is no tolerance.
func IsBalanced(splits []model.Split) bool {
	return Imbalance(splits) == 0
}

// ValidateTransaction is the submission gate: a transaction that fails it
// must never be persisted or used in balance computations. Checks, in order:
// at least two splits, a valid calendar date, a known currency, known and
// postable accounts, and a zero sum of ValueMinor. Account and commodity
// snapshots are passed explicitly; the core never reads ambient state.
func ValidateTransaction(txn *model.Transaction, accountsByID map[int64]*model.Account, commoditiesByID map[int64]*model.Commodity) error {
	if txn == nil {
		return &ValidationError{Reason: "transaction is nil"}
	}
	if len(txn.Splits) < 2 {
		return &ValidationError{Reason: "a transaction requires at least 2 splits"}
	}
	if _, err := time.Parse(model.DateFormat, txn.Date); err != nil {
		return &ValidationError{Reason: "date must be a valid YYYY-MM-DD calendar date"}
	}
	if _, ok := commoditiesByID[txn.CurrencyID]; !ok {
		return &ValidationError{Reason: "transaction currency does not exist"}
	}

	for _, s := range txn.Splits {
		account, ok := accountsByID[s.AccountID]
		if !ok {
			return &ValidationError{Reason: "split references an unknown account"}
		}
		if account.Placeholder {
			return &ValidationError{Reason: "split posts to placeholder account " + account.FullName}
		}
	}

	if total := Imbalance(txn.Splits); total != 0 {
		return &ValidationError{Reason: "splits do not sum to zero", Imbalance: total}
	}

	return nil
}
