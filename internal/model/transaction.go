package model

// DateFormat is the calendar date layout used everywhere in the ledger.
const DateFormat = "2006-01-02"

// ReconState marks how far a split has progressed through reconciliation.
type ReconState string

const (
	NotReconciled ReconState = "n"
	Cleared       ReconState = "c"
	Reconciled    ReconState = "y"
)

// Split is one posting line of a transaction. ValueMinor is the amount in the
// transaction's currency; QuantityMinor is the same posting expressed in the
// posted account's native commodity. The two are equal whenever the account's
// commodity matches the transaction's. Sign convention: positive increases
// the account under normal double-entry rules, negative decreases it.
type Split struct {
	ID            int64
	TransactionID int64
	AccountID     int64
	ValueMinor    int64
	QuantityMinor int64
	Memo          string
	Reconciled    ReconState
}

// Transaction is an ordered set of at least two splits whose ValueMinor
// figures, all denominated in CurrencyID, must sum to exactly zero.
type Transaction struct {
	ID          int64
	Date        string // DateFormat
	Description string
	Notes       string
	CurrencyID  int64
	Splits      []Split
}

// RegisterEntry is a split projected for display inside one account's
// register. RunningBalance is the cumulative sum of QuantityMinor in
// chronological order, including this entry. CounterAccounts carries the full
// names of every other account on the same transaction so callers can decide
// how to summarize multi-split transfers.
type RegisterEntry struct {
	SplitID         int64
	TransactionID   int64
	Date            string
	Description     string
	Memo            string
	CounterAccounts []string
	QuantityMinor   int64
	Reconciled      ReconState
	RunningBalance  int64
}
