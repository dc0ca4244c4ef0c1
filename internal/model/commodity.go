package model

// Commodity is a currency (or other tradeable unit) that accounts and
// transactions are denominated in. Fraction is the number of minor units per
// major unit and must be a positive power of 10 (100 = two decimal places,
// 1 = no fractional part). A commodity is immutable once splits reference it.
type Commodity struct {
	ID       int64
	Mnemonic string // e.g. "USD"
	Name     string
	Fraction int64
}
