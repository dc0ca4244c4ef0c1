package model

import "fmt"

// AccountType is the closed set of double-entry account categories.
type AccountType string

const (
	TypeAsset     AccountType = "ASSET"
	TypeLiability AccountType = "LIABILITY"
	TypeEquity    AccountType = "EQUITY"
	TypeIncome    AccountType = "INCOME"
	TypeExpense   AccountType = "EXPENSE"
)

// AccountTypes lists all valid account types in display order.
var AccountTypes = []AccountType{TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense}

func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense:
		return true
	}
	return false
}

// ParseAccountType converts a stored or user-entered string into an
// AccountType, rejecting anything outside the closed set.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid account type %q (must be one of ASSET, LIABILITY, EQUITY, INCOME, EXPENSE)", s)
	}
	return t, nil
}

// FullNameSep joins account names into a full path, e.g. "Expenses:Food".
const FullNameSep = ":"

// Account is one node of the account hierarchy. FullName is derived from the
// parent chain and kept in sync by the service layer. A placeholder account
// exists only to organize children and cannot receive postings; its displayed
// balance is the roll-up of its descendants.
type Account struct {
	ID          int64
	Name        string
	FullName    string
	Type        AccountType
	CommodityID int64
	ParentID    *int64
	Placeholder bool
	Description string
	Hidden      bool
}
