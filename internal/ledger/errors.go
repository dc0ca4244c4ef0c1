package ledger

import (
	"errors"
	"fmt"
)

// ErrCycleDetected reports a parent chain in the account hierarchy that
// revisits an account. The account editor is expected to prevent this, so
// hitting it means the snapshot is corrupt; the current render pass must
// surface it rather than loop or silently drop accounts.
var ErrCycleDetected = errors.New("account hierarchy contains a cycle")

// DraftError reports a split draft that cannot be committed, such as a
// posting aimed at a placeholder account.
type DraftError struct {
	AccountID int64
	Reason    string
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("split draft for account %d: %s", e.AccountID, e.Reason)
}

// ValidationError blocks submission of a transaction. When the failure is an
// unbalanced split set, Imbalance carries the signed sum of ValueMinor in
// transaction-currency minor units so callers can report "short by X".
type ValidationError struct {
	Reason    string
	Imbalance int64
}

func (e *ValidationError) Error() string {
	if e.Imbalance != 0 {
		return fmt.Sprintf("invalid transaction: %s (imbalance: %d)", e.Reason, e.Imbalance)
	}
	return fmt.Sprintf("invalid transaction: %s", e.Reason)
}
