// Package ledger holds the integrity core of the bookkeeping tool: split
// drafting, the double-entry balance gate, account tree aggregation and
// register sequencing. Every function is a pure computation over snapshot
// parameters; nothing here reads ambient state or performs I/O.
package ledger

import (
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/money"
)

// SplitDraft is the human-editable form of a posting line: decimal strings
// instead of minor units. ValueStr is denominated in the transaction's
// currency, QuantityStr in the posted account's native commodity. When the
// two commodities match, QuantityStr is ignored and the quantity is forced
// equal to the value.
type SplitDraft struct {
	SplitID     int64 // 0 for a new split
	AccountID   int64
	ValueStr    string
	QuantityStr string
	Memo        string
	Reconciled  model.ReconState
}

// CommitSplit converts a draft into a committed split. The account must be
// postable (not a placeholder) and must match the draft's AccountID. Empty
// amount strings decode as zero.
func CommitSplit(d SplitDraft, account *model.Account, txCommodity, acctCommodity *model.Commodity) (model.Split, error) {
	if account == nil || account.ID != d.AccountID {
		return model.Split{}, &DraftError{AccountID: d.AccountID, Reason: "unknown account"}
	}
	if account.Placeholder {
		return model.Split{}, &DraftError{AccountID: d.AccountID, Reason: "placeholder accounts cannot receive postings"}
	}
	if acctCommodity == nil || account.CommodityID != acctCommodity.ID {
		return model.Split{}, &DraftError{AccountID: d.AccountID, Reason: "account commodity does not match snapshot"}
	}

	value, err := money.Decode(d.ValueStr, txCommodity.Fraction)
	if err != nil {
		return model.Split{}, err
	}

	// Same-currency splits always post quantity == value; the quantity
	// field only means something across a currency boundary.
	quantity := value
	if acctCommodity.ID != txCommodity.ID {
		quantity, err = money.Decode(d.QuantityStr, acctCommodity.Fraction)
		if err != nil {
			return model.Split{}, err
		}
	}

	reconciled := d.Reconciled
	if reconciled == "" {
		reconciled = model.NotReconciled
	}

	return model.Split{
		ID:            d.SplitID,
		AccountID:     d.AccountID,
		ValueMinor:    value,
		QuantityMinor: quantity,
		Memo:          strings.TrimSpace(d.Memo),
		Reconciled:    reconciled,
	}, nil
}

// DraftFromSplit decodes a committed split back into its editable form, the
// inverse of CommitSplit. Used when an existing transaction is opened for
// editing before being re-validated and resubmitted.
func DraftFromSplit(s model.Split, txCommodity, acctCommodity *model.Commodity) (SplitDraft, error) {
	valueStr, err := money.Encode(s.ValueMinor, txCommodity.Fraction)
	if err != nil {
		return SplitDraft{}, err
	}

	quantityStr := ""
	if acctCommodity.ID != txCommodity.ID {
		quantityStr, err = money.Encode(s.QuantityMinor, acctCommodity.Fraction)
		if err != nil {
			return SplitDraft{}, err
		}
	}

	return SplitDraft{
		SplitID:     s.ID,
		AccountID:   s.AccountID,
		ValueStr:    valueStr,
		QuantityStr: quantityStr,
		Memo:        s.Memo,
		Reconciled:  s.Reconciled,
	}, nil
}
