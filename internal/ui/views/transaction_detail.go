package views

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

// RenderTransactionDetail prints one transaction's header and its splits.
// accountName resolves a split's account; formatValue renders a minor-unit
// amount in the transaction currency.
func RenderTransactionDetail(txn *model.Transaction, currency string, accountName func(int64) string, formatValue func(int64) string) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", txn.ID)},
		{"Date", txn.Date},
		{"Description", txn.Description},
		{"Currency", currency},
	}
	if txn.Notes != "" {
		infoData = append(infoData, []string{"Notes", txn.Notes})
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Splits")
	splitsData := pterm.TableData{
		{"Account", "Amount", "Type", "Memo", "R"},
	}

	for _, split := range txn.Splits {
		amountStr := fmt.Sprintf("%s %s", formatValue(split.ValueMinor), currency)

		typeStr := "Debit +"
		if split.ValueMinor < 0 {
			typeStr = "Credit -"
			amountStr = fmt.Sprintf("%s %s", formatValue(-split.ValueMinor), currency)
		}

		memo := split.Memo
		if memo == "" {
			memo = "-"
		}

		splitsData = append(splitsData, []string{
			accountName(split.AccountID),
			amountStr,
			typeStr,
			memo,
			string(split.Reconciled),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(splitsData).
		Render()
}
