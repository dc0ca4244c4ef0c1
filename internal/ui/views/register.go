package views

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

// RenderRegister prints one account's postings in checkbook form. Every
// amount is in the account's native commodity; format turns minor units
// into display text.
func RenderRegister(account *model.Account, entries []*model.RegisterEntry, format func(int64) string) error {
	pterm.DefaultSection.Printf("Register: %s", account.FullName)

	if len(entries) == 0 {
		pterm.Info.Println("No postings for this account")
		return nil
	}

	headers := []string{"Date", "Description", "Transfer", "Deposit", "Withdrawal", "Balance", "R"}
	tableData := pterm.TableData{headers}

	for _, e := range entries {
		transfer := "-"
		switch {
		case len(e.CounterAccounts) == 1:
			transfer = e.CounterAccounts[0]
		case len(e.CounterAccounts) > 1:
			transfer = fmt.Sprintf("-- multiple (%d) --", len(e.CounterAccounts))
		}

		deposit, withdrawal := "", ""
		if e.QuantityMinor >= 0 {
			deposit = pterm.Green(format(e.QuantityMinor))
		} else {
			withdrawal = pterm.Red(format(-e.QuantityMinor))
		}

		desc := e.Description
		if e.Memo != "" {
			desc = fmt.Sprintf("%s [%s]", desc, e.Memo)
		}

		tableData = append(tableData, []string{
			e.Date,
			desc,
			transfer,
			deposit,
			withdrawal,
			format(e.RunningBalance),
			strings.ToUpper(string(e.Reconciled)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	closing := entries[len(entries)-1].RunningBalance
	pterm.Info.Printf("%d postings, closing balance %s\n", len(entries), format(closing))

	return nil
}
