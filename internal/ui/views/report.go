package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/report"
	"github.com/pterm/pterm"
)

// RenderPnL prints the income/expense report. formatFor renders a
// minor-unit amount in the row account's commodity; formatTotal renders
// the aggregate in the default currency.
func RenderPnL(rep *report.PnLReport, formatFor func(*model.Account, int64) string, formatTotal func(int64) string) error {
	pterm.DefaultSection.Printf("Profit & Loss  %s .. %s", rep.From, rep.To)

	if len(rep.Rows) == 0 {
		pterm.Info.Println("No income or expense postings in this range")
		return nil
	}

	headers := []string{"Account", "Type", "Period", "Amount"}
	tableData := pterm.TableData{headers}

	for _, row := range rep.Rows {
		amount := formatFor(row.Account, row.AmountMinor)
		if row.Account.Type == model.TypeIncome {
			amount = pterm.Green(amount)
		} else {
			amount = pterm.Red(amount)
		}
		tableData = append(tableData, []string{
			row.Account.FullName,
			string(row.Account.Type),
			row.Period,
			amount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	net := formatTotal(rep.NetIncomeMinor)
	if rep.NetIncomeMinor >= 0 {
		pterm.Success.Printf("Net income: %s\n", net)
	} else {
		pterm.Warning.Printf("Net income: %s\n", net)
	}

	return nil
}

// RenderNetWorth prints the current assets/liabilities snapshot in the
// default currency.
func RenderNetWorth(snap report.NetWorthSnapshot, format func(int64) string) error {
	pterm.DefaultSection.Printf("Net Worth")

	tableData := pterm.TableData{
		{"Assets", pterm.Green(format(snap.AssetsMinor))},
		{"Liabilities", pterm.Red(format(snap.LiabilitiesMinor))},
		{"Net worth", format(snap.NetWorthMinor)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderBalanceHistory prints one account's closing balance per period.
func RenderBalanceHistory(account *model.Account, points []report.BalancePoint, format func(int64) string) error {
	pterm.DefaultSection.Printf("Balance History: %s", account.FullName)

	if len(points) == 0 {
		pterm.Info.Println("No periods in this range")
		return nil
	}

	headers := []string{"Period", "Closing Balance"}
	tableData := pterm.TableData{headers}

	for _, p := range points {
		tableData = append(tableData, []string{p.Period, format(p.BalanceMinor)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
