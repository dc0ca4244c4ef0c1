package views

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

// RenderTransactionList prints a compact recent-transactions table.
// summarize renders one transaction's magnitude in its own currency.
func RenderTransactionList(txns []*model.Transaction, summarize func(*model.Transaction) string) error {
	pterm.DefaultSection.Printf("Transactions")

	if len(txns) == 0 {
		pterm.Info.Println("No transactions yet")
		return nil
	}

	headers := []string{"ID", "Date", "Description", "Splits", "Amount"}
	tableData := pterm.TableData{headers}

	for _, txn := range txns {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", txn.ID),
			txn.Date,
			txn.Description,
			fmt.Sprintf("%d", len(txn.Splits)),
			summarize(txn),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(txns))

	return nil
}
