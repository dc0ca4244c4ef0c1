package transaction

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/money"
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Manage transactions",
		Long:  "Manage transactions: add, list, view details, edit, or delete.",
	}

	transactionCmd.AddCommand(NewAddCmd(svc))
	transactionCmd.AddCommand(NewListCmd(svc))
	transactionCmd.AddCommand(NewShowCmd(svc))
	transactionCmd.AddCommand(NewEditCmd(svc))
	transactionCmd.AddCommand(NewDeleteCmd(svc))

	return transactionCmd
}

// formatMinor renders a minor-unit amount with its commodity code. Falls
// back to the raw integer if the fraction is corrupt.
func formatMinor(c *model.Commodity, minor int64) string {
	text, err := money.Encode(minor, c.Fraction)
	if err != nil {
		return fmt.Sprintf("%d %s", minor, c.Mnemonic)
	}
	return fmt.Sprintf("%s %s", text, c.Mnemonic)
}
