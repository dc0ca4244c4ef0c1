package transaction

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List recent transactions",
		Long:         `List recent transactions, newest first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := svc.Transaction.GetRecentTransactions(limit)
			if err != nil {
				return err
			}

			commodities, err := svc.Account.GetAllCommodities()
			if err != nil {
				return err
			}
			byID := make(map[int64]*model.Commodity, len(commodities))
			for _, c := range commodities {
				byID[c.ID] = c
			}

			return views.RenderTransactionList(txns, func(txn *model.Transaction) string {
				// Transaction magnitude: the sum of the debit side.
				var total int64
				for _, s := range txn.Splits {
					if s.ValueMinor > 0 {
						total += s.ValueMinor
					}
				}
				c, ok := byID[txn.CurrencyID]
				if !ok {
					return fmt.Sprintf("%d", total)
				}
				return formatMinor(c, total)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of transactions to show (0 for all)")

	return cmd
}
