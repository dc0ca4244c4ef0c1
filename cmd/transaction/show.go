package transaction

import (
	"fmt"
	"strconv"

	"github.com/hance08/tally/internal/money"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "show <transaction-id>",
		Short:        "Show a transaction's details and splits",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			txnID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID: %s", args[0])
			}

			txn, err := svc.Transaction.GetTransactionByID(txnID)
			if err != nil {
				return err
			}

			commodity, err := svc.Account.GetCommodityByID(txn.CurrencyID)
			if err != nil {
				return err
			}

			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return err
			}
			names := make(map[int64]string, len(accounts))
			for _, acc := range accounts {
				names[acc.ID] = acc.FullName
			}

			return views.RenderTransactionDetail(txn, commodity.Mnemonic,
				func(accountID int64) string {
					if name, ok := names[accountID]; ok {
						return name
					}
					return fmt.Sprintf("[ID: %d]", accountID)
				},
				func(minor int64) string {
					text, err := money.Encode(minor, commodity.Fraction)
					if err != nil {
						return fmt.Sprintf("%d", minor)
					}
					return text
				},
			)
		},
	}
}
