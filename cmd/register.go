package cmd

import (
	"fmt"

	"github.com/hance08/tally/internal/money"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewRegisterCmd(svc *service.Service) *cobra.Command {
	var opening string

	cmd := &cobra.Command{
		Use:   "register <account-full-name>",
		Short: "Show an account's postings with a running balance",
		Long: `Show one account's postings in date order with a running balance,
like a checkbook register. Amounts are in the account's own currency.

Example: tally register Assets:Checking`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := svc.Account.GetAccountByFullName(args[0])
			if err != nil {
				return err
			}
			commodity, err := svc.Account.GetCommodityByID(account.CommodityID)
			if err != nil {
				return err
			}

			var openingMinor int64
			if opening != "" {
				openingMinor, err = money.Decode(opening, commodity.Fraction)
				if err != nil {
					return fmt.Errorf("invalid --opening amount: %w", err)
				}
			}

			entries, account, commodity, err := svc.Transaction.Register(account.FullName, openingMinor)
			if err != nil {
				return err
			}

			return views.RenderRegister(account, entries, func(minor int64) string {
				text, err := money.Encode(minor, commodity.Fraction)
				if err != nil {
					return fmt.Sprintf("%d", minor)
				}
				return text
			})
		},
	}

	cmd.Flags().StringVar(&opening, "opening", "", "Opening balance the running balance starts from, e.g. 100.00")

	return cmd
}
