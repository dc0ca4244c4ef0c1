package account

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/money"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewTreeCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "tree",
		Short:        "Show the account hierarchy with rolled-up balances",
		Long:         `Show the account hierarchy. Each account displays its own balance plus the balances of all accounts beneath it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			forest, err := svc.Account.AccountTree()
			if err != nil {
				return fmt.Errorf("failed to build account tree: %w", err)
			}

			commodities, err := svc.Account.GetAllCommodities()
			if err != nil {
				return err
			}
			fractions := make(map[int64]*model.Commodity, len(commodities))
			for _, c := range commodities {
				fractions[c.ID] = c
			}

			return views.RenderAccountTree(forest, func(acc *model.Account, minor int64) string {
				c, ok := fractions[acc.CommodityID]
				if !ok {
					return fmt.Sprintf("%d", minor)
				}
				text, err := money.Encode(minor, c.Fraction)
				if err != nil {
					return fmt.Sprintf("%d", minor)
				}
				return fmt.Sprintf("%s %s", text, c.Mnemonic)
			})
		},
	}
}
