package account

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type       string
	ShowHidden bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List all accounts with their current balances.
You can filter by account type or show hidden accounts.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (ASSET, LIABILITY, EQUITY, INCOME, EXPENSE)")
	cmd.Flags().BoolVar(&flags.ShowHidden, "show-hidden", false, "Show hidden accounts")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	if r.flags.Type != "" {
		accType, err := model.ParseAccountType(strings.ToUpper(r.flags.Type))
		if err != nil {
			return err
		}
		accounts = filterByType(accounts, accType)
	}

	if !r.flags.ShowHidden {
		accounts = filterHiddenAccounts(accounts)
	}

	view := views.NewAccountListView()
	return view.Render(accounts, func(acc *model.Account) (string, error) {
		return r.svc.Account.GetAccountBalanceFormatted(acc)
	})
}

func filterByType(accounts []*model.Account, accType model.AccountType) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if acc.Type == accType {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}

func filterHiddenAccounts(accounts []*model.Account) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if !acc.Hidden {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
