package account

import (
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, list, and delete accounts",
		Long:  `Create, list, and delete accounts, or show the account tree with rolled-up balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewTreeCmd(svc))
	accountCmd.AddCommand(NewDeleteCmd(svc))

	return accountCmd
}
