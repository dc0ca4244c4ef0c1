package account

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/tally/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-full-name>",
		Short: "Delete an account",
		Long: `Delete an account by its full name, e.g. "Expenses:Food".
Accounts that still have child accounts or postings cannot be deleted.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fullName := args[0]

			account, err := svc.Account.GetAccountByFullName(fullName)
			if err != nil {
				return err
			}

			pterm.Warning.Printf("About to delete account #%d:\n", account.ID)
			deletionInfo := pterm.TableData{
				{"Full Name", account.FullName},
				{"Type", string(account.Type)},
			}
			pterm.DefaultTable.WithData(deletionInfo).Render()

			pterm.Warning.Println("This action cannot be undone!")

			var confirmation bool
			confirmPrompt := &survey.Confirm{
				Message: "Do you want to delete this account?",
				Default: false,
			}
			if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
				return err
			}

			if !confirmation {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			if err := svc.Account.DeleteAccount(fullName); err != nil {
				return err
			}

			pterm.Success.Printf("Account %q deleted successfully\n", fullName)
			return nil
		},
	}
}
