package transaction

import (
	"fmt"
	"strconv"

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
		Use:          "delete <transaction-id>",
		Short:        "Delete a transaction",
		Long:         `Delete a transaction and all its splits. This action cannot be undone.`,
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

			pterm.Warning.Printf("About to delete transaction #%d:\n", txn.ID)
			deletionInfo := pterm.TableData{
				{"Date", txn.Date},
				{"Description", txn.Description},
				{"Splits", fmt.Sprint(len(txn.Splits))},
			}
			pterm.DefaultTable.WithData(deletionInfo).Render()

			pterm.Warning.Println("This action cannot be undone!")

			var confirmation bool
			confirmPrompt := &survey.Confirm{
				Message: "Do you want to delete this transaction?",
				Default: false,
			}
			if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
				return err
			}

			if !confirmation {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			if err := svc.Transaction.DeleteTransaction(txnID); err != nil {
				return err
			}

			pterm.Success.Printf("Transaction #%d deleted successfully\n", txnID)
			return nil
		},
	}
}
