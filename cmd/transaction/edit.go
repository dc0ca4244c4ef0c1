package transaction

import (
	"fmt"
	"strconv"

	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewEditCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction's date, description, and split amounts.
The edited transaction is re-validated before anything is saved; splits keep
their accounts.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			txnID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction ID: %s", args[0])
			}

			_, input, err := svc.Transaction.DecodeTransaction(txnID)
			if err != nil {
				return err
			}

			txCommodity, err := svc.Account.GetCommodityByMnemonic(input.Currency)
			if err != nil {
				return err
			}

			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return err
			}
			names := make(map[int64]string, len(accounts))
			fractions := make(map[int64]int64, len(accounts))
			for _, acc := range accounts {
				names[acc.ID] = acc.FullName
				c, err := svc.Account.GetCommodityByID(acc.CommodityID)
				if err != nil {
					return err
				}
				fractions[acc.ID] = c.Fraction
			}

			date, err := prompts.PromptTransactionDate(input.Date)
			if err != nil {
				return err
			}
			if err := validation.ValidateDate(date); err != nil {
				return err
			}
			input.Date = date

			desc, err := prompts.PromptInput("Description:", input.Description, nil)
			if err != nil {
				return err
			}
			input.Description = desc

			for i := range input.Drafts {
				draft := &input.Drafts[i]
				name := names[draft.AccountID]
				if name == "" {
					name = fmt.Sprintf("[ID: %d]", draft.AccountID)
				}

				value, err := prompts.PromptInput(
					fmt.Sprintf("Amount for %s (%s):", name, txCommodity.Mnemonic),
					draft.ValueStr,
					validation.AmountValidator(txCommodity.Fraction),
				)
				if err != nil {
					return err
				}
				draft.ValueStr = value

				if draft.QuantityStr != "" {
					quantity, err := prompts.PromptInput(
						fmt.Sprintf("Account-currency amount for %s:", name),
						draft.QuantityStr,
						validation.AmountValidator(fractions[draft.AccountID]),
					)
					if err != nil {
						return err
					}
					draft.QuantityStr = quantity
				}

				memo, err := prompts.PromptInput("Memo (optional):", draft.Memo, nil)
				if err != nil {
					return err
				}
				draft.Memo = memo
			}

			imbalance, err := svc.Transaction.Imbalance(input)
			if err != nil {
				return err
			}
			if imbalance != 0 {
				pterm.Warning.Printf("Splits are out of balance by %s\n", formatMinor(txCommodity, imbalance))
			}

			confirm, err := prompts.PromptConfirm("Save changes?", true)
			if err != nil {
				return err
			}
			if !confirm {
				return fmt.Errorf("edit cancelled")
			}

			if err := svc.Transaction.UpdateTransaction(txnID, input); err != nil {
				return err
			}

			pterm.Success.Printf("Transaction #%d updated\n", txnID)
			return nil
		},
	}
}
