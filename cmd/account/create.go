package account

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name        string
	Type        string
	Parent      string
	Currency    string
	Placeholder bool
	Description string
}

type CreateCommandRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create a new account, either interactively or from flags.

Accounts form a tree; subaccounts inherit their type from the parent.
Placeholder accounts only organize children and cannot receive postings.

Example: tally account create -t EXPENSE -n Food`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				flags: flags,
			}

			hasFlags := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("type") ||
				cmd.Flags().Changed("parent")

			if hasFlags {
				return runner.FlagsMode(cmd)
			}

			return runner.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name (without parent prefix)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: ASSET, LIABILITY, EQUITY, INCOME, EXPENSE")
	cmd.Flags().StringVarP(&flags.Parent, "parent", "p", "", "Parent account full name (type is inherited)")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")
	cmd.Flags().BoolVar(&flags.Placeholder, "placeholder", false, "Placeholder account: organizes children, takes no postings")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Account description (optional)")

	return cmd
}

// FlagsMode builds an account from command-line flags
func (r *CreateCommandRunner) FlagsMode(cmd *cobra.Command) error {
	if r.flags.Parent == "" && r.flags.Type == "" {
		return fmt.Errorf("must enter at least one of --type or --parent flag")
	}
	if r.flags.Parent != "" && r.flags.Type != "" {
		return fmt.Errorf("--type and --parent flags cannot be used at the same time")
	}

	if err := validation.ValidateAccountName(r.flags.Name); err != nil {
		return fmt.Errorf("invalid account name: %w", err)
	}

	input := service.CreateAccountInput{
		Name:        strings.TrimSpace(r.flags.Name),
		Placeholder: r.flags.Placeholder,
		Description: r.flags.Description,
	}

	if r.flags.Parent != "" {
		parent, err := r.svc.Account.GetAccountByFullName(r.flags.Parent)
		if err != nil {
			return fmt.Errorf("parent account not found: %w", err)
		}
		input.Type = parent.Type
		input.ParentFullName = parent.FullName
	} else {
		accType, err := model.ParseAccountType(strings.ToUpper(r.flags.Type))
		if err != nil {
			return err
		}
		input.Type = accType
	}

	if r.flags.Currency != "" {
		if err := validation.ValidateCurrency(r.flags.Currency); err != nil {
			return err
		}
		input.Currency = strings.ToUpper(strings.TrimSpace(r.flags.Currency))
	}

	newAccount, err := r.svc.Account.CreateAccount(input)
	if err != nil {
		return err
	}

	displaySummary(newAccount)
	displaySuccessInformation(newAccount.ID, newAccount.FullName)
	return nil
}

// InteractiveMode builds an account through interactive prompts
func (r *CreateCommandRunner) InteractiveMode() error {
	input := service.CreateAccountInput{}

	isSubAccount, err := prompts.PromptIsSubAccount()
	if err != nil {
		return err
	}

	if isSubAccount {
		accounts, err := r.svc.Account.GetAllAccounts()
		if err != nil {
			return fmt.Errorf("failed to retrieve accounts: %w", err)
		}

		parent, err := prompts.PromptParentAccount(accounts)
		if err != nil {
			return err
		}

		input.Type = parent.Type
		input.ParentFullName = parent.FullName
	} else {
		accType, err := prompts.PromptAccountType()
		if err != nil {
			return err
		}
		input.Type = accType
	}

	name, err := prompts.PromptAccountName(func(s string) error {
		return validation.ValidateAccountName(s)
	})
	if err != nil {
		return err
	}
	input.Name = strings.TrimSpace(name)

	commodities, err := r.svc.Account.GetAllCommodities()
	if err != nil {
		return err
	}
	defaultCommodity, err := r.svc.Account.DefaultCommodity()
	if err != nil {
		return err
	}
	currency, err := prompts.PromptCurrency(commodities, defaultCommodity.Mnemonic, func(s string) error {
		return validation.ValidateCurrency(s)
	})
	if err != nil {
		return err
	}
	input.Currency = currency

	placeholder, err := prompts.PromptPlaceholder()
	if err != nil {
		return err
	}
	input.Placeholder = placeholder

	desc, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}
	input.Description = desc

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	newAccount, err := r.svc.Account.CreateAccount(input)
	if err != nil {
		return err
	}

	displaySummary(newAccount)
	displaySuccessInformation(newAccount.ID, newAccount.FullName)
	return nil
}

func displaySummary(acc *model.Account) {
	ui.Separator()

	descStr := acc.Description
	if descStr == "" {
		descStr = "None"
	}

	placeholderStr := "No"
	if acc.Placeholder {
		placeholderStr = "Yes"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Full Name"), acc.FullName},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Placeholder"), placeholderStr},
		{pterm.Blue("Description"), descStr},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}

func displaySuccessInformation(newAccountID int64, finalName string) {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", newAccountID)},
		{pterm.Blue("Full Name"), finalName},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account created successfully!")
}
