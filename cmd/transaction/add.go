package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	From   string
	To     string
	Amount string
	Date   string
	Desc   string
	Memo   string
}

type AddCommandRunner struct {
	svc   *service.Service
	flags *addFlags
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new transaction.

Without flags, an interactive split editor opens: pick accounts and amounts
until the transaction balances. With --from/--to/--amount, a simple
two-split transaction is recorded directly.

Example: tally add --from Assets:Checking --to Expenses:Food --amount 12.50`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AddCommandRunner{svc: svc, flags: flags}

			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") || cmd.Flags().Changed("amount") {
				return runner.FlagsMode()
			}

			return runner.InteractiveMode()
		},
	}

	cmd.Flags().StringVar(&flags.From, "from", "", "Account the money leaves (full name)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Account the money enters (full name)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in the transaction currency, e.g. 12.50")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVarP(&flags.Desc, "description", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Memo, "memo", "m", "", "Memo on both splits (optional)")

	return cmd
}

// FlagsMode records a two-split transaction: --amount leaves --from and
// enters --to, both in the default currency.
func (r *AddCommandRunner) FlagsMode() error {
	if r.flags.From == "" || r.flags.To == "" || r.flags.Amount == "" {
		return fmt.Errorf("--from, --to and --amount are all required in flag mode")
	}
	if err := validation.ValidateDate(r.flags.Date); err != nil {
		return err
	}

	fromAcc, err := r.svc.Account.GetAccountByFullName(r.flags.From)
	if err != nil {
		return fmt.Errorf("from account: %w", err)
	}
	toAcc, err := r.svc.Account.GetAccountByFullName(r.flags.To)
	if err != nil {
		return fmt.Errorf("to account: %w", err)
	}

	date := r.flags.Date
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}

	desc := r.flags.Desc
	if desc == "" {
		desc = fmt.Sprintf("%s -> %s", fromAcc.Name, toAcc.Name)
	}

	input := service.TransactionInput{
		Date:        date,
		Description: desc,
		Drafts: []ledger.SplitDraft{
			{AccountID: toAcc.ID, ValueStr: r.flags.Amount, Memo: r.flags.Memo},
			{AccountID: fromAcc.ID, ValueStr: "-" + r.flags.Amount, Memo: r.flags.Memo},
		},
	}

	txnID, err := r.svc.Transaction.CreateTransaction(input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d recorded\n", txnID)
	return nil
}

// InteractiveMode walks through the split editor until the drafts balance.
func (r *AddCommandRunner) InteractiveMode() error {
	date, err := prompts.PromptTransactionDate("")
	if err != nil {
		return err
	}
	if err := validation.ValidateDate(date); err != nil {
		return err
	}

	desc, err := prompts.PromptDescription("Description:", true)
	if err != nil {
		return err
	}

	txCommodity, err := r.promptCurrency()
	if err != nil {
		return err
	}

	input := service.TransactionInput{
		Date:        date,
		Description: desc,
		Currency:    txCommodity.Mnemonic,
	}

	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return err
	}

	for {
		draft, err := r.promptSplit(accounts, txCommodity)
		if err != nil {
			return err
		}
		input.Drafts = append(input.Drafts, *draft)

		imbalance, err := r.svc.Transaction.Imbalance(input)
		if err != nil {
			return err
		}

		if imbalance == 0 && len(input.Drafts) >= 2 {
			pterm.Success.Println("Transaction balances")
		} else {
			pterm.Info.Printf("Remaining to balance: %s\n", formatMinor(txCommodity, -imbalance))
		}

		more, err := prompts.PromptConfirm("Add another split?", imbalance != 0 || len(input.Drafts) < 2)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	r.displaySummary(input, txCommodity)

	confirm, err := prompts.PromptConfirm("Record this transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("transaction cancelled")
	}

	txnID, err := r.svc.Transaction.CreateTransaction(input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d recorded\n", txnID)
	return nil
}

func (r *AddCommandRunner) promptCurrency() (*model.Commodity, error) {
	defaultCommodity, err := r.svc.Account.DefaultCommodity()
	if err != nil {
		return nil, err
	}

	commodities, err := r.svc.Account.GetAllCommodities()
	if err != nil {
		return nil, err
	}
	if len(commodities) <= 1 {
		return defaultCommodity, nil
	}

	var options []string
	for _, c := range commodities {
		options = append(options, c.Mnemonic)
	}

	selected, err := prompts.PromptSelect("Transaction currency:", options, defaultCommodity.Mnemonic)
	if err != nil {
		return nil, err
	}

	return r.svc.Account.GetCommodityByMnemonic(selected)
}

func (r *AddCommandRunner) promptSplit(accounts []*model.Account, txCommodity *model.Commodity) (*ledger.SplitDraft, error) {
	account, err := prompts.PromptAccountSelection(accounts, "Split account:", func(acc *model.Account) (string, error) {
		return r.svc.Account.GetAccountBalanceFormatted(acc)
	})
	if err != nil {
		return nil, err
	}

	value, err := prompts.PromptAmount(
		fmt.Sprintf("Amount (%s, negative = money out):", txCommodity.Mnemonic),
		"Positive amounts enter the account, negative amounts leave it",
		validation.AmountValidator(txCommodity.Fraction),
	)
	if err != nil {
		return nil, err
	}

	draft := &ledger.SplitDraft{
		AccountID: account.ID,
		ValueStr:  value,
	}

	// Cross-currency split: the account keeps its books in another
	// commodity, so ask what actually hit the account.
	if account.CommodityID != txCommodity.ID {
		acctCommodity, err := r.svc.Account.GetCommodityByID(account.CommodityID)
		if err != nil {
			return nil, err
		}
		quantity, err := prompts.PromptAmount(
			fmt.Sprintf("Amount in %s (account currency):", acctCommodity.Mnemonic),
			fmt.Sprintf("%s is kept in %s", account.FullName, acctCommodity.Mnemonic),
			validation.AmountValidator(acctCommodity.Fraction),
		)
		if err != nil {
			return nil, err
		}
		draft.QuantityStr = quantity
	}

	memo, err := prompts.PromptMemo()
	if err != nil {
		return nil, err
	}
	draft.Memo = memo

	return draft, nil
}

func (r *AddCommandRunner) displaySummary(input service.TransactionInput, txCommodity *model.Commodity) {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Date"), input.Date},
		{pterm.Blue("Description"), input.Description},
		{pterm.Blue("Currency"), txCommodity.Mnemonic},
		{pterm.Blue("Splits"), fmt.Sprintf("%d", len(input.Drafts))},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}
