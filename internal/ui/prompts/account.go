package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/model"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (model.AccountType, error) {
	options := []string{
		"ASSET - things you own (bank, cash)",
		"LIABILITY - things you owe (credit card, loan)",
		"INCOME - money coming in (salary)",
		"EXPENSE - money going out (rent, food)",
		"EQUITY - opening balances (advanced)",
	}

	selected, err := PromptSelect("Account type:", options, options[0])
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	raw := strings.Split(selected, " ")[0]
	accType, err := model.ParseAccountType(raw)
	if err != nil {
		return "", err
	}
	return accType, nil
}

// PromptParentAccount prompts for a parent account by full name
func PromptParentAccount(accounts []*model.Account) (*model.Account, error) {
	accountMap := make(map[string]*model.Account)
	var options []huh.Option[string]

	for _, acc := range accounts {
		if acc.Hidden {
			continue
		}
		accountMap[acc.FullName] = acc
		options = append(options, huh.NewOption(acc.FullName, acc.FullName))
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("no accounts available to use as a parent")
	}

	var selected string

	err := huh.NewSelect[string]().
		Title("Parent account:").
		Options(options...).
		Value(&selected).
		Height(10).
		Run()

	if err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}

	return accountMap[selected], nil
}

// PromptIsSubAccount asks if creating a subaccount
func PromptIsSubAccount() (bool, error) {
	return PromptConfirm("Is this a subaccount?", false)
}

// PromptAccountName prompts for account name with validation
func PromptAccountName(validator func(string) error) (string, error) {
	return PromptInput("Account name:", "", validator)
}

// PromptCurrency prompts for the account currency. Known commodities come
// first; picking "Other" falls through to free entry.
func PromptCurrency(commodities []*model.Commodity, defaultMnemonic string, customValidator func(string) error) (string, error) {
	var options []string
	for _, c := range commodities {
		options = append(options, c.Mnemonic)
	}
	options = append(options, "Other (Custom)")

	message := fmt.Sprintf("Currency (default: %s):", defaultMnemonic)

	selected, err := PromptSelect(message, options, defaultMnemonic)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if selected == "Other (Custom)" {
		custom, err := PromptInput("Enter currency code:", "", customValidator)
		if err != nil {
			return "", fmt.Errorf("input cancelled: %w", err)
		}
		return strings.ToUpper(strings.TrimSpace(custom)), nil
	}

	return selected, nil
}

// PromptPlaceholder asks whether the account only organizes children
func PromptPlaceholder() (bool, error) {
	return PromptConfirm("Placeholder account (no postings, organizes children)?", false)
}

// PromptInitCurrency runs on first launch, before any commodity exists
func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Welcome to tally! Please set the default currency:").
		Description("New accounts use this currency unless you choose another one").
		Options(
			huh.NewOption("USD", "USD"),
			huh.NewOption("TWD", "TWD"),
			huh.NewOption("JPY", "JPY"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("CNY", "CNY"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	if selection != "Other" {
		return selection, nil
	}

	var customInput string
	err = huh.NewInput().
		Title("Please enter the currency code:").
		Description("Use the ISO 4217 standard 3-letter currency code.").
		Value(&customInput).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("currency code is required")
			}
			return nil
		}).
		Run()

	if err != nil {
		return "", err
	}

	return strings.ToUpper(strings.TrimSpace(customInput)), nil
}
