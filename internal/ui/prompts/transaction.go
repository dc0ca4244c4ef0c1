package prompts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/model"
)

// PromptTransactionDate prompts for transaction date, defaulting to today
func PromptTransactionDate(defaultDate string) (string, error) {
	if defaultDate == "" {
		defaultDate = time.Now().Format(model.DateFormat)
	}
	return PromptDate(
		"Transaction date (YYYY-MM-DD):",
		defaultDate,
		"Press Enter for "+defaultDate,
	)
}

// PromptAccountSelection prompts for a postable account. Placeholder and
// hidden accounts never appear; they cannot carry splits.
func PromptAccountSelection(
	accounts []*model.Account,
	message string,
	balanceGetter func(*model.Account) (string, error),
) (*model.Account, error) {
	var postable []*model.Account
	for _, acc := range accounts {
		if acc.Placeholder || acc.Hidden {
			continue
		}
		postable = append(postable, acc)
	}

	if len(postable) == 0 {
		return nil, fmt.Errorf("no postable accounts; create one with 'tally account create'")
	}

	accountMap := make(map[string]*model.Account)
	var opts []huh.Option[string]

	for _, acc := range postable {
		displayName := acc.FullName

		if balanceGetter != nil {
			if balance, err := balanceGetter(acc); err == nil {
				displayName = fmt.Sprintf("%s (%s)", acc.FullName, balance)
			}
		}

		opts = append(opts, huh.NewOption(displayName, displayName))
		accountMap[displayName] = acc
	}

	var selectedDisplay string

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selectedDisplay).
		Height(15).
		Run()

	if err != nil {
		return nil, err
	}

	return accountMap[selectedDisplay], nil
}

// PromptMemo prompts for an optional split memo
func PromptMemo() (string, error) {
	return PromptInput("Memo (optional):", "", nil)
}
