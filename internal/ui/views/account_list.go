package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account, balanceGetter func(*model.Account) (string, error)) error {
	headers := []string{"Full Name", "Type", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := "-"
		if !acc.Placeholder {
			if b, err := balanceGetter(acc); err == nil {
				balance = b
			}
		}

		name := acc.FullName
		typeStr := string(acc.Type)

		var coloredAccount, coloredType, coloredBalance string
		switch acc.Type {
		case model.TypeAsset, model.TypeIncome:
			coloredAccount = pterm.Green(name)
			coloredType = pterm.Green(typeStr)
			coloredBalance = pterm.Green(balance)
		case model.TypeLiability, model.TypeExpense:
			coloredAccount = pterm.Red(name)
			coloredType = pterm.Red(typeStr)
			coloredBalance = pterm.Red(balance)
		case model.TypeEquity:
			coloredAccount = pterm.Gray(name)
			coloredType = pterm.Gray(typeStr)
			coloredBalance = pterm.Gray(balance)
		default:
			coloredAccount = name
			coloredType = typeStr
			coloredBalance = balance
		}
		tableData = append(tableData, []string{coloredAccount, coloredType, coloredBalance})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
