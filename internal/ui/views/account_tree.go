package views

import (
	"fmt"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

// RenderAccountTree prints the account forest with rolled-up balances.
// balanceFormatter renders a minor-unit amount in the account's native
// commodity.
func RenderAccountTree(forest []*ledger.TreeNode, balanceFormatter func(*model.Account, int64) string) error {
	pterm.DefaultSection.Printf("Account Tree")

	if len(forest) == 0 {
		pterm.Info.Println("No accounts yet. Create one with 'tally account create'.")
		return nil
	}

	var convert func(node *ledger.TreeNode) pterm.TreeNode
	convert = func(node *ledger.TreeNode) pterm.TreeNode {
		label := fmt.Sprintf("%s  %s", node.Account.Name, balanceFormatter(node.Account, node.DisplayedBalance))
		if node.Account.Placeholder {
			label = fmt.Sprintf("%s  %s", pterm.Gray(node.Account.Name), balanceFormatter(node.Account, node.DisplayedBalance))
		}

		out := pterm.TreeNode{Text: label}
		for _, child := range node.Children {
			out.Children = append(out.Children, convert(child))
		}
		return out
	}

	root := pterm.TreeNode{Text: "Accounts"}
	for _, node := range forest {
		root.Children = append(root.Children, convert(node))
	}

	return pterm.DefaultTree.WithRoot(root).Render()
}
