package ledger

import (
	"fmt"
	"sort"

	"github.com/hance08/tally/internal/model"
)

// TreeNode is one account in the rendered hierarchy. DisplayedBalance is the
// account's own-postings balance plus the displayed balances of all children;
// placeholders post nothing themselves, so their figure is the roll-up of
// their descendants.
type TreeNode struct {
	Account          *model.Account
	DisplayedBalance int64
	Children         []*TreeNode
}

// BuildAccountTree assembles a forest from a flat account snapshot and a map
// of per-account own-postings balances (already expressed in each account's
// native commodity). Accounts without a parent, or whose parent is missing
// from the snapshot, become roots. Siblings are ordered ascending by name so
// repeated renders are reproducible.
func BuildAccountTree(accounts []*model.Account, ownBalances map[int64]int64) ([]*TreeNode, error) {
	if err := checkNoCycles(accounts); err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID] = acc
	}

	children := make(map[int64][]*model.Account)
	var roots []*model.Account
	for _, acc := range accounts {
		if acc.ParentID == nil {
			roots = append(roots, acc)
			continue
		}
		if _, ok := byID[*acc.ParentID]; !ok {
			roots = append(roots, acc)
			continue
		}
		children[*acc.ParentID] = append(children[*acc.ParentID], acc)
	}

	sortAccounts(roots)
	for _, siblings := range children {
		sortAccounts(siblings)
	}

	var build func(acc *model.Account) *TreeNode
	build = func(acc *model.Account) *TreeNode {
		node := &TreeNode{
			Account:          acc,
			DisplayedBalance: ownBalances[acc.ID],
		}
		for _, child := range children[acc.ID] {
			childNode := build(child)
			node.Children = append(node.Children, childNode)
			node.DisplayedBalance += childNode.DisplayedBalance
		}
		return node
	}

	forest := make([]*TreeNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, build(root))
	}
	return forest, nil
}

// checkNoCycles walks every parent chain with a visited set so a corrupt
// snapshot fails instead of hanging the render.
func checkNoCycles(accounts []*model.Account) error {
	byID := make(map[int64]*model.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID] = acc
	}

	for _, acc := range accounts {
		visited := map[int64]bool{acc.ID: true}
		current := acc
		for current.ParentID != nil {
			parent, ok := byID[*current.ParentID]
			if !ok {
				break
			}
			if visited[parent.ID] {
				return fmt.Errorf("%w: account %q revisits account %q", ErrCycleDetected, acc.Name, parent.Name)
			}
			visited[parent.ID] = true
			current = parent
		}
	}
	return nil
}

func sortAccounts(accounts []*model.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Name != accounts[j].Name {
			return accounts[i].Name < accounts[j].Name
		}
		return accounts[i].ID < accounts[j].ID
	})
}
