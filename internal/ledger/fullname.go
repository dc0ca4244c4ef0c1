package ledger

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
)

// ResolveFullNames derives each account's FullName as the colon-joined path
// from its root, e.g. "Expenses:Food:Groceries". The walk is cycle-safe; an
// account whose parent is missing from the snapshot is treated as a root,
// matching BuildAccountTree.
func ResolveFullNames(accounts []*model.Account) error {
	byID := make(map[int64]*model.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID] = acc
	}

	for _, acc := range accounts {
		parts := []string{acc.Name}
		visited := map[int64]bool{acc.ID: true}
		current := acc
		for current.ParentID != nil {
			parent, ok := byID[*current.ParentID]
			if !ok {
				break
			}
			if visited[parent.ID] {
				return fmt.Errorf("%w: resolving full name of account %q", ErrCycleDetected, acc.Name)
			}
			visited[parent.ID] = true
			parts = append(parts, parent.Name)
			current = parent
		}

		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
		acc.FullName = strings.Join(parts, model.FullNameSep)
	}
	return nil
}
