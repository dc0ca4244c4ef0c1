package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
)

const accountColumns = "id, name, full_name, type, commodity_id, parent_id, placeholder, description, is_hidden"

func (s *Store) CreateAccount(account *model.Account) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (name, full_name, type, commodity_id, parent_id, placeholder, description, is_hidden)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	var parentID sql.NullInt64
	if account.ParentID != nil {
		parentID = sql.NullInt64{Int64: *account.ParentID, Valid: true}
	}

	var newID int64
	err = stmt.QueryRow(
		account.Name, account.FullName, string(account.Type),
		account.CommodityID, parentID, account.Placeholder,
		account.Description, account.Hidden,
	).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.full_name") {
			return 0, fmt.Errorf("%w: %s", ErrAccountExists, account.FullName)
		}
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}

	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY full_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	return scanAccount(row, fmt.Sprintf("account %d", id))
}

func (s *Store) GetAccountByFullName(fullName string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE full_name = ?", fullName)
	return scanAccount(row, fmt.Sprintf("account %q", fullName))
}

func (s *Store) AccountExists(fullName string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE full_name = ?)", fullName)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) AccountHasChildren(id int64) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE parent_id = ?)", id)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account children: %w", err)
	}
	return exists, nil
}

func (s *Store) AccountSplitCount(id int64) (int64, error) {
	var count int64
	row := s.db.QueryRow("SELECT COUNT(*) FROM splits WHERE account_id = ?", id)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count account splits: %w", err)
	}
	return count, nil
}

func (s *Store) DeleteAccount(id int64) error {
	result, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: account %d", ErrRecordNotFound, id)
	}
	return nil
}

// GetAccountBalance sums quantity_minor over the account's own postings, in
// the account's native commodity.
func (s *Store) GetAccountBalance(accountID int64) (int64, error) {
	var balance sql.NullInt64
	err := s.db.QueryRow(`
		SELECT SUM(quantity_minor)
		FROM splits
		WHERE account_id = ?
	`, accountID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate balance: %w", err)
	}

	if balance.Valid {
		return balance.Int64, nil
	}
	return 0, nil
}

func (s *Store) GetAllAccountBalances() (map[int64]int64, error) {
	rows, err := s.db.Query(`
		SELECT account_id, SUM(quantity_minor)
		FROM splits
		GROUP BY account_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[int64]int64)
	for rows.Next() {
		var accountID, balance int64
		if err := rows.Scan(&accountID, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances[accountID] = balance
	}

	return balances, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row *sql.Row, what string) (*model.Account, error) {
	acc, err := scanAccountRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, what)
		}
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	return acc, nil
}

func scanAccountRow(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var parentID sql.NullInt64
	var accType string

	err := row.Scan(
		&acc.ID, &acc.Name, &acc.FullName, &accType,
		&acc.CommodityID, &parentID, &acc.Placeholder,
		&acc.Description, &acc.Hidden,
	)
	if err != nil {
		return nil, err
	}

	acc.Type = model.AccountType(accType)
	if parentID.Valid {
		acc.ParentID = &parentID.Int64
	}
	return acc, nil
}
