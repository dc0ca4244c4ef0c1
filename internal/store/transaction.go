package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
)

// CreateTransactionWithSplits inserts a transaction and its splits.
// It relies on the caller (service layer) to wrap it in ExecTx for atomicity.
func (s *Store) CreateTransactionWithSplits(txn *model.Transaction) (int64, error) {
	stmtTxn, err := s.db.Prepare(`
		INSERT INTO transactions (date, description, notes, currency_id)
		VALUES (?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmtTxn.Close()

	var newID int64
	if err := stmtTxn.QueryRow(txn.Date, txn.Description, txn.Notes, txn.CurrencyID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := insertSplits(s.db, newID, txn.Splits); err != nil {
		return 0, err
	}

	return newID, nil
}

// UpdateTransactionWithSplits rewrites a transaction's fields and replaces
// all its splits. Like CreateTransactionWithSplits, atomicity comes from the
// caller's ExecTx wrapper.
func (s *Store) UpdateTransactionWithSplits(txn *model.Transaction) error {
	result, err := s.db.Exec(`
		UPDATE transactions
		SET date = ?, description = ?, notes = ?, currency_id = ?
		WHERE id = ?
	`, txn.Date, txn.Description, txn.Notes, txn.CurrencyID, txn.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: transaction %d", ErrRecordNotFound, txn.ID)
	}

	if _, err := s.db.Exec("DELETE FROM splits WHERE transaction_id = ?", txn.ID); err != nil {
		return fmt.Errorf("failed to clear splits: %w", err)
	}
	return insertSplits(s.db, txn.ID, txn.Splits)
}

func insertSplits(db DBTX, txnID int64, splits []model.Split) error {
	stmt, err := db.Prepare(`
		INSERT INTO splits (transaction_id, account_id, value_minor, quantity_minor, memo, reconciled)
		VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare split SQL: %w", err)
	}
	defer stmt.Close()

	for _, split := range splits {
		_, err := stmt.Exec(txnID, split.AccountID, split.ValueMinor, split.QuantityMinor, split.Memo, string(split.Reconciled))
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

func (s *Store) GetTransactionByID(id int64) (*model.Transaction, error) {
	txn := &model.Transaction{}
	err := s.db.QueryRow(`
		SELECT id, date, description, notes, currency_id
		FROM transactions
		WHERE id = ?
	`, id).Scan(&txn.ID, &txn.Date, &txn.Description, &txn.Notes, &txn.CurrencyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %d", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	if err := s.attachSplits([]*model.Transaction{txn}); err != nil {
		return nil, err
	}
	return txn, nil
}

// GetTransactionsByAccount returns every transaction with at least one split
// posting to the account, each carrying its full split set so callers can
// derive counter-accounts. Ordered date ascending for register use.
func (s *Store) GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 1000
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT t.id, t.date, t.description, t.notes, t.currency_id
		FROM transactions t
		INNER JOIN splits sp ON t.id = sp.transaction_id
		WHERE sp.account_id = ?
		ORDER BY t.date ASC, t.id ASC
		LIMIT ?
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachSplits(txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *Store) GetTransactionsByDateRange(from, to string) ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, date, description, notes, currency_id
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachSplits(txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// GetAllTransactions returns recent transactions, newest first.
func (s *Store) GetAllTransactions(limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT id, date, description, notes, currency_id
		FROM transactions
		ORDER BY date DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachSplits(txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// DeleteTransaction removes a transaction; its splits cascade.
func (s *Store) DeleteTransaction(id int64) error {
	result, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: transaction %d", ErrRecordNotFound, id)
	}
	return nil
}

func collectTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var txns []*model.Transaction
	for rows.Next() {
		txn := &model.Transaction{}
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Description, &txn.Notes, &txn.CurrencyID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func (s *Store) attachSplits(txns []*model.Transaction) error {
	stmt, err := s.db.Prepare(`
		SELECT id, transaction_id, account_id, value_minor, quantity_minor, memo, reconciled
		FROM splits
		WHERE transaction_id = ?
		ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare split SQL: %w", err)
	}
	defer stmt.Close()

	for _, txn := range txns {
		rows, err := stmt.Query(txn.ID)
		if err != nil {
			return fmt.Errorf("failed to query splits: %w", err)
		}

		for rows.Next() {
			var split model.Split
			var reconciled string
			err := rows.Scan(
				&split.ID, &split.TransactionID, &split.AccountID,
				&split.ValueMinor, &split.QuantityMinor, &split.Memo, &reconciled,
			)
			if err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan split: %w", err)
			}
			split.Reconciled = model.ReconState(reconciled)
			txn.Splits = append(txn.Splits, split)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("error iterating splits: %w", err)
		}
		rows.Close()
	}
	return nil
}
