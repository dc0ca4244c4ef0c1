package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
)

func (s *Store) CreateCommodity(mnemonic, name string, fraction int64) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO commodities (mnemonic, name, fraction)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	if err := stmt.QueryRow(mnemonic, name, fraction).Scan(&newID); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: commodities.mnemonic") {
			return 0, fmt.Errorf("%w: %s", ErrCommodityExists, mnemonic)
		}
		return 0, fmt.Errorf("failed to insert commodity: %w", err)
	}

	return newID, nil
}

func (s *Store) GetCommodityByID(id int64) (*model.Commodity, error) {
	row := s.db.QueryRow("SELECT id, mnemonic, name, fraction FROM commodities WHERE id = ?", id)
	return scanCommodity(row, fmt.Sprintf("commodity %d", id))
}

func (s *Store) GetCommodityByMnemonic(mnemonic string) (*model.Commodity, error) {
	row := s.db.QueryRow("SELECT id, mnemonic, name, fraction FROM commodities WHERE mnemonic = ?", mnemonic)
	return scanCommodity(row, fmt.Sprintf("commodity %q", mnemonic))
}

func (s *Store) GetAllCommodities() ([]*model.Commodity, error) {
	rows, err := s.db.Query("SELECT id, mnemonic, name, fraction FROM commodities ORDER BY mnemonic")
	if err != nil {
		return nil, fmt.Errorf("failed to query commodities: %w", err)
	}
	defer rows.Close()

	var commodities []*model.Commodity
	for rows.Next() {
		c := &model.Commodity{}
		if err := rows.Scan(&c.ID, &c.Mnemonic, &c.Name, &c.Fraction); err != nil {
			return nil, fmt.Errorf("failed to scan commodity: %w", err)
		}
		commodities = append(commodities, c)
	}

	return commodities, rows.Err()
}

func scanCommodity(row *sql.Row, what string) (*model.Commodity, error) {
	c := &model.Commodity{}
	if err := row.Scan(&c.ID, &c.Mnemonic, &c.Name, &c.Fraction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, what)
		}
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	return c, nil
}
