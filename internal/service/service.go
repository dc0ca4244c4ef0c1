// Package service orchestrates the pure ledger core against the store: it
// loads snapshots, runs the core's drafting/validation/aggregation, and
// persists only what validates.
package service

import (
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/store"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Report      *ReportService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Account:     NewAccountService(repo, cfg),
		Transaction: NewTransactionService(repo, cfg),
		Report:      NewReportService(repo, cfg),
	}
}
