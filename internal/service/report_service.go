package service

import (
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/report"
	"github.com/hance08/tally/internal/store"
)

type ReportService struct {
	repo   store.Repository
	config *config.Config
}

func NewReportService(repo store.Repository, cfg *config.Config) *ReportService {
	return &ReportService{repo: repo, config: cfg}
}

func (rs *ReportService) accountsByID() (map[int64]*model.Account, []*model.Account, error) {
	accounts, err := rs.repo.GetAllAccounts()
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[int64]*model.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID] = acc
	}
	return byID, accounts, nil
}

// PnL totals income and expense postings over the inclusive date range.
func (rs *ReportService) PnL(from, to string, groupBy report.GroupBy) (*report.PnLReport, error) {
	byID, _, err := rs.accountsByID()
	if err != nil {
		return nil, err
	}
	txns, err := rs.repo.GetTransactionsByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return report.PnL(txns, byID, from, to, groupBy), nil
}

// NetWorth snapshots assets and liabilities from current balances.
func (rs *ReportService) NetWorth() (report.NetWorthSnapshot, error) {
	_, accounts, err := rs.accountsByID()
	if err != nil {
		return report.NetWorthSnapshot{}, err
	}
	balances, err := rs.repo.GetAllAccountBalances()
	if err != nil {
		return report.NetWorthSnapshot{}, err
	}
	return report.NetWorth(accounts, balances), nil
}

// BalanceHistory charts one account's closing balance per period.
func (rs *ReportService) BalanceHistory(accountFullName, from, to string, groupBy report.GroupBy) ([]report.BalancePoint, *model.Account, error) {
	account, err := rs.repo.GetAccountByFullName(accountFullName)
	if err != nil {
		return nil, nil, err
	}
	txns, err := rs.repo.GetTransactionsByAccount(account.ID, 0)
	if err != nil {
		return nil, nil, err
	}
	return report.BalanceHistory(account.ID, txns, from, to, groupBy), account, nil
}
