// Package report derives read-side summaries (profit and loss, net worth,
// balance history) from account and transaction snapshots. Like the ledger
// package it is pure: amounts stay in each account's native commodity, and
// any cross-currency conversion must happen in the caller before the
// snapshot is handed in.
package report

import "fmt"

// GroupBy buckets report rows by calendar period.
type GroupBy string

const (
	ByDay   GroupBy = "day"
	ByMonth GroupBy = "month"
	ByYear  GroupBy = "year"
)

// ParseGroupBy validates a user-supplied grouping keyword.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case ByDay, ByMonth, ByYear:
		return GroupBy(s), nil
	}
	return "", fmt.Errorf("invalid grouping %q (must be day, month or year)", s)
}

// periodKey normalizes a YYYY-MM-DD date to the first day of its bucket,
// mirroring the strftime grouping the register's SQL reports used.
func periodKey(date string, g GroupBy) string {
	switch g {
	case ByMonth:
		if len(date) >= 7 {
			return date[:7] + "-01"
		}
	case ByYear:
		if len(date) >= 4 {
			return date[:4] + "-01-01"
		}
	}
	return date
}
