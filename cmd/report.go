package cmd

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/money"
	"github.com/hance08/tally/internal/report"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/validation"
	"github.com/spf13/cobra"
)

// Wide-open defaults; report ranges compare ISO dates lexicographically.
const (
	rangeStart = "0001-01-01"
	rangeEnd   = "9999-12-31"
)

type reportFlags struct {
	From    string
	To      string
	GroupBy string
}

func NewReportCmd(svc *service.Service) *cobra.Command {
	flags := &reportFlags{}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
		Long:  "Financial reports: profit & loss, net worth, and per-account balance history.",
	}

	reportCmd.PersistentFlags().StringVar(&flags.From, "from", rangeStart, "Range start YYYY-MM-DD (inclusive)")
	reportCmd.PersistentFlags().StringVar(&flags.To, "to", rangeEnd, "Range end YYYY-MM-DD (inclusive)")
	reportCmd.PersistentFlags().StringVarP(&flags.GroupBy, "group-by", "g", "month", "Bucket rows by day, month, or year")

	reportCmd.AddCommand(newPnLCmd(svc, flags))
	reportCmd.AddCommand(newNetWorthCmd(svc))
	reportCmd.AddCommand(newHistoryCmd(svc, flags))

	return reportCmd
}

func (f *reportFlags) validate() error {
	if err := validation.ValidateDate(f.From); err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	if err := validation.ValidateDate(f.To); err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	return nil
}

func newPnLCmd(svc *service.Service, flags *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:          "pnl",
		Short:        "Profit & loss: income and expenses per period",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			groupBy, err := report.ParseGroupBy(flags.GroupBy)
			if err != nil {
				return err
			}

			rep, err := svc.Report.PnL(flags.From, flags.To, groupBy)
			if err != nil {
				return err
			}

			formatFor, formatTotal, err := amountFormatters(svc)
			if err != nil {
				return err
			}

			return views.RenderPnL(rep, formatFor, formatTotal)
		},
	}
}

func newNetWorthCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "networth",
		Short:        "Current assets, liabilities, and net worth",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := svc.Report.NetWorth()
			if err != nil {
				return err
			}

			_, formatTotal, err := amountFormatters(svc)
			if err != nil {
				return err
			}

			return views.RenderNetWorth(snap, formatTotal)
		},
	}
}

func newHistoryCmd(svc *service.Service, flags *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:          "history <account-full-name>",
		Short:        "Closing balance per period for one account",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			groupBy, err := report.ParseGroupBy(flags.GroupBy)
			if err != nil {
				return err
			}

			points, account, err := svc.Report.BalanceHistory(args[0], flags.From, flags.To, groupBy)
			if err != nil {
				return err
			}

			commodity, err := svc.Account.GetCommodityByID(account.CommodityID)
			if err != nil {
				return err
			}

			return views.RenderBalanceHistory(account, points, func(minor int64) string {
				return encodeOr(minor, commodity.Fraction, commodity.Mnemonic)
			})
		},
	}
}

// amountFormatters builds the per-account and aggregate amount renderers.
// Aggregates (net income, net worth) are shown in the default currency;
// cross-currency conversion is out of scope.
func amountFormatters(svc *service.Service) (func(*model.Account, int64) string, func(int64) string, error) {
	commodities, err := svc.Account.GetAllCommodities()
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[int64]*model.Commodity, len(commodities))
	for _, c := range commodities {
		byID[c.ID] = c
	}

	defaultCommodity, err := svc.Account.DefaultCommodity()
	if err != nil {
		return nil, nil, err
	}

	formatFor := func(acc *model.Account, minor int64) string {
		c, ok := byID[acc.CommodityID]
		if !ok {
			return fmt.Sprintf("%d", minor)
		}
		return encodeOr(minor, c.Fraction, c.Mnemonic)
	}
	formatTotal := func(minor int64) string {
		return encodeOr(minor, defaultCommodity.Fraction, defaultCommodity.Mnemonic)
	}
	return formatFor, formatTotal, nil
}

func encodeOr(minor, fraction int64, mnemonic string) string {
	text, err := money.Encode(minor, fraction)
	if err != nil {
		return fmt.Sprintf("%d %s", minor, mnemonic)
	}
	return fmt.Sprintf("%s %s", text, mnemonic)
}
