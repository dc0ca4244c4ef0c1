package cmd

import (
	"github.com/hance08/tally/cmd/transaction"
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

// NewAddCmd exposes `tally add` as a shortcut for `tally transaction add`.
func NewAddCmd(svc *service.Service) *cobra.Command {
	return transaction.NewAddCmd(svc)
}
