package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"recon.dev/pkg/recon/internal/domain"
	m "recon.dev/pkg/recon/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view ID",
		Short: "View a stored reconciliation report",
		Long:  "View a stored reconciliation report, including diffs of its failed commands.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(context.Background(), domain.ViewArgs{Reports: reportsPath, ID: args[0]})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
