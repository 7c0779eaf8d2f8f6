package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recon.dev/pkg/recon/internal/domain"
	m "recon.dev/pkg/recon/internal/model"
)

var batchParallelFlag int

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "batch MANIFEST",
		Short:        "Reconcile every run of a manifest",
		Long:         batchLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Batch(context.Background(), domain.BatchArgs{
				Manifest: m.Path(args[0]),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Threads:  batchParallelism(),

				SkipPatternDiscovery: !patternDiscovery(),
			})

			return err
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, runParallelFlagName, "j", viper.GetInt(runParallelConfigKey), "number of runs reconciled in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
