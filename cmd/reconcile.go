package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recon.dev/pkg/recon/internal/domain"
	m "recon.dev/pkg/recon/internal/model"
)

const (
	commandsFlagName = "commands"
	repFlagName      = "rep"
	stdoutFlagName   = "stdout"
	stderrFlagName   = "stderr"
	exitCodeFlagName = "exit-code"
	errorFlagName    = "error"
	patternsFlagName = "patterns"
	nameFlagName     = "name"
)

type reconcileFlags struct {
	commands string
	rep      string
	stdout   string
	stderr   string
	exitCode int
	errorMsg string
	patterns string
	name     string
}

// reconcileCmd represents the reconcile command.
var reconcileCmd = newReconcileCmd()

func newReconcileCmd() *cobra.Command {
	flags := &reconcileFlags{}

	cmd := &cobra.Command{
		Use:          "reconcile",
		Short:        "Reconcile one replay into a report",
		Long:         reconcileLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := workflow.Reconcile(context.Background(), domain.RunArgs{
				Name:       flags.name,
				Commands:   m.Path(flags.commands),
				Transcript: m.Path(flags.rep),
				Stdout:     m.Path(flags.stdout),
				Stderr:     m.Path(flags.stderr),
				ExitCode:   flags.exitCode,
				Error:      flags.errorMsg,
				Patterns:   m.Path(flags.patterns),
				Reports:    m.Path(viper.GetString(outputFlagName)),

				SkipPatternDiscovery: !patternDiscovery(),
			})

			return err
		},
	}

	configureReconcileFlags(cmd, flags)

	return cmd
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func configureReconcileFlags(cmd *cobra.Command, flags *reconcileFlags) {
	cmd.Flags().StringVarP(&flags.commands, commandsFlagName, "c", "", "expected command list or structured test (JSON or YAML)")
	cmd.Flags().StringVarP(&flags.rep, repFlagName, "r", "", "primary transcript file written by the replay")
	cmd.Flags().StringVar(&flags.stdout, stdoutFlagName, "", "file holding the captured stdout of the replay")
	cmd.Flags().StringVar(&flags.stderr, stderrFlagName, "", "file holding the captured stderr of the replay")
	cmd.Flags().IntVarP(&flags.exitCode, exitCodeFlagName, "e", 0, "exit code of the replay process")
	cmd.Flags().StringVar(&flags.errorMsg, errorFlagName, "", "execution error reported by the replay process")
	cmd.Flags().StringVarP(&flags.patterns, patternsFlagName, "p", "", "patterns file (default: .clt/patterns next to the commands file)")
	cmd.Flags().StringVarP(&flags.name, nameFlagName, "n", "", "report name (default: the commands file path)")

	cobra.CheckErr(cmd.MarkFlagRequired(commandsFlagName))
}
