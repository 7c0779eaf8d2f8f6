// Package cmd provides the root command and CLI setup for recon.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"recon.dev/pkg/recon/internal/adapter"
	"recon.dev/pkg/recon/internal/controller"
	"recon.dev/pkg/recon/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var inputAdapter adapter.InputAdapter
var reportStore adapter.ReportStore
var reconciler domain.Reconciler
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var logFileFlag string
var verboseFlag bool
var discoverPatternsFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	inputAdapter = adapter.NewLocalInputAdapter()
	reportStore = adapter.NewReportStore()
	reconciler = domain.NewReconciler(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		inputAdapter,
		reportStore,
		ui,
		reconciler,
	)
}

const transcriptHelp = `Transcripts are split on the markers:
  ––– input –––    followed by the echoed command
  ––– output –––   followed by the command output`

const rootLongDescription = `Recon reconciles the outcome of a replayed command-line test with its
expected command list and produces a per-command and per-block report.

` + transcriptHelp

const reconcileLongDescription = `Reconcile one replay: match the expected commands against the transcript
file (or the captured stdout when the transcript is missing, empty or has no
sections), store the report and print it with diffs of failed commands.

The overall result follows the replay exit code only.

` + transcriptHelp

const batchLongDescription = `Reconcile every run listed in a YAML manifest. Runs are processed
concurrently and each report is stored in the reports directory.

Manifest format:
  runs:
    - name: smoke
      commands: tests/smoke.json
      transcript: tests/smoke.rep
      stdout: out/smoke.stdout
      exitCode: 1`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recon",
		Short: "Command-line test result reconciliation tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory where reconciliation reports are stored",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(
		&discoverPatternsFlag, discoverPatternsFlagName, viper.GetBool(patternsDiscoverKey),
		"use .clt/patterns next to the commands file when --patterns is not given",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(discoverPatternsFlagName), patternsDiscoverKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
