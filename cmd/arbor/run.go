package main

import (
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE [inputs...]",
	Short: "Step a machine with integer inputs",
	Long: `Loads the machine in FILE and steps it once per input, printing one
"variant kind value" row per step. Inputs come from the arguments or, when none
are given, from stdin one per line. Flags must precede FILE so that negative
inputs are not read as flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")
		logLevel, _ := cmd.Flags().GetString("log-level")

		inputs := args[1:]
		return cli.Run(cmd.Context(), cli.RunOptions{
			MachinePath: args[0],
			Inputs:      inputs,
			JSON:        jsonMode,
			Prompt:      len(inputs) == 0 && term.IsTerminal(int(os.Stdin.Fd())),
			LogLevel:    logLevel,
			MaxSteps:    maxSteps,
			MetricsFile: metricsFile,
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print steps as NDJSON records")
	runCmd.Flags().Int("max-steps", 0, "Stop with an error after this many steps (0 = unbounded)")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format to this file on exit")
	runCmd.Flags().SetInterspersed(false)
}
