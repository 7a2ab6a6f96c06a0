package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/internal/validator"
	"github.com/aretw0/arbor/pkg/script"
	"github.com/spf13/cobra"
)

var errFindings = errors.New("validation reported findings")

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a machine for consistency",
	Long: `Loads and validates the machine in FILE, then crawls its decider rules from
the initial variant and reports unreachable variants or a missing exit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		m, err := script.Load(args[0])
		if err != nil {
			return err
		}

		report := validator.CrawlMachine(m)
		if !report.OK() {
			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			if strict {
				return errFindings
			}
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Machine is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("strict", false, "Treat findings as errors")
}
