package main

import (
	"fmt"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/script"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the machine as a diagram",
	Long: `Loads the machine in FILE and outputs a Mermaid state diagram
(stateDiagram-v2) of its variants and decider rules.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		visited, _ := cmd.Flags().GetStringSlice("visited")
		current, _ := cmd.Flags().GetString("current")

		var overlay *graph.GraphOverlay
		if len(visited) > 0 || current != "" {
			overlay = &graph.GraphOverlay{VisitedVariants: visited, CurrentVariant: current}
		}

		if !watch {
			m, err := script.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(m, overlay))
			return nil
		}

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		return cli.WatchMachine(cmd.Context(), args[0], logger, func(m *script.Machine, err error) {
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%%%% %s\n", args[0])
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(m, overlay))
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().BoolP("watch", "w", false, "Print the diagram again every time FILE changes")
	graphCmd.Flags().StringSlice("visited", nil, "Variants to highlight as visited")
	graphCmd.Flags().String("current", "", "Variant to highlight as current")
}
