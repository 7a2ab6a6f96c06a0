package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/script"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Summarize a machine",
	Long:  `Renders a markdown summary of the machine's variants and decider rules.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		m, err := script.Load(args[0])
		if err != nil {
			return err
		}
		md := tui.Describe(m)
		if raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer(terminalWidth(cmd.OutOrStdout()))
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

const defaultWidth = 80

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultWidth
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Bool("raw", false, "Print the markdown without rendering it")
}
