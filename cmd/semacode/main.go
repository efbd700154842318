package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "semacode",
	Short: "Data Matrix (ECC 200) symbol encoder",
	Long: `semacode encodes messages into Data Matrix ECC 200 symbols and prints
them as terminal block graphics or raw module rows.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(capacityCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// configureColor applies the --color flag to the global color state.
func configureColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
