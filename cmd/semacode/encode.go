package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/semacode/semacode"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <message>",
	Short: "Encode a message and print the symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().String("output", "blocks", "output form (blocks|rows|info)")
	encodeCmd.Flags().Int("quiet-zone", 1, "quiet zone width in modules (blocks output)")
	encodeCmd.Flags().Bool("verbose", false, "log encoding pipeline details")
}

func runEncode(cmd *cobra.Command, args []string) error {
	configureColor(cmd)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		semacode.SetLogger(logger)
	}

	enc, err := semacode.New(args[0])
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "blocks":
		quietZone, _ := cmd.Flags().GetInt("quiet-zone")
		fmt.Print(renderBlocks(enc.Grid(), quietZone))
	case "rows":
		fmt.Println(enc.String())
	case "info":
		printInfo(enc)
	default:
		return fmt.Errorf("unknown output form %q", output)
	}
	return nil
}

// renderBlocks renders the grid with unicode half-block characters,
// packing two module rows into each terminal line so the symbol appears
// square, surrounded by a light quiet zone.
func renderBlocks(grid [][]bool, quietZone int) string {
	height := len(grid)
	width := len(grid[0])
	totalRows := height + 2*quietZone
	totalCols := width + 2*quietZone

	dark := func(row, col int) bool {
		r := row - quietZone
		c := col - quietZone
		return r >= 0 && r < height && c >= 0 && c < width && grid[r][c]
	}

	var sb strings.Builder
	for row := 0; row < totalRows; row += 2 {
		for col := 0; col < totalCols; col++ {
			top := dark(row, col)
			bottom := row+1 < totalRows && dark(row+1, col)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printInfo(enc *semacode.Encoder) {
	label := color.New(color.Bold)

	label.Print("symbol:           ")
	fmt.Printf("%dx%d modules\n", enc.Width(), enc.Height())
	label.Print("raw codewords:    ")
	fmt.Println(enc.RawEncodedLength())
	label.Print("symbol capacity:  ")
	fmt.Println(enc.SymbolCapacity())
	label.Print("ecc codewords:    ")
	fmt.Println(enc.ECCBytes())
	label.Print("encoding schemes: ")
	fmt.Println(enc.Encoding())
}
