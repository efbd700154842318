package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/semacode/semacode/encoder"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Print the ECC 200 symbol size table",
	Run: func(cmd *cobra.Command, args []string) {
		configureColor(cmd)

		color.New(color.Bold).Printf("%-10s %-12s %6s %6s %6s\n",
			"SIZE", "SHAPE", "DATA", "ECC", "TOTAL")
		for _, si := range encoder.Sizes() {
			shape := "square"
			if si.Rectangular {
				shape = "rectangular"
			}
			fmt.Printf("%-10s %-12s %6d %6d %6d\n",
				fmt.Sprintf("%dx%d", si.MatrixWidth, si.MatrixHeight),
				shape, si.DataCapacity, si.ErrorCodewords, si.TotalCodewords())
		}
	},
}
