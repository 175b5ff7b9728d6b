package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast A B",
	Short: "Print the WCAG contrast ratio of two colors",
	Long: `Print the WCAG 2.0 contrast ratio of two colors and the conformance
levels it meets for normal text (AA 4.5, AAA 7) and large text (AA 3,
AAA 4.5).

Examples:
  kolor contrast white "#777"`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	rootCmd.AddCommand(contrastCmd)
}

func runContrast(cmd *cobra.Command, args []string) error {
	a, err := parseArg(args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(args[1])
	if err != nil {
		return err
	}

	ratio := a.ContrastRatio(b)
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1 %s\n", ratio, wcagLevel(ratio))
	return nil
}

// wcagLevel names the conformance levels a contrast ratio meets.
func wcagLevel(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA (AAA large)"
	case ratio >= 3:
		return "AA large"
	}
	return "fail"
}
