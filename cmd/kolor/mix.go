package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mixCmd = &cobra.Command{
	Use:   "mix A B",
	Short: "Mix two colors",
	Long: `Mix two colors with the Sass mixing algorithm. --weight is the share of
the first color; the result is in the space of the first color.

Examples:
  kolor mix red blue
  kolor mix "rgba(255, 0, 0, .5)" navy --weight 0.75`,
	Args: cobra.ExactArgs(2),
	RunE: runMix,
}

var mixWeight float64

func init() {
	rootCmd.AddCommand(mixCmd)

	mixCmd.Flags().Float64VarP(&mixWeight, "weight", "w", 0.5, "weight of the first color in [0, 1]")
}

func runMix(cmd *cobra.Command, args []string) error {
	if mixWeight < 0 || mixWeight > 1 {
		return fmt.Errorf("--weight must be within [0, 1], got %g", mixWeight)
	}
	a, err := parseArg(args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(args[1])
	if err != nil {
		return err
	}

	res := a.Mix(b, mixWeight)
	printColor(cmd.OutOrStdout(), res, res.CSS())
	return nil
}
