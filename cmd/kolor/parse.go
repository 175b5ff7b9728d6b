package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/kolor"
)

var parseCmd = &cobra.Command{
	Use:   "parse EXPR...",
	Short: "Describe color expressions",
	Long: `Parse each expression and print its space, CSS notation, hex value and
relative luminance.

Examples:
  kolor parse "#663399"
  kolor parse "hsla(bluish purple, 80%, 40%, .5)" --to rgba`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var parseTo string

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseTo, "to", "", "convert to this space first")
}

func runParse(cmd *cobra.Command, args []string) error {
	var to kolor.Space
	if parseTo != "" {
		s, err := parseSpaceFlag(parseTo)
		if err != nil {
			return err
		}
		to = s
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, expr := range args {
		c, err := parseArg(expr)
		if err != nil {
			return err
		}
		if to != kolor.SpaceInvalid {
			if c, err = c.To(to); err != nil {
				return err
			}
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%.4f", c.Space(), c.CSS(), c.HexAlpha(), c.Luminance())
		printColor(w, c, line)
	}
	return w.Flush()
}
