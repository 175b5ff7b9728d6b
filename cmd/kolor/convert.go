package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/kolor"
)

var convertCmd = &cobra.Command{
	Use:   "convert EXPR...",
	Short: "Convert colors to another space",
	Long: `Convert each expression to the space given by --to and print it in CSS
notation. With --path the spaces visited on the way are printed instead.

Examples:
  kolor convert tomato --to hsl
  kolor convert "cmyk(0, .5, 1, 0)" --to hwb --path`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var (
	convertTo   string
	convertPath bool
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertTo, "to", "", "target space (required)")
	convertCmd.Flags().BoolVar(&convertPath, "path", false, "print the conversion path")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertTo == "" {
		return errors.New("--to is required")
	}
	to, err := parseSpaceFlag(convertTo)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, expr := range args {
		c, err := parseArg(expr)
		if err != nil {
			return err
		}
		if convertPath {
			path, err := kolor.ConversionPath(c.Space(), to)
			if err != nil {
				return err
			}
			names := make([]string, len(path))
			for i, s := range path {
				names[i] = s.String()
			}
			fmt.Fprintln(w, strings.Join(names, " -> "))
			continue
		}
		res, err := c.To(to)
		if err != nil {
			return err
		}
		printColor(w, res, res.CSS())
	}
	return nil
}
