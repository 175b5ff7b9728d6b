package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/kolor"
)

var namesCmd = &cobra.Command{
	Use:   "names [FILTER]",
	Short: "List the color keywords",
	Long: `List the color keywords Parse understands, with their hex values.
An optional filter keeps the keywords containing it.

Examples:
  kolor names
  kolor names blue --swatch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)
}

func runNames(cmd *cobra.Command, args []string) error {
	var filter string
	if len(args) == 1 {
		filter = strings.ToLower(args[0])
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range kolor.Names() {
		if !strings.Contains(name, filter) {
			continue
		}
		c := kolor.MustParse(name)
		printColor(w, c, fmt.Sprintf("%s\t%s", name, c.HexAlpha()))
	}
	return w.Flush()
}
