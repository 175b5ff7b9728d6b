package main

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/gogpu/kolor"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a palette with evenly spread hues",
	Long: `Generate random colors whose hues are spread evenly over a hue range.
Defaults come from the random section of the config file.

Examples:
  kolor random --size 5
  kolor random --size 3 --space hsl --css --seed 42`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

var (
	randomSize      int
	randomSpace     string
	randomCSS       bool
	randomNoShuffle bool
	randomSeed      uint64
)

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().IntVarP(&randomSize, "size", "n", 0, "number of colors (default from config)")
	randomCmd.Flags().StringVar(&randomSpace, "space", "", "space of the colors (default from config)")
	randomCmd.Flags().BoolVar(&randomCSS, "css", false, "print CSS notation instead of hex")
	randomCmd.Flags().BoolVar(&randomNoShuffle, "no-shuffle", false, "keep the colors ordered by hue")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "seed for reproducible output (0 picks a random seed)")
}

func runRandom(cmd *cobra.Command, args []string) error {
	opts := cfg.RandomOptions()
	if randomSize > 0 {
		opts = append(opts, kolor.WithSize(randomSize))
	}
	if randomSpace != "" {
		s, err := parseSpaceFlag(randomSpace)
		if err != nil {
			return err
		}
		opts = append(opts, kolor.WithSpace(s))
	}
	if randomNoShuffle {
		opts = append(opts, kolor.WithShuffle(false))
	}
	if randomSeed != 0 {
		opts = append(opts, kolor.WithSource(rand.New(rand.NewPCG(randomSeed, randomSeed))))
	}

	palette, err := kolor.Random(opts...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, c := range palette {
		text := c.Hex()
		if randomCSS {
			text = c.CSS()
		}
		printColor(w, c, text)
	}
	return nil
}
