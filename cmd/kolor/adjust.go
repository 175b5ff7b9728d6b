package main

import (
	"github.com/spf13/cobra"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust EXPR...",
	Short: "Adjust hue, saturation, lightness and alpha",
	Long: `Apply adjustments to each color in a fixed order: spin, saturate,
lighten, fade, grayscale, complement. Negative amounts desaturate, darken
and fade out. The result keeps the space of the input, except that fading
a color without alpha yields its alpha sibling (rgb becomes rgba).

Examples:
  kolor adjust teal --spin 30 --lighten 0.1
  kolor adjust "#336699" --saturate -0.2 --fade -0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdjust,
}

var (
	adjustSpin       float64
	adjustSaturate   float64
	adjustLighten    float64
	adjustFade       float64
	adjustGrayscale  bool
	adjustComplement bool
)

func init() {
	rootCmd.AddCommand(adjustCmd)

	adjustCmd.Flags().Float64Var(&adjustSpin, "spin", 0, "rotate the hue by degrees")
	adjustCmd.Flags().Float64Var(&adjustSaturate, "saturate", 0, "add to the HSL saturation")
	adjustCmd.Flags().Float64Var(&adjustLighten, "lighten", 0, "add to the HSL lightness")
	adjustCmd.Flags().Float64Var(&adjustFade, "fade", 0, "add to the alpha channel")
	adjustCmd.Flags().BoolVar(&adjustGrayscale, "grayscale", false, "remove all saturation")
	adjustCmd.Flags().BoolVar(&adjustComplement, "complement", false, "rotate the hue by 180 degrees")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	for _, expr := range args {
		c, err := parseArg(expr)
		if err != nil {
			return err
		}
		if adjustSpin != 0 {
			c = c.Spin(adjustSpin)
		}
		if adjustSaturate != 0 {
			c = c.Saturate(adjustSaturate)
		}
		if adjustLighten != 0 {
			c = c.Lighten(adjustLighten)
		}
		if adjustFade != 0 {
			c = c.FadeIn(adjustFade)
		}
		if adjustGrayscale {
			c = c.Grayscale()
		}
		if adjustComplement {
			c = c.Complement()
		}
		printColor(cmd.OutOrStdout(), c, c.CSS())
	}
	return nil
}
