package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gogpu/kolor"
	"github.com/gogpu/kolor/config"
)

var (
	// Global flags
	cfgFile   string
	precision string
	verbose   bool
	swatch    bool

	// cfg is loaded before every subcommand runs.
	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kolor",
	Short: "Parse, convert and manipulate colors",
	Long: `kolor parses CSS-like color expressions and converts them between
RGB, RGBA, HSL, HSLA, HSV, HSVA, HWB, GRAY and CMYK.

Expressions:
  rebeccapurple           color keywords
  #f80, #ff8800cc         hex values with 3, 4, 6 or 8 digits
  hsl(120, 100%, 25%)     functional notation of any space
  hsl(yellowish green, 1, .5)
                          named hues

Examples:
  kolor parse "hwb(0, 20%, 30%)"
  kolor convert tomato --to cmyk
  kolor random --size 5 --swatch`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVarP(&precision, "precision", "p", "", `fractional digits in CSS output, or "auto"`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&swatch, "swatch", false, "print a color swatch before each color")
}

// setup loads the configuration and applies the global flags.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		kolor.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		kolor.SetLogger(nil)
	}

	cfg = config.Default()
	if cfgFile != "" {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
	}

	if precision != "" {
		p, err := kolor.ParsePrecision(precision)
		if err != nil {
			return fmt.Errorf("--precision: %w", err)
		}
		cfg.Precision = p
	}
	cfg.Apply()
	return nil
}

// parseArg parses a command argument, naming the argument in the error.
func parseArg(expr string) (kolor.Color, error) {
	c, err := kolor.Parse(expr)
	if err != nil {
		var pe *kolor.ParseError
		if errors.As(err, &pe) {
			return kolor.Color{}, fmt.Errorf("not a color: %q", pe.Expr)
		}
		return kolor.Color{}, err
	}
	return c, nil
}

// parseSpaceFlag parses a --to or --space value.
func parseSpaceFlag(name string) (kolor.Space, error) {
	s, err := kolor.ParseSpace(name)
	if err != nil {
		return kolor.SpaceInvalid, fmt.Errorf("%w (want one of %v)", err, kolor.Spaces())
	}
	return s, nil
}

// printColor writes text, preceded by a swatch of c when --swatch is set.
// Swatches are always written as true color escapes, since w is often a
// tabwriter rather than a terminal.
func printColor(w io.Writer, c kolor.Color, text string) {
	if swatch {
		out := termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
		block := out.String("    ").Background(out.Color(c.Hex()))
		fmt.Fprintf(w, "%s %s\n", block, text)
		return
	}
	fmt.Fprintln(w, text)
}
