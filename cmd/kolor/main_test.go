package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/kolor"
)

// run executes the root command with fresh flag values and returns stdout
// and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, precision, verbose, swatch = "", "", false, false
	parseTo = ""
	convertTo, convertPath = "", false
	mixWeight = 0.5
	adjustSpin, adjustSaturate, adjustLighten, adjustFade = 0, 0, 0, 0
	adjustGrayscale, adjustComplement = false, false
	randomSize, randomSpace, randomCSS, randomNoShuffle, randomSeed = 0, "", false, false, 0
	t.Cleanup(func() {
		kolor.SetLogger(nil)
		kolor.SetPrecision(kolor.Auto)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"convert", []string{"convert", "#ff0000", "--to", "hsl"}, "hsl(0, 100%, 50%)\n"},
		{"convert path", []string{"convert", "red", "--to", "hsl", "--path"}, "RGB -> RGBA -> HSLA -> HSL\n"},
		{"mix", []string{"mix", "red", "blue"}, "rgb(128, 0, 128)\n"},
		{"mix weighted", []string{"mix", "white", "black", "--weight", "1"}, "rgb(255, 255, 255)\n"},
		{"adjust", []string{"adjust", "red", "--spin", "120"}, "rgb(0, 255, 0)\n"},
		{"adjust fade", []string{"adjust", "red", "--fade", "-0.5"}, "rgba(255, 0, 0, 0.5)\n"},
		{"contrast", []string{"contrast", "white", "black"}, "21.00:1 AAA\n"},
		{"contrast same", []string{"contrast", "red", "red"}, "1.00:1 fail\n"},
		{"names", []string{"names", "rebecca"}, "rebeccapurple  #663399\n"},
		{"precision", []string{"--precision", "1", "convert", "hsl(0, 33.33%, 50%)", "--to", "hsla"}, "hsla(0, 33.3%, 50%, 1)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad expression", []string{"parse", "nope"}, "not a color"},
		{"missing target", []string{"convert", "red"}, "--to is required"},
		{"unknown space", []string{"convert", "red", "--to", "lab"}, "unknown color space"},
		{"bad weight", []string{"mix", "red", "blue", "--weight", "2"}, "--weight"},
		{"bad precision", []string{"--precision", "x", "names"}, "--precision"},
		{"too many colors", []string{"random", "--size", "500"}, "too many colors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	got, _, err := run(t, "parse", "rebeccapurple", "#ff000080")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}
	for i, want := range []string{"RGB", "RGBA"} {
		if f := strings.Fields(lines[i]); f[0] != want {
			t.Errorf("line %d space = %q, want %q", i, f[0], want)
		}
	}
	if !strings.Contains(lines[0], "#663399") {
		t.Errorf("line 0 = %q, want hex #663399", lines[0])
	}
	if !strings.Contains(lines[1], "#ff000080") {
		t.Errorf("line 1 = %q, want hex #ff000080", lines[1])
	}
}

func TestRandomCommand(t *testing.T) {
	got, _, err := run(t, "random", "--size", "4", "--space", "hsl", "--css", "--seed", "7", "--no-shuffle")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), got)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "hsl(") {
			t.Errorf("line = %q, want hsl notation", line)
		}
	}

	again, _, err := run(t, "random", "--size", "4", "--space", "hsl", "--css", "--seed", "7", "--no-shuffle")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if again != got {
		t.Errorf("same seed gave %q, then %q", got, again)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kolor.yaml")
	content := "precision: 0\nrandom:\n  size: 2\n  space: hsla\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, _, err := run(t, "--config", path, "random", "--css")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "hsla(") {
			t.Errorf("line = %q, want hsla notation", line)
		}
		if strings.Contains(line, ".") {
			t.Errorf("line = %q, want no fractional digits", line)
		}
	}
}

func TestSwatch(t *testing.T) {
	got, _, err := run(t, "--swatch", "convert", "red", "--to", "rgb")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(got, "\x1b[48;2;255;0;0m") {
		t.Errorf("output = %q, want a red background escape", got)
	}
	if !strings.HasSuffix(got, " rgb(255, 0, 0)\n") {
		t.Errorf("output = %q, want the CSS after the swatch", got)
	}
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "parse", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, "unparseable expression") {
		t.Errorf("stderr = %q, want a debug record", stderr)
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "AAA"},
		{7, "AAA"},
		{5, "AA (AAA large)"},
		{3.5, "AA large"},
		{2, "fail"},
	}
	for _, tt := range tests {
		if got := wcagLevel(tt.ratio); got != tt.want {
			t.Errorf("wcagLevel(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
