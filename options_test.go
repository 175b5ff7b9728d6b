package kolor

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func seeded() RandomOption {
	return WithSource(rand.New(rand.NewPCG(42, 7)))
}

func TestRange(t *testing.T) {
	if r := Fixed(0.5); !r.IsFixed() || r.Min != 0.5 {
		t.Errorf("Fixed(0.5) = %+v", r)
	}
	if r := Between(0.2, 0.4); r.IsFixed() || r.Min != 0.2 || r.Max != 0.4 {
		t.Errorf("Between(0.2, 0.4) = %+v", r)
	}

	rng := rand.New(rand.NewPCG(1, 1))
	r := Between(0.2, 0.4)
	for range 100 {
		if v := r.pick(rng); v < 0.2 || v > 0.4 {
			t.Fatalf("pick() = %v, out of %+v", v, r)
		}
	}
	if v := Fixed(3).pick(rng); v != 3 {
		t.Errorf("Fixed(3).pick() = %v", v)
	}
}

func TestRandomDefaults(t *testing.T) {
	p, err := Random(seeded())
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	if len(p) != 1 {
		t.Fatalf("len = %d, want 1", len(p))
	}
	if p[0].Space() != SpaceRGB {
		t.Errorf("Space() = %v, want RGB", p[0].Space())
	}

	c, err := RandomColor(seeded(), WithSize(10))
	if err != nil {
		t.Fatalf("RandomColor() error: %v", err)
	}
	if !c.IsValid() {
		t.Error("RandomColor() returned an invalid color")
	}
}

func TestRandomHueSpacing(t *testing.T) {
	p, err := Random(
		WithSize(5),
		WithShuffle(false),
		WithSpace(SpaceHSLA),
		WithSaturation(Fixed(1)),
		WithLightness(Fixed(0.5)),
		seeded(),
	)
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	if len(p) != 5 {
		t.Fatalf("len = %d, want 5", len(p))
	}

	for i := 1; i < len(p); i++ {
		step := math.Mod(p[i].Get("hue")-p[i-1].Get("hue")+360, 360)
		if math.Abs(step-72) > 1e-9 {
			t.Errorf("hue step %d = %v, want 72", i, step)
		}
	}
	if h := p[0].Get("hue"); h < 0 || h >= 72 {
		t.Errorf("first hue = %v, want it within the first interval", h)
	}
	for i, c := range p {
		if s, l, a := c.Get("s"), c.Get("l"), c.Get("a"); s != 1 || l != 0.5 || a != 1 {
			t.Errorf("p[%d] = %v, want fixed saturation, lightness and alpha", i, c)
		}
	}
}

func TestRandomHueRange(t *testing.T) {
	p, err := Random(
		WithSize(4),
		WithHueRange(300, 60),
		WithSpace(SpaceHSL),
		WithAlpha(Between(0.2, 0.4)),
		seeded(),
	)
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	for _, c := range p {
		if h := c.Get("h"); h < 300 && h >= 60 {
			t.Errorf("hue %v outside [300, 60)", h)
		}
	}

	q, err := Random(WithSize(3), WithSpace(SpaceRGBA), WithAlpha(Between(0.2, 0.4)), seeded())
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	for _, c := range q {
		if a := c.Alpha(); a < 0.2 || a > 0.4 {
			t.Errorf("alpha %v outside [0.2, 0.4]", a)
		}
	}
}

func TestRandomShuffle(t *testing.T) {
	hues := func(p Palette) []float64 {
		res := make([]float64, len(p))
		for i, c := range p {
			res[i] = c.Get("hue")
		}
		return res
	}
	opts := []RandomOption{WithSize(36), WithSpace(SpaceHSL), seeded()}

	ordered, err := Random(append(opts, WithShuffle(false))...)
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	shuffled, err := Random(append(opts, seeded())...)
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}

	a, b := hues(ordered), hues(shuffled)
	if slices.Equal(a, b) {
		t.Error("shuffled palette is in hue order")
	}
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Error("shuffled palette holds different hues")
	}
}

func TestRandomReproducible(t *testing.T) {
	a, err := Random(WithSize(8), seeded())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Random(WithSize(8), seeded())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Hex(), b.Hex()) {
		t.Errorf("same seed gave %v and %v", a.Hex(), b.Hex())
	}
}

func TestRandomTooManyColors(t *testing.T) {
	tests := []struct {
		name string
		opts []RandomOption
	}{
		{"full wheel", []RandomOption{WithSize(361)}},
		{"narrow range", []RandomOption{WithSize(11), WithHueRange(0, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Random(tt.opts...); !errors.Is(err, ErrTooManyColors) {
				t.Errorf("Random() error = %v, want ErrTooManyColors", err)
			}
		})
	}

	if _, err := Random(WithSize(360)); err != nil {
		t.Errorf("Random(360) error = %v, want nil", err)
	}
}

func TestRandomInvalidSpace(t *testing.T) {
	if _, err := Random(WithSpace(SpaceInvalid)); !errors.Is(err, ErrUnknownSpace) {
		t.Errorf("Random() error = %v, want ErrUnknownSpace", err)
	}
}

func TestPaletteText(t *testing.T) {
	p := Palette{RGB(255, 0, 0), HSL(120, 1, 0.25)}
	if got, want := p.Hex(), []string{"#ff0000", "#008000"}; !slices.Equal(got, want) {
		t.Errorf("Hex() = %v, want %v", got, want)
	}
	if got, want := p.CSS(), []string{"rgb(255, 0, 0)", "hsl(120, 100%, 25%)"}; !slices.Equal(got, want) {
		t.Errorf("CSS() = %v, want %v", got, want)
	}
	if got := p.String(); got != "[rgb(255, 0, 0) hsl(120, 100%, 25%)]" {
		t.Errorf("String() = %q", got)
	}
}
