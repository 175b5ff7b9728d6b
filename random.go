package kolor

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Palette is an ordered set of generated colors.
type Palette []Color

// Hex returns the "#rrggbb" form of every color.
func (p Palette) Hex() []string {
	res := make([]string, len(p))
	for i, c := range p {
		res[i] = c.Hex()
	}
	return res
}

// CSS returns the functional notation of every color.
func (p Palette) CSS() []string {
	res := make([]string, len(p))
	for i, c := range p {
		res[i] = c.CSS()
	}
	return res
}

func (p Palette) String() string {
	return "[" + strings.Join(p.CSS(), " ") + "]"
}

// Random generates a palette of colors whose hues are spread evenly over
// the configured hue range. All hues share one random offset, so neighbors
// are exactly one interval apart. Saturation, lightness and alpha are drawn
// independently for every color.
//
// The interval is the hue range divided by the palette size, rounded down
// to whole degrees. If it is zero, Random returns ErrTooManyColors.
func Random(opts ...RandomOption) (Palette, error) {
	o := defaultRandomOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.space.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, o.space)
	}

	arc := math.Mod(360+o.hue.Max-o.hue.Min, 360)
	if arc == 0 {
		arc = 360
	}
	interval := math.Floor(arc / float64(o.size))
	if interval == 0 {
		return nil, fmt.Errorf("%w: %d colors in %g degrees", ErrTooManyColors, o.size, arc)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	offset := rng.Float64() * interval

	res := make(Palette, o.size)
	for i := range res {
		hue := math.Mod(360+o.hue.Min+interval*float64(i)+offset, 360)
		c := build(SpaceHSLA,
			hue,
			o.saturation.pick(rng),
			o.lightness.pick(rng),
			o.alpha.pick(rng),
		)
		res[i] = c.must(o.space)
	}

	if o.shuffle && len(res) > 1 {
		rng.Shuffle(len(res), func(i, j int) {
			res[i], res[j] = res[j], res[i]
		})
	}

	Logger().Debug("kolor: random palette",
		"size", o.size, "interval", interval, "offset", offset, "space", o.space)
	return res, nil
}

// RandomColor generates a single random color. The size option is ignored.
func RandomColor(opts ...RandomOption) (Color, error) {
	p, err := Random(append(opts[:len(opts):len(opts)], WithSize(1))...)
	if err != nil {
		return Color{}, err
	}
	return p[0], nil
}
