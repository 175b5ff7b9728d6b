package kolor

import "math/rand/v2"

// Range is a closed interval of channel values. A Range with Min == Max
// yields that fixed value.
type Range struct {
	Min, Max float64
}

// Fixed returns a Range holding the single value v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Between returns the Range [lo, hi].
func Between(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// IsFixed reports whether r holds a single value.
func (r Range) IsFixed() bool {
	return r.Min == r.Max
}

// pick draws a uniformly distributed value from r.
func (r Range) pick(rng *rand.Rand) float64 {
	if r.IsFixed() {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandomOption configures Random.
//
// Example:
//
//	// Five distinct pastel hues in the warm half of the wheel
//	p, err := kolor.Random(
//	    kolor.WithSize(5),
//	    kolor.WithHueRange(300, 120),
//	    kolor.WithLightness(kolor.Fixed(0.8)),
//	)
type RandomOption func(*randomOptions)

// randomOptions holds the settings of one Random call.
type randomOptions struct {
	size       int
	hue        Range
	saturation Range
	lightness  Range
	alpha      Range
	space      Space
	shuffle    bool
	rng        *rand.Rand
}

// defaultRandomOptions returns the settings used when no option is given:
// one fully random opaque RGB color.
func defaultRandomOptions() randomOptions {
	return randomOptions{
		size:       1,
		hue:        Between(0, 360),
		saturation: Between(0, 1),
		lightness:  Between(0, 1),
		alpha:      Fixed(1),
		space:      SpaceRGB,
		shuffle:    true,
	}
}

// WithSize sets the number of colors to generate. Values below 1 are
// treated as 1.
func WithSize(n int) RandomOption {
	return func(o *randomOptions) {
		o.size = max(n, 1)
	}
}

// WithHueRange restricts hues to the arc from start to end degrees, going
// counter-clockwise. The arc may cross 0, as in WithHueRange(300, 60). Equal
// ends select the full wheel.
func WithHueRange(start, end float64) RandomOption {
	return func(o *randomOptions) {
		o.hue = Between(start, end)
	}
}

// WithSaturation sets the HSL saturation range.
func WithSaturation(r Range) RandomOption {
	return func(o *randomOptions) {
		o.saturation = r
	}
}

// WithLightness sets the HSL lightness range.
func WithLightness(r Range) RandomOption {
	return func(o *randomOptions) {
		o.lightness = r
	}
}

// WithAlpha sets the alpha range. The default is Fixed(1).
func WithAlpha(r Range) RandomOption {
	return func(o *randomOptions) {
		o.alpha = r
	}
}

// WithSpace sets the space of the generated colors. The default is SpaceRGB.
func WithSpace(s Space) RandomOption {
	return func(o *randomOptions) {
		o.space = s
	}
}

// WithShuffle controls whether the palette is shuffled. Without shuffling
// the colors are ordered by hue, starting at the beginning of the hue range.
func WithShuffle(shuffle bool) RandomOption {
	return func(o *randomOptions) {
		o.shuffle = shuffle
	}
}

// WithSource sets the random number source, for reproducible palettes.
func WithSource(rng *rand.Rand) RandomOption {
	return func(o *randomOptions) {
		o.rng = rng
	}
}
