package kolor

import (
	"math"

	"github.com/gogpu/kolor/internal/color"
)

// Channel positions in the HSLA working space.
const (
	hslHue = iota
	hslSaturation
	hslLightness
)

// Mix blends c with other using the Sass mixing algorithm. proportion is
// the weight of c in [0, 1]; 0.5 mixes both colors evenly. The weights of the
// RGB channels take the alpha difference of the two colors into account.
// The result is in the space of c.
func (c Color) Mix(other Color, proportion float64) Color {
	dest, src := c.RGBA(), other.RGBA()
	p := proportion
	w := p*2 - 1
	a := dest.v[3] - src.v[3]

	var w1 float64
	if w*a == -1 {
		w1 = (w + 1) / 2
	} else {
		w1 = ((w+a)/(1+w*a) + 1) / 2
	}
	w2 := 1 - w1

	res := build(SpaceRGBA,
		dest.v[0]*w1+src.v[0]*w2,
		dest.v[1]*w1+src.v[1]*w2,
		dest.v[2]*w1+src.v[2]*w2,
		dest.v[3]*p+src.v[3]*(1-p),
	)
	return res.must(c.space)
}

// Spin rotates the hue of c by deg degrees, counter-clockwise for negative
// values. The result is in the space of c.
func (c Color) Spin(deg float64) Color {
	h := c.HSLA()
	h = h.with(hslHue, math.Mod(h.v[hslHue]+deg, 360))
	return h.must(c.space)
}

// Saturate increases the HSL saturation of c by amount.
func (c Color) Saturate(amount float64) Color {
	h := c.HSLA()
	h = h.with(hslSaturation, h.v[hslSaturation]+amount)
	return h.must(c.space)
}

// Desaturate decreases the HSL saturation of c by amount.
func (c Color) Desaturate(amount float64) Color {
	return c.Saturate(-amount)
}

// Lighten increases the HSL lightness of c by amount.
func (c Color) Lighten(amount float64) Color {
	h := c.HSLA()
	h = h.with(hslLightness, h.v[hslLightness]+amount)
	return h.must(c.space)
}

// Darken decreases the HSL lightness of c by amount.
func (c Color) Darken(amount float64) Color {
	return c.Lighten(-amount)
}

// FadeIn increases the alpha of c by amount. Colors in a space without an
// alpha channel are converted to the alpha-bearing sibling first, and the
// result stays in that space.
func (c Color) FadeIn(amount float64) Color {
	res := c.must(c.space.WithAlpha())
	i := res.Len() - 1
	return res.with(i, res.v[i]+amount)
}

// FadeOut decreases the alpha of c by amount. See FadeIn.
func (c Color) FadeOut(amount float64) Color {
	return c.FadeIn(-amount)
}

// Grayscale removes all HSL saturation from c.
func (c Color) Grayscale() Color {
	return c.Desaturate(1)
}

// Complement spins the hue of c by 180 degrees.
func (c Color) Complement() Color {
	return c.Spin(180)
}

// Luminance returns the WCAG 2.0 relative luminance of c in [0, 1].
func (c Color) Luminance() float64 {
	rgb := c.RGB()
	return color.RelativeLuminance(rgb.v[0], rgb.v[1], rgb.v[2])
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between c and other, in
// [1, 21]. The ratio is symmetric.
func (c Color) ContrastRatio(other Color) float64 {
	return color.ContrastRatio(c.Luminance(), other.Luminance())
}
