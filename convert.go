package kolor

import (
	"math"

	"github.com/gogpu/kolor/internal/graph"
)

// converter is a pure function from a color in one space to a new color in
// another space.
type converter func(Color) Color

// step is the label of a conversion graph edge.
type step struct {
	to      Space
	convert converter
}

var (
	conversions = graph.New[Space, step]()

	// paths holds the shortest converter chain for every pair of spaces,
	// computed once after all edges are registered.
	paths    [numSpaces][numSpaces][]step
	pathErrs [numSpaces][numSpaces]error
)

func addConverter(from, to Space, f converter) {
	conversions.AddEdge(from, to, step{to: to, convert: f})
}

func init() {
	for _, s := range Spaces() {
		conversions.AddNode(s)
	}

	addConverter(SpaceRGB, SpaceRGBA, addAlpha)

	addConverter(SpaceRGBA, SpaceRGB, dropAlpha)
	addConverter(SpaceRGBA, SpaceHSLA, rgbaToHSLA)
	addConverter(SpaceRGBA, SpaceHSVA, rgbaToHSVA)
	addConverter(SpaceRGBA, SpaceGray, rgbaToGray)
	addConverter(SpaceRGBA, SpaceCMYK, rgbaToCMYK)

	addConverter(SpaceHSL, SpaceHSLA, addAlpha)

	addConverter(SpaceHSLA, SpaceHSL, dropAlpha)
	addConverter(SpaceHSLA, SpaceRGBA, hslaToRGBA)
	addConverter(SpaceHSLA, SpaceHSVA, hslaToHSVA)

	addConverter(SpaceHSV, SpaceHSVA, addAlpha)

	addConverter(SpaceHSVA, SpaceHSV, dropAlpha)
	addConverter(SpaceHSVA, SpaceRGBA, hsvaToRGBA)
	addConverter(SpaceHSVA, SpaceHSLA, hsvaToHSLA)
	addConverter(SpaceHSVA, SpaceHWB, hsvaToHWB)

	addConverter(SpaceHWB, SpaceHSVA, hwbToHSVA)
	addConverter(SpaceGray, SpaceRGBA, grayToRGBA)
	addConverter(SpaceCMYK, SpaceRGBA, cmykToRGBA)

	for _, from := range Spaces() {
		for _, to := range Spaces() {
			paths[from][to], pathErrs[from][to] = conversions.ShortestPath(from, to)
		}
	}
}

// ConversionPath returns the spaces visited when converting from one space to
// another, both ends included.
func ConversionPath(from, to Space) ([]Space, error) {
	if !from.Valid() || !to.Valid() {
		return nil, &ConversionError{From: from, To: to}
	}
	if err := pathErrs[from][to]; err != nil {
		return nil, &ConversionError{From: from, To: to, Err: err}
	}
	res := []Space{from}
	for _, st := range paths[from][to] {
		res = append(res, st.to)
	}
	return res, nil
}

// To converts c to space s along the shortest chain of registered
// converters. Converting to the own space returns a copy.
func (c Color) To(s Space) (Color, error) {
	if !c.space.Valid() || !s.Valid() {
		return Color{}, &ConversionError{From: c.space, To: s}
	}
	if err := pathErrs[c.space][s]; err != nil {
		return Color{}, &ConversionError{From: c.space, To: s, Err: err}
	}
	res := c
	for _, st := range paths[c.space][s] {
		res = st.convert(res)
	}
	return res, nil
}

// must is To for spaces that are known to be reachable. All registered
// spaces are connected, so only an invalid color makes it panic.
func (c Color) must(s Space) Color {
	res, err := c.To(s)
	if err != nil {
		panic(err)
	}
	return res
}

// RGB converts c to SpaceRGB. Like the other conversion methods it panics
// with a *ConversionError if c is invalid.
func (c Color) RGB() Color { return c.must(SpaceRGB) }

// RGBA converts c to SpaceRGBA.
func (c Color) RGBA() Color { return c.must(SpaceRGBA) }

// HSL converts c to SpaceHSL.
func (c Color) HSL() Color { return c.must(SpaceHSL) }

// HSLA converts c to SpaceHSLA.
func (c Color) HSLA() Color { return c.must(SpaceHSLA) }

// HSV converts c to SpaceHSV.
func (c Color) HSV() Color { return c.must(SpaceHSV) }

// HSVA converts c to SpaceHSVA.
func (c Color) HSVA() Color { return c.must(SpaceHSVA) }

// HWB converts c to SpaceHWB.
func (c Color) HWB() Color { return c.must(SpaceHWB) }

// Gray converts c to SpaceGray.
func (c Color) Gray() Color { return c.must(SpaceGray) }

// CMYK converts c to SpaceCMYK.
func (c Color) CMYK() Color { return c.must(SpaceCMYK) }

// addAlpha appends an opaque alpha channel.
func addAlpha(c Color) Color {
	return build(c.space.WithAlpha(), append(c.Values(), 1)...)
}

// dropAlpha removes the trailing alpha channel.
func dropAlpha(c Color) Color {
	return build(c.space.WithoutAlpha(), c.v[:c.Len()-1]...)
}

// hue returns the hue angle shared by the HSL and HSV models for normalized
// r, g, b.
func hue(r, g, b, max, min float64) float64 {
	diff := max - min
	switch {
	case max == min:
		return 0
	case max == r && g >= b:
		return 60*(g-b)/diff + 0
	case max == r && g < b:
		return 60*(g-b)/diff + 360
	case max == g:
		return 60*(b-r)/diff + 120
	default: // max == b
		return 60*(r-g)/diff + 240
	}
}

func rgbaToHSLA(c Color) Color {
	r, g, b, a := c.v[0]/255, c.v[1]/255, c.v[2]/255, c.v[3]
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	diff, sum := max-min, max+min

	h := hue(r, g, b, max, min)
	l := sum / 2

	var s float64
	switch {
	case l == 0 || max == min:
		s = 0
	case l <= 0.5:
		s = diff / sum
	default:
		s = diff / (2 - sum)
	}
	return build(SpaceHSLA, h, s, l, a)
}

func rgbaToHSVA(c Color) Color {
	r, g, b, a := c.v[0]/255, c.v[1]/255, c.v[2]/255, c.v[3]
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	h := hue(r, g, b, max, min)
	var s float64
	if max != 0 {
		s = (max - min) / max
	}
	return build(SpaceHSVA, h, s, max, a)
}

func hslaToRGBA(c Color) Color {
	h, s, l, a := c.v[0], c.v[1], c.v[2], c.v[3]
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	t := [3]float64{hk + 1.0/3, hk, hk - 1.0/3}
	var rgb [3]float64
	for i, tc := range t {
		if tc < 0 {
			tc++
		}
		if tc > 1 {
			tc--
		}
		switch {
		case tc < 1.0/6:
			rgb[i] = p + (q-p)*6*tc
		case tc < 0.5:
			rgb[i] = q
		case tc < 2.0/3:
			rgb[i] = p + (q-p)*6*(2.0/3-tc)
		default:
			rgb[i] = p
		}
		rgb[i] *= 255
	}
	return build(SpaceRGBA, rgb[0], rgb[1], rgb[2], a)
}

func hsvaToRGBA(c Color) Color {
	h, s, v, a := c.v[0], c.v[1], c.v[2], c.v[3]
	hi := math.Floor(h / 60)
	f := h/60 - hi
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch hi {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return build(SpaceRGBA, r*255, g*255, b*255, a)
}

func hslaToHSVA(c Color) Color {
	h, s, l, a := c.v[0], c.v[1], c.v[2], c.v[3]
	v := l + s*math.Min(l, 1-l)
	var sv float64
	if v != 0 {
		sv = 2 * (1 - l/v)
	}
	return build(SpaceHSVA, h, sv, v, a)
}

func hsvaToHSLA(c Color) Color {
	h, s, v, a := c.v[0], c.v[1], c.v[2], c.v[3]
	l := v * (1 - s/2)
	var sl float64
	if l != 0 && l != 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return build(SpaceHSLA, h, sl, l, a)
}

func hsvaToHWB(c Color) Color {
	h, s, v, a := c.v[0], c.v[1], c.v[2], c.v[3]
	return build(SpaceHWB, h, (1-s)*v, 1-v, a)
}

func hwbToHSVA(c Color) Color {
	h, w, b, a := c.v[0], c.v[1], c.v[2], c.v[3]
	v := 1 - b
	var s float64
	if v != 0 {
		s = 1 - w/v
	}
	return build(SpaceHSVA, h, s, v, a)
}

// rgbaToGray takes the shade of the fully desaturated color.
func rgbaToGray(c Color) Color {
	g := c.Grayscale()
	return build(SpaceGray, g.v[0], c.v[3])
}

func grayToRGBA(c Color) Color {
	return build(SpaceRGBA, c.v[0], c.v[0], c.v[0], c.v[1])
}

// rgbaToCMYK uses the naive subtractive model without color management.
func rgbaToCMYK(c Color) Color {
	r, g, b, a := c.v[0]/255, c.v[1]/255, c.v[2]/255, c.v[3]
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return build(SpaceCMYK, 0, 0, 0, k, a)
	}
	return build(SpaceCMYK, (1-r-k)/(1-k), (1-g-k)/(1-k), (1-b-k)/(1-k), k, a)
}

func cmykToRGBA(c Color) Color {
	cy, m, y, k, a := c.v[0], c.v[1], c.v[2], c.v[3], c.v[4]
	ink := func(x float64) float64 {
		return 255 * (1 - math.Min(1, x*(1-k)+k))
	}
	return build(SpaceRGBA, ink(cy), ink(m), ink(y), a)
}

// roundHalfUp rounds x to the nearest integer, halves towards +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
