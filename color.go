package kolor

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a color value in one registered space: a space tag plus one
// normalized float64 per channel of that space, in schema order.
//
// Color is an immutable value type. Setters return a modified copy and
// conversions always produce a new Color. The zero Color is invalid and is
// never returned by a successful parse.
type Color struct {
	space Space
	v     [maxChannels]float64
}

// New creates a color in space s. The channel values can be given as
// positional arguments, as a single slice, or as a single map keyed by
// channel names or aliases:
//
//	kolor.New(kolor.SpaceRGB, 255, 0, 0)
//	kolor.New(kolor.SpaceRGB, []any{"100%", 0, 0})
//	kolor.New(kolor.SpaceRGB, map[string]any{"r": 255, "green": 0})
//
// Values may be Go numbers or strings in any datatype the channel accepts.
// Missing and unparseable values fall back to the channel default.
func New(s Space, args ...any) Color {
	if !s.Valid() {
		return Color{}
	}
	if len(args) == 1 {
		switch a := args[0].(type) {
		case []any:
			return construct(s, a, nil)
		case []float64:
			return construct(s, toAny(a), nil)
		case []int:
			return construct(s, toAny(a), nil)
		case []string:
			return construct(s, toAny(a), nil)
		case map[string]any:
			return construct(s, nil, a)
		case map[string]float64:
			return construct(s, nil, mapToAny(a))
		case map[string]int:
			return construct(s, nil, mapToAny(a))
		case map[string]string:
			return construct(s, nil, mapToAny(a))
		}
	}
	return construct(s, args, nil)
}

// RGB creates a color in SpaceRGB. See New for the accepted arguments.
func RGB(args ...any) Color { return New(SpaceRGB, args...) }

// RGBA creates a color in SpaceRGBA. See New for the accepted arguments.
func RGBA(args ...any) Color { return New(SpaceRGBA, args...) }

// HSL creates a color in SpaceHSL. See New for the accepted arguments.
func HSL(args ...any) Color { return New(SpaceHSL, args...) }

// HSLA creates a color in SpaceHSLA. See New for the accepted arguments.
func HSLA(args ...any) Color { return New(SpaceHSLA, args...) }

// HSV creates a color in SpaceHSV. See New for the accepted arguments.
func HSV(args ...any) Color { return New(SpaceHSV, args...) }

// HSVA creates a color in SpaceHSVA. See New for the accepted arguments.
func HSVA(args ...any) Color { return New(SpaceHSVA, args...) }

// HWB creates a color in SpaceHWB. See New for the accepted arguments.
func HWB(args ...any) Color { return New(SpaceHWB, args...) }

// Gray creates a color in SpaceGray. See New for the accepted arguments.
func Gray(args ...any) Color { return New(SpaceGray, args...) }

// CMYK creates a color in SpaceCMYK. See New for the accepted arguments.
func CMYK(args ...any) Color { return New(SpaceCMYK, args...) }

// construct resolves every channel in the order positional, full name,
// alias, default.
func construct(s Space, positional []any, named map[string]any) Color {
	c := Color{space: s}
	for i := range schemas[s].channels {
		ch := &schemas[s].channels[i]
		param, ok := lookupArg(ch, i, positional, named)
		if !ok {
			c.v[i] = ch.Initial
			continue
		}
		c.v[i] = ch.Parse(param)
	}
	return c
}

func lookupArg(ch *Channel, i int, positional []any, named map[string]any) (any, bool) {
	if i < len(positional) && positional[i] != nil {
		return positional[i], true
	}
	if v, ok := named[ch.Name]; ok && v != nil {
		return v, true
	}
	for _, a := range ch.Aliases {
		if v, ok := named[a]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// build creates a color from raw numbers, normalizing each of them through
// its channel. Missing trailing values take the channel default.
func build(s Space, values ...float64) Color {
	c := Color{space: s}
	for i := range schemas[s].channels {
		ch := &schemas[s].channels[i]
		if i < len(values) {
			c.v[i] = ch.Parse(values[i])
		} else {
			c.v[i] = ch.Initial
		}
	}
	return c
}

func toAny[T any](values []T) []any {
	res := make([]any, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

func mapToAny[T any](values map[string]T) map[string]any {
	res := make(map[string]any, len(values))
	for k, v := range values {
		res[k] = v
	}
	return res
}

// Space returns the space of c.
func (c Color) Space() Space {
	return c.space
}

// IsValid reports whether c belongs to a registered space.
func (c Color) IsValid() bool {
	return c.space.Valid()
}

// Len returns the number of channels of c.
func (c Color) Len() int {
	return c.space.Len()
}

// Values returns the channel values of c in schema order.
// For rgba(255, 0, 0, 1) the result is [255 0 0 1].
func (c Color) Values() []float64 {
	return append([]float64(nil), c.v[:c.Len()]...)
}

// At returns the value of the i-th channel. It panics if i is out of range.
func (c Color) At(i int) float64 {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("kolor: channel index %d out of range for %s", i, c.space))
	}
	return c.v[i]
}

// SetAt returns a copy of c with the i-th channel set to v. The value is
// parsed and normalized like constructor arguments. It panics if i is out of
// range.
func (c Color) SetAt(i int, v any) Color {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("kolor: channel index %d out of range for %s", i, c.space))
	}
	c.v[i] = schemas[c.space].channels[i].Parse(v)
	return c
}

// with is SetAt for numbers computed by the package itself.
func (c Color) with(i int, v float64) Color {
	c.v[i] = schemas[c.space].channels[i].Parse(v)
	return c
}

// Lookup returns the value of the channel with the given name or alias.
func (c Color) Lookup(name string) (float64, bool) {
	i, ok := c.space.ChannelIndex(name)
	if !ok {
		return 0, false
	}
	return c.v[i], true
}

// Get returns the value of the channel with the given name or alias.
// It panics with a *ChannelError if the space of c has no such channel.
func (c Color) Get(name string) float64 {
	i, ok := c.space.ChannelIndex(name)
	if !ok {
		panic(&ChannelError{Space: c.space, Name: name})
	}
	return c.v[i]
}

// Set returns a copy of c with the named channel set to v, so that calls can
// be chained:
//
//	c = c.Set("r", 10).Set("green", "50%")
//
// It panics with a *ChannelError if the space of c has no such channel.
func (c Color) Set(name string, v any) Color {
	i, ok := c.space.ChannelIndex(name)
	if !ok {
		panic(&ChannelError{Space: c.space, Name: name})
	}
	return c.SetAt(i, v)
}

// Alpha returns the alpha channel of c, or 1 if its space has none.
func (c Color) Alpha() float64 {
	if !c.space.HasAlpha() {
		return 1
	}
	return c.v[c.Len()-1]
}

// CSS formats c in functional notation using the process-wide precision,
// for example "rgba(255, 0, 0, 0.5)". Optional channels equal to their
// default are left out.
func (c Color) CSS() string {
	return c.Format(CurrentPrecision())
}

// Format is like CSS but uses the given precision.
func (c Color) Format(p Precision) string {
	if !c.IsValid() {
		return ""
	}
	sc := &schemas[c.space]
	parts := make([]string, 0, len(sc.channels))
	for i := range sc.channels {
		ch := &sc.channels[i]
		if ch.Optional && c.v[i] == ch.Initial {
			continue
		}
		parts = append(parts, ch.Format(c.v[i], p))
	}
	return sc.css + "(" + strings.Join(parts, ", ") + ")"
}

// String implements fmt.Stringer. It returns the same as CSS.
func (c Color) String() string {
	if !c.IsValid() {
		return "kolor.Color(invalid)"
	}
	return c.CSS()
}

// Hex returns the "#rrggbb" form of c, converting to RGB first.
func (c Color) Hex() string {
	rgb := c.RGB()
	return "#" + hexByte(rgb.v[0]) + hexByte(rgb.v[1]) + hexByte(rgb.v[2])
}

// HexAlpha returns the "#rrggbbaa" form of c if its space has an alpha
// channel, and the same as Hex otherwise.
func (c Color) HexAlpha() string {
	if !c.space.HasAlpha() {
		return c.Hex()
	}
	rgba := c.RGBA()
	return "#" + hexByte(rgba.v[0]) + hexByte(rgba.v[1]) + hexByte(rgba.v[2]) + hexByte(rgba.v[3]*255)
}

func hexByte(v float64) string {
	return fmt.Sprintf("%02x", clamp255(roundHalfUp(v)))
}

// CopyFrom returns a color in the space of c carrying the channels of other,
// converted to that space first if needed.
func (c Color) CopyFrom(other Color) Color {
	if other.space != c.space {
		other = other.must(c.space)
	}
	res := Color{space: c.space}
	for i := 0; i < c.Len(); i++ {
		res = res.with(i, other.v[i])
	}
	return res
}

// NRGBA converts c to the non-premultiplied 8-bit color of the standard
// library.
func (c Color) NRGBA() color.NRGBA {
	rgba := c.RGBA()
	return color.NRGBA{
		R: clamp255(roundHalfUp(rgba.v[0])),
		G: clamp255(roundHalfUp(rgba.v[1])),
		B: clamp255(roundHalfUp(rgba.v[2])),
		A: clamp255(roundHalfUp(rgba.v[3] * 255)),
	}
}

// StdColor returns c as an image/color.Color.
func (c Color) StdColor() color.Color {
	return c.NRGBA()
}

// FromStdColor converts a standard color.Color to an RGBA color.
func FromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return build(SpaceRGBA, float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
