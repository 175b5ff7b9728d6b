package kolor

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gogpu/kolor/internal/coder"
)

// Space identifies a registered color space.
type Space uint8

const (
	// SpaceInvalid is the space of the zero Color.
	SpaceInvalid Space = iota
	// SpaceRGB has red, green and blue channels in [0, 255].
	SpaceRGB
	// SpaceRGBA is SpaceRGB with an alpha channel in [0, 1].
	SpaceRGBA
	// SpaceHSL has hue in [0, 360) and saturation and lightness in [0, 1].
	SpaceHSL
	// SpaceHSLA is SpaceHSL with an alpha channel.
	SpaceHSLA
	// SpaceHSV has hue in [0, 360) and saturation and value in [0, 1].
	SpaceHSV
	// SpaceHSVA is SpaceHSV with an alpha channel.
	SpaceHSVA
	// SpaceHWB has hue, whiteness and blackness, and an optional alpha channel.
	SpaceHWB
	// SpaceGray has a single shade in [0, 255] and an optional alpha channel.
	SpaceGray
	// SpaceCMYK is a naive subtractive model with inks in [0, 1] and an
	// optional alpha channel.
	SpaceCMYK

	numSpaces
)

// maxChannels is the channel count of the widest space (CMYK with alpha).
const maxChannels = 5

// Channel describes one component of a color space.
type Channel = coder.Channel

// schema is the registry entry of one space.
type schema struct {
	name     string
	css      string
	channels []Channel
	pattern  *regexp.Regexp
	index    map[string]int // channel names and aliases to positions
}

// schemas is the space registry, indexed by Space.
var schemas = registry()

func rgbChannel(name, alias string) Channel {
	return Channel{
		Name:    name,
		Aliases: []string{alias},
		Types:   coder.Integer | coder.Percent,
		CSSType: coder.Integer,
		Min:     0,
		Max:     255,
		Mode:    coder.Clamp,
		Initial: 255,
	}
}

func ratioChannel(name string, css coder.DataType, aliases ...string) Channel {
	return Channel{
		Name:    name,
		Aliases: aliases,
		Types:   coder.Number | coder.Percent,
		CSSType: css,
		Min:     0,
		Max:     1,
		Mode:    coder.Clamp,
		Initial: 0,
	}
}

func hueChannel() Channel {
	return Channel{
		Name:    "hue",
		Aliases: []string{"h"},
		Types:   coder.Number | coder.Angle,
		CSSType: coder.Number,
		Min:     0,
		Max:     360,
		Mode:    coder.Wrap,
		Initial: 0,
	}
}

func alphaChannel(optional bool) Channel {
	return Channel{
		Name:     "alpha",
		Aliases:  []string{"a"},
		Types:    coder.Number | coder.Percent,
		CSSType:  coder.Number,
		Min:      0,
		Max:      1,
		Mode:     coder.Clamp,
		Initial:  1,
		Optional: optional,
	}
}

// notation builds the pattern of a comma separated functional notation with
// n required arguments, followed by an optional alpha argument if requested.
func notation(name string, n int, optionalAlpha bool) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)^\s*` + name + `\(`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(`,`)
		}
		b.WriteString(`\s*([^,]+?)\s*`)
	}
	if optionalAlpha {
		b.WriteString(`(?:,\s*([^,]+?)\s*)?`)
	}
	b.WriteString(`\)\s*$`)
	return regexp.MustCompile(b.String())
}

func newSchema(name, pattern string, optionalAlpha bool, channels ...Channel) schema {
	n := len(channels)
	if optionalAlpha {
		n--
	}
	sc := schema{
		name:     name,
		css:      strings.ToLower(name),
		channels: channels,
		pattern:  notation(pattern, n, optionalAlpha),
		index:    make(map[string]int),
	}
	for i := range sc.channels {
		ch := &sc.channels[i]
		sc.index[ch.Name] = i
		for _, a := range ch.Aliases {
			sc.index[a] = i
		}
	}
	return sc
}

func registry() [numSpaces]schema {
	var r [numSpaces]schema
	percent, number := coder.Percent, coder.Number

	r[SpaceRGB] = newSchema("RGB", "rgb", false,
		rgbChannel("red", "r"), rgbChannel("green", "g"), rgbChannel("blue", "b"))
	r[SpaceRGBA] = newSchema("RGBA", "rgba", false,
		rgbChannel("red", "r"), rgbChannel("green", "g"), rgbChannel("blue", "b"),
		alphaChannel(false))
	r[SpaceHSL] = newSchema("HSL", "hsl", false,
		hueChannel(), ratioChannel("saturation", percent, "s"), ratioChannel("lightness", percent, "l"))
	r[SpaceHSLA] = newSchema("HSLA", "hsla", false,
		hueChannel(), ratioChannel("saturation", percent, "s"), ratioChannel("lightness", percent, "l"),
		alphaChannel(false))
	r[SpaceHSV] = newSchema("HSV", "hsv", false,
		hueChannel(), ratioChannel("saturation", percent, "s"), ratioChannel("value", percent, "v"))
	r[SpaceHSVA] = newSchema("HSVA", "hsva", false,
		hueChannel(), ratioChannel("saturation", percent, "s"), ratioChannel("value", percent, "v"),
		alphaChannel(false))
	r[SpaceHWB] = newSchema("HWB", "hwb", true,
		hueChannel(), ratioChannel("whiteness", percent, "w"), ratioChannel("blackness", percent, "b"),
		alphaChannel(true))

	shade := rgbChannel("shade", "s")
	shade.Aliases = append(shade.Aliases, "gray")
	shade.Initial = 0
	r[SpaceGray] = newSchema("GRAY", "gray", true, shade, alphaChannel(true))

	r[SpaceCMYK] = newSchema("CMYK", "(?:device-)?cmyk", true,
		ratioChannel("cyan", number, "c"), ratioChannel("magenta", number, "m"),
		ratioChannel("yellow", number, "y"), ratioChannel("black", number, "k", "key"),
		alphaChannel(true))
	return r
}

// Spaces returns the registered spaces in registry order. This is the order
// in which Parse tries functional notations.
func Spaces() []Space {
	res := make([]Space, 0, numSpaces-1)
	for s := SpaceRGB; s < numSpaces; s++ {
		res = append(res, s)
	}
	return res
}

// Valid reports whether s is a registered space.
func (s Space) Valid() bool {
	return s > SpaceInvalid && s < numSpaces
}

// String returns the upper-case space identifier, for example "RGBA".
func (s Space) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
	return schemas[s].name
}

// CSSName returns the function name used in CSS notation, for example "rgba".
func (s Space) CSSName() string {
	if !s.Valid() {
		return ""
	}
	return schemas[s].css
}

// Len returns the number of channels of s.
func (s Space) Len() int {
	if !s.Valid() {
		return 0
	}
	return len(schemas[s].channels)
}

// Channels returns a copy of the channel schemas of s, in order.
func (s Space) Channels() []Channel {
	if !s.Valid() {
		return nil
	}
	res := slices.Clone(schemas[s].channels)
	for i := range res {
		res[i].Aliases = slices.Clone(res[i].Aliases)
	}
	return res
}

// ChannelIndex returns the position of the channel with the given name or
// alias.
func (s Space) ChannelIndex(name string) (int, bool) {
	if !s.Valid() {
		return 0, false
	}
	i, ok := schemas[s].index[name]
	if !ok {
		i, ok = schemas[s].index[strings.ToLower(name)]
	}
	return i, ok
}

// HasAlpha reports whether the last channel of s is an alpha channel.
func (s Space) HasAlpha() bool {
	if !s.Valid() {
		return false
	}
	chs := schemas[s].channels
	return chs[len(chs)-1].Name == "alpha"
}

// WithAlpha returns the alpha-bearing sibling of s. Spaces which already have
// an alpha channel are returned unchanged.
func (s Space) WithAlpha() Space {
	switch s {
	case SpaceRGB:
		return SpaceRGBA
	case SpaceHSL:
		return SpaceHSLA
	case SpaceHSV:
		return SpaceHSVA
	}
	return s
}

// WithoutAlpha returns the sibling of s without an alpha channel. Spaces
// without such a sibling are returned unchanged.
func (s Space) WithoutAlpha() Space {
	switch s {
	case SpaceRGBA:
		return SpaceRGB
	case SpaceHSLA:
		return SpaceHSL
	case SpaceHSVA:
		return SpaceHSV
	}
	return s
}

// ParseSpace looks up a space by its identifier, ignoring case.
// "device-cmyk" is accepted as an alias of CMYK.
func ParseSpace(name string) (Space, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "device-cmyk") {
		return SpaceCMYK, nil
	}
	for _, s := range Spaces() {
		if strings.EqualFold(name, schemas[s].name) {
			return s, nil
		}
	}
	return SpaceInvalid, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}
