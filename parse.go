package kolor

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/kolor/internal/cache"
)

// parseCacheSize bounds the number of remembered expressions.
const parseCacheSize = 512

// parseCache maps expressions to the colors they parsed to. Failures are
// not cached.
var parseCache = cache.New[string, Color](parseCacheSize)

var hexPattern = regexp.MustCompile(`(?i)^\s*#?([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})\s*$`)

// Parse converts a color expression to a Color. The expression can be
//   - a color keyword such as "rebeccapurple" or "transparent",
//   - a hex value with 3, 4, 6 or 8 digits and an optional leading "#",
//   - a functional notation such as "rgba(255, 0, 0, .5)",
//     "hsl(120, 50%, 25%)", "hwb(0, 20%, 30%)" or "device-cmyk(0, 1, 1, 0)".
//
// Keywords and 3 or 6 digit hex values produce SpaceRGB colors, 4 and 8 digit
// hex values produce SpaceRGBA colors, and functional notations produce colors
// in the space they name. Channel values that cannot be parsed take their
// default. If the expression as a whole is not recognized, the error is a
// *ParseError.
func Parse(expr string) (Color, error) {
	if c, ok := parseCache.Get(expr); ok {
		return c, nil
	}
	c, err := parse(expr)
	if err != nil {
		Logger().Debug("kolor: unparseable expression", "expr", expr)
		return Color{}, err
	}
	parseCache.Add(expr, c)
	return c, nil
}

func parse(expr string) (Color, error) {
	if named, ok := LookupName(expr); ok {
		return parse(named)
	}

	if m := hexPattern.FindStringSubmatch(expr); m != nil {
		return parseHex(m[1]), nil
	}

	for _, s := range Spaces() {
		m := schemas[s].pattern.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		args := make([]any, len(m)-1)
		for i, g := range m[1:] {
			if g != "" {
				args[i] = g
			}
		}
		return construct(s, args, nil), nil
	}

	return Color{}, &ParseError{Expr: expr}
}

// MustParse is like Parse but panics if the expression cannot be parsed.
func MustParse(expr string) Color {
	c, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// Of converts v to a Color. A Color is cloned, a string is parsed with Parse
// and an image/color.Color is converted with FromStdColor.
func Of(v any) (Color, error) {
	switch x := v.(type) {
	case Color:
		if !x.IsValid() {
			return Color{}, &ParseError{Expr: x.String()}
		}
		return New(x.space, x.Values()), nil
	case string:
		return Parse(x)
	case color.Color:
		return FromStdColor(x), nil
	}
	return Color{}, &ParseError{Expr: fmt.Sprint(v)}
}

// parseHex decodes 3, 4, 6 or 8 hex digits.
func parseHex(hex string) Color {
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for i := 0; i < len(hex); i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		hex = b.String()
	}

	var bytes [4]uint64
	for i := 0; i < len(hex)/2; i++ {
		// The pattern guarantees valid digits.
		bytes[i], _ = strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
	}

	if len(hex) == 6 {
		return RGB(bytes[0], bytes[1], bytes[2])
	}
	alpha := strconv.FormatFloat(float64(bytes[3])/255*100, 'f', -1, 64) + "%"
	return RGBA(bytes[0], bytes[1], bytes[2], alpha)
}
