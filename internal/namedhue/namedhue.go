// Package namedhue resolves natural-language hue expressions such as "red",
// "yellow green" or "bluish(30%) green" to angles in degrees.
//
// A single base hue resolves to its fixed angle. Two base hues resolve to the
// midpoint between them. A splash hue followed by a base hue starts at the
// base hue and moves towards the splash hue by 25%, or by the percentage given
// in parentheses. Both hues must be neighbors on the six-point hue wheel.
package namedhue

import (
	"math"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
)

// Base hue angles in degrees.
var baseHues = map[string]float64{
	"red":    0,
	"orange": 30,
	"yellow": 60,
	"green":  120,
	"blue":   240,
	"purple": 300,
}

// Splash hues point at the base hue with the same angle.
var splashHues = map[string]string{
	"reddish":   "red",
	"orangish":  "orange",
	"yellowish": "yellow",
	"greenish":  "green",
	"bluish":    "blue",
	"purplish":  "purple",
}

// wheel is the position of each base hue on the six-point hue wheel.
var wheel = map[string]int{
	"red":    0,
	"orange": 1,
	"yellow": 2,
	"green":  3,
	"blue":   4,
	"purple": 5,
}

const defaultSplash = 0.25

var (
	singlePattern = regexp.MustCompile(`^\s*([a-z]+)\s*$`)
	pairPattern   = regexp.MustCompile(`^\s*([a-z]+)(?:\(\s*([-+]?\d+(?:\.\d+)?|[-+]?\.\d+)%\s*\))?\s+([a-z]+)\s*$`)
)

// Parse resolves expr to an angle in [0, 360). It reports false if expr is
// not a valid hue expression.
func Parse(expr string) (float64, bool) {
	expr = cases.Fold().String(expr)
	if m := singlePattern.FindStringSubmatch(expr); m != nil {
		h, ok := baseHues[m[1]]
		return h, ok
	}
	m := pairPattern.FindStringSubmatch(expr)
	if m == nil {
		return 0, false
	}
	first, weight, base := m[1], m[2], m[3]
	if _, ok := baseHues[base]; !ok {
		return 0, false
	}

	if _, ok := baseHues[first]; ok {
		if weight != "" {
			return 0, false
		}
		from, to, ok := neighbors(first, base)
		if !ok {
			return 0, false
		}
		return wrap((from + to) / 2), true
	}

	splash, ok := splashHues[first]
	if !ok {
		return 0, false
	}
	w := defaultSplash
	if weight != "" {
		pct, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return 0, false
		}
		w = pct / 100
	}
	from, to, ok := neighbors(splash, base)
	if !ok {
		return 0, false
	}
	return wrap(to + (from-to)*w), true
}

// IsBase reports whether name is one of the six base hue keywords.
func IsBase(name string) bool {
	_, ok := baseHues[cases.Fold().String(name)]
	return ok
}

// neighbors returns the angles of a and b if they are adjacent on the hue
// wheel. For the pair straddling 0°, the hue at 0° is returned as 360°.
func neighbors(a, b string) (ha, hb float64, ok bool) {
	d := wheel[a] - wheel[b]
	if d < 0 {
		d = -d
	}
	if d != 1 && d != 5 {
		return 0, 0, false
	}
	ha, hb = baseHues[a], baseHues[b]
	if d == 5 {
		if ha < hb {
			ha += 360
		} else {
			hb += 360
		}
	}
	return ha, hb, true
}

func wrap(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}
