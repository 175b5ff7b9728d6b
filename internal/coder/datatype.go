// Package coder converts raw channel inputs into normalized floats and
// normalized floats back into CSS text.
//
// Inputs are either Go numbers or strings. Each channel accepts a set of
// datatypes; parsing tries them in a fixed order (Integer, Number, Percent,
// Angle) and the first datatype that recognizes the input wins.
package coder

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/kolor/internal/namedhue"
)

// DataType is a bit set of textual datatypes a channel understands.
type DataType uint8

const (
	// Integer accepts Go numbers (rounded) and strings of digits: 0, 128, 255.
	Integer DataType = 1 << iota
	// Number accepts Go numbers and decimal strings: 0, 0.5, .75.
	Number
	// Percent accepts decimal strings with a trailing percent sign: 10%, 87.5%.
	Percent
	// Angle accepts decimal strings with a trailing "deg" and named hues.
	Angle
)

// order is the priority in which datatypes are tried.
var order = [...]DataType{Integer, Number, Percent, Angle}

var (
	integerPattern = regexp.MustCompile(`^[-+]?\d+$`)
	numberPattern  = regexp.MustCompile(`^(?:[-+]?\d+(?:\.\d+)?|[-+]?\.\d+)$`)
	percentPattern = regexp.MustCompile(`^([-+]?\d+(?:\.\d+)?|[-+]?\.\d+)%$`)
	anglePattern   = regexp.MustCompile(`(?i)^([-+]?\d+(?:\.\d+)?|[-+]?\.\d+)deg$`)
)

// Has reports whether t contains any of the datatypes in o.
func (t DataType) Has(o DataType) bool {
	return t&o != 0
}

// String returns the datatype names joined by "|".
func (t DataType) String() string {
	var names []string
	for _, d := range order {
		if !t.Has(d) {
			continue
		}
		switch d {
		case Integer:
			names = append(names, "integer")
		case Number:
			names = append(names, "number")
		case Percent:
			names = append(names, "percent")
		case Angle:
			names = append(names, "angle")
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Decode tries every datatype in types, in priority order, and returns the
// value produced by the first one that accepts v. Percent values are returned
// as ratios (50% -> 0.5); scaling them to a channel range is up to the caller.
func Decode(v any, types DataType) (float64, DataType, bool) {
	for _, d := range order {
		if !types.Has(d) {
			continue
		}
		var (
			x  float64
			ok bool
		)
		switch d {
		case Integer:
			x, ok = decodeInteger(v)
		case Number:
			x, ok = decodeNumber(v)
		case Percent:
			x, ok = decodePercent(v)
		case Angle:
			x, ok = decodeAngle(v)
		}
		if ok {
			return x, d, true
		}
	}
	return 0, 0, false
}

func decodeInteger(v any) (float64, bool) {
	if x, ok := numeric(v); ok {
		return roundHalfUp(x), true
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if !integerPattern.MatchString(s) {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

func decodeNumber(v any) (float64, bool) {
	if x, ok := numeric(v); ok {
		return x, true
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if !numberPattern.MatchString(s) {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

func decodePercent(v any) (float64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	m := percentPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return x / 100, true
}

func decodeAngle(v any) (float64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if m := anglePattern.FindStringSubmatch(s); m != nil {
		x, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return x, true
	}
	return namedhue.Parse(s)
}

// numeric extracts a finite float from any Go number type.
func numeric(v any) (float64, bool) {
	var x float64
	switch n := v.(type) {
	case float64:
		x = n
	case float32:
		x = float64(n)
	case int:
		x = float64(n)
	case int8:
		x = float64(n)
	case int16:
		x = float64(n)
	case int32:
		x = float64(n)
	case int64:
		x = float64(n)
	case uint:
		x = float64(n)
	case uint8:
		x = float64(n)
	case uint16:
		x = float64(n)
	case uint32:
		x = float64(n)
	case uint64:
		x = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// roundHalfUp rounds x to the nearest integer, with halves rounded towards
// positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
