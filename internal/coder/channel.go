package coder

import (
	"math"
	"slices"
)

// Mode selects how out-of-range values are brought back into a channel's
// range.
type Mode uint8

const (
	// Clamp pins values to the nearest end of the range.
	Clamp Mode = iota
	// Wrap maps values into the range with a modulo operation.
	Wrap
)

// Channel describes one scalar component of a color space.
type Channel struct {
	Name     string
	Aliases  []string
	Types    DataType // datatypes accepted on input
	CSSType  DataType // datatype used for output, exactly one bit
	Min, Max float64
	Mode     Mode
	Initial  float64
	Optional bool // omitted from CSS output when equal to Initial
}

// Matches reports whether key is the channel name or one of its aliases.
func (ch *Channel) Matches(key string) bool {
	return key == ch.Name || slices.Contains(ch.Aliases, key)
}

// Bounds returns the channel range with its ends in ascending order.
func (ch *Channel) Bounds() (lo, hi float64) {
	lo, hi = ch.Min, ch.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Width returns the size of the channel range.
func (ch *Channel) Width() float64 {
	return math.Abs(ch.Max - ch.Min)
}

// Normalize brings v into the channel range.
func (ch *Channel) Normalize(v float64) float64 {
	lo, hi := ch.Bounds()
	if ch.Mode == Wrap {
		if v >= lo && v < hi {
			return v
		}
		span := hi - lo
		if span == 0 {
			return lo
		}
		return lo + math.Mod(math.Mod(v, span)+span, span)
	}
	return math.Min(hi, math.Max(lo, v))
}

// Parse decodes v with the channel's datatypes and normalizes the result.
// Percentages are relative to the channel range. Values no datatype accepts
// yield the channel's initial value.
func (ch *Channel) Parse(v any) float64 {
	x, t, ok := Decode(v, ch.Types)
	if !ok {
		return ch.Initial
	}
	if t == Percent {
		x *= ch.Width()
	}
	return ch.Normalize(x)
}

// Format renders v with the channel's CSS datatype.
func (ch *Channel) Format(v float64, p Precision) string {
	return Stringify(v, ch.CSSType, p)
}
