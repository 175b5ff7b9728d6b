package coder

import (
	"errors"
	"strconv"
	"strings"
)

// ErrPrecision is returned for precision values that are neither "auto" nor a
// non-negative integer.
var ErrPrecision = errors.New(`coder: precision must be "auto" or a non-negative integer`)

// Precision is the number of fractional digits kept when formatting Number
// and Percent values. Auto keeps full float64 precision.
type Precision int

// Auto disables rounding of formatted values.
const Auto Precision = -1

// Valid reports whether p is Auto or a non-negative digit count.
func (p Precision) Valid() bool {
	return p >= Auto
}

func (p Precision) String() string {
	if p == Auto {
		return "auto"
	}
	return strconv.Itoa(int(p))
}

// ParsePrecision parses "auto" (any case) or a non-negative integer.
func ParsePrecision(s string) (Precision, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return Auto, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Auto, ErrPrecision
	}
	return Precision(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrPrecision
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) error {
	v, err := ParsePrecision(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Stringify renders v as text for the datatype t.
func Stringify(v float64, t DataType, p Precision) string {
	switch t {
	case Integer:
		r := roundHalfUp(v)
		if r == 0 {
			r = 0 // drop the sign of negative zero
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	case Percent:
		return formatNumber(v*100, p) + "%"
	case Angle:
		return formatNumber(v, p) + "deg"
	default:
		return formatNumber(v, p)
	}
}

func formatNumber(v float64, p Precision) string {
	if p > Auto {
		if r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', int(p), 64), 64); err == nil {
			v = r
		}
	}
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
