package kolor

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/kolor/internal/coder"
)

// Precision is the number of fractional digits CSS output keeps for
// fractional channels. Integer channels are always rounded to whole numbers.
type Precision = coder.Precision

// Auto keeps the shortest representation that round-trips the float64.
const Auto = coder.Auto

// precision is the process-wide precision used by Color.CSS and
// Color.String.
var precision atomic.Int64

func init() {
	precision.Store(int64(Auto))
}

// SetPrecision sets the process-wide CSS precision. Invalid values are
// ignored.
//
// SetPrecision is safe for concurrent use.
func SetPrecision(p Precision) {
	if !p.Valid() {
		return
	}
	precision.Store(int64(p))
}

// CurrentPrecision returns the process-wide CSS precision.
func CurrentPrecision() Precision {
	return Precision(precision.Load())
}

// ParsePrecision parses "auto" or a non-negative integer.
func ParsePrecision(s string) (Precision, error) {
	p, err := coder.ParsePrecision(s)
	if err != nil {
		return Auto, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// SetConfig updates a process-wide setting by name. The only key is
// "precision" (alias "cssPrecision"); its value is "auto", a Precision or a
// non-negative integer, given as a Go number or a string.
func SetConfig(key string, value any) error {
	switch key {
	case "precision", "cssPrecision":
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
	}

	p, err := toPrecision(value)
	if err != nil {
		return err
	}
	SetPrecision(p)
	return nil
}

func toPrecision(value any) (Precision, error) {
	var n int64
	switch v := value.(type) {
	case Precision:
		n = int64(v)
	case string:
		return ParsePrecision(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	case int32:
		n = int64(v)
	case uint:
		n = int64(v)
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return Auto, fmt.Errorf("%w: precision %v is not an integer", ErrInvalidConfig, v)
		}
		n = int64(v)
	default:
		return Auto, fmt.Errorf("%w: precision of type %T", ErrInvalidConfig, value)
	}
	p := Precision(n)
	if !p.Valid() {
		return Auto, fmt.Errorf("%w: precision %d", ErrInvalidConfig, n)
	}
	return p, nil
}
