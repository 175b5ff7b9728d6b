// Package color provides the WCAG 2.0 relative luminance transfer function
// for 8-bit RGB channel intensities.
//
// References:
//   - WCAG 2.0 relative luminance: https://www.w3.org/TR/WCAG20/#relativeluminancedef
//   - WCAG 2.0 contrast ratio: https://www.w3.org/TR/WCAG20/#contrast-ratiodef
package color

import "math"

// Threshold is the normalized intensity below which the transfer function is
// linear. WCAG 2.0 uses 0.03928 rather than the sRGB value 0.04045.
const Threshold = 0.03928

// Rec. 709 luminance weights.
const (
	WeightR = 0.2126
	WeightG = 0.7152
	WeightB = 0.0722
)

// Linearize converts a channel intensity in [0, 255] to linear light in [0, 1].
// Integral intensities are served from a lookup table.
func Linearize(v float64) float64 {
	if v >= 0 && v <= 255 && v == math.Trunc(v) {
		return LinearizeByte(uint8(v))
	}
	return LinearizeSlow(v)
}

// LinearizeSlow is the reference implementation of Linearize using math.Pow.
// Formula: if s <= 0.03928: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// where s = v/255.
func LinearizeSlow(v float64) float64 {
	s := v / 255
	if s <= Threshold {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the weighted sum of the linearized channels.
// Inputs are channel intensities in [0, 255].
func RelativeLuminance(r, g, b float64) float64 {
	return WeightR*Linearize(r) + WeightG*Linearize(g) + WeightB*Linearize(b)
}

// ContrastRatio returns (L1 + 0.05) / (L2 + 0.05) where L1 is the larger of
// the two luminances. The result lies in [1, 21].
func ContrastRatio(l1, l2 float64) float64 {
	hi, lo := math.Max(l1, l2), math.Min(l1, l2)
	return (hi + 0.05) / (lo + 0.05)
}
