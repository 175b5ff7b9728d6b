package color

// linearLUT maps every 8-bit intensity to linear light.
// Pre-computed 256 entries, 2KB memory cost.
var linearLUT [256]float64

func init() {
	for i := range linearLUT {
		linearLUT[i] = LinearizeSlow(float64(i))
	}
}

// LinearizeByte converts an 8-bit intensity to linear light using the lookup
// table.
//
// Example:
//
//	l := LinearizeByte(128) // ~0.2158 (not 0.5!)
func LinearizeByte(v uint8) float64 {
	return linearLUT[v]
}
