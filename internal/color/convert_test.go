package color

import (
	"math"
	"testing"
)

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// TestLinearizeEdgeCases tests edge cases for the WCAG transfer function.
func TestLinearizeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0, 0},
		{"white", 255, 1},
		{"linear segment", 10, 10.0 / 255 / 12.92},
		{"just above threshold", 11, math.Pow((11.0/255+0.055)/1.055, 2.4)},
		{"mid gray", 128, math.Pow((128.0/255+0.055)/1.055, 2.4)},
		{"fractional", 127.5, math.Pow((127.5/255+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linearize(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("Linearize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLinearizeLUTExact tests that the table matches the reference bit for bit.
func TestLinearizeLUTExact(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := LinearizeByte(uint8(i))
		slow := LinearizeSlow(float64(i))
		if fast != slow {
			t.Errorf("intensity %d: lut=%v, slow=%v", i, fast, slow)
		}
	}
}

func TestLinearizeMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i < 256; i++ {
		v := Linearize(float64(i))
		if v <= prev {
			t.Fatalf("Linearize(%d) = %v is not greater than Linearize(%d) = %v", i, v, i-1, prev)
		}
		prev = v
	}
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 1},
		{"red", 255, 0, 0, WeightR},
		{"green", 0, 255, 0, WeightG},
		{"blue", 0, 0, 255, WeightB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.r, tt.g, tt.b)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("RelativeLuminance(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(1, 0); !floatNear(got, 21, 1e-12) {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
	if got := ContrastRatio(0.3, 0.3); got != 1 {
		t.Errorf("ContrastRatio(x, x) = %v, want 1", got)
	}
	if a, b := ContrastRatio(0.2, 0.7), ContrastRatio(0.7, 0.2); a != b {
		t.Errorf("ContrastRatio is not symmetric: %v != %v", a, b)
	}
}

func BenchmarkLinearize_Slow(b *testing.B) {
	var result float64
	for i := 0; i < b.N; i++ {
		result = LinearizeSlow(128)
	}
	_ = result
}

func BenchmarkLinearize_LUT(b *testing.B) {
	var result float64
	for i := 0; i < b.N; i++ {
		result = Linearize(128)
	}
	_ = result
}
