package boxes

import (
	"math"
	"testing"
)

// TestIoU_Correctness validates the IoU implementation against known cases.
func TestIoU_Correctness(t *testing.T) {
	tests := []struct {
		name     string
		a        Box
		b        Box
		expected float32
		epsilon  float32
	}{
		{
			name:     "Identical boxes",
			a:        Box{0, 0, 100, 100},
			b:        Box{0, 0, 100, 100},
			expected: 1.0,
			epsilon:  0.001,
		},
		{
			name:     "No overlap",
			a:        Box{0, 0, 100, 100},
			b:        Box{200, 200, 300, 300},
			expected: 0.0,
			epsilon:  0.001,
		},
		{
			name:     "Touching edges",
			a:        Box{0, 0, 100, 100},
			b:        Box{100, 0, 200, 100},
			expected: 0.0,
			epsilon:  0.001,
		},
		{
			name:     "Half overlap",
			a:        Box{0, 0, 100, 100},
			b:        Box{50, 50, 150, 150},
			expected: 0.142857, // intersection=2500, union=17500
			epsilon:  0.001,
		},
		{
			name:     "One inside other",
			a:        Box{0, 0, 100, 100},
			b:        Box{25, 25, 75, 75},
			expected: 0.25, // intersection=2500, union=10000
			epsilon:  0.001,
		},
		{
			name:     "Fractional coordinates",
			a:        Box{0, 0, 1, 1},
			b:        Box{0.5, 0, 1.5, 1},
			expected: 1.0 / 3.0, // intersection=0.5, union=1.5
			epsilon:  0.001,
		},
		{
			name:     "Degenerate box",
			a:        Box{10, 10, 10, 20},
			b:        Box{0, 0, 100, 100},
			expected: 0.0,
			epsilon:  0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.IoU(tt.b)
			if math.Abs(float64(result-tt.expected)) > float64(tt.epsilon) {
				t.Errorf("IoU() = %v, expected %v (±%v)", result, tt.expected, tt.epsilon)
			}

			// IoU(A, B) must equal IoU(B, A).
			reverse := tt.b.IoU(tt.a)
			if math.Abs(float64(result-reverse)) > float64(tt.epsilon) {
				t.Errorf("IoU not symmetric: IoU(A,B)=%v != IoU(B,A)=%v", result, reverse)
			}
		})
	}
}

func TestBoxFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	if !(Box{0, 0, 10, 10}).Finite() {
		t.Error("finite box reported as non-finite")
	}
	if (Box{nan, 0, 10, 10}).Finite() {
		t.Error("NaN coordinate reported as finite")
	}
	if (Box{0, 0, inf, 10}).Finite() {
		t.Error("infinite coordinate reported as finite")
	}
	if (Box{0, 0, 10, -inf}).Finite() {
		t.Error("negative-infinite coordinate reported as finite")
	}
}
