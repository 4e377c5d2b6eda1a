// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{"zero", 0, 0},
		{"full scale", 1, math.MaxInt16},
		{"negative full scale", -1, -math.MaxInt16},
		{"half", 0.5, 16383},
		{"negative half", -0.5, -16383},
		{"small", 0.001, 32},
		{"clamped high", 1.5, math.MaxInt16},
		{"clamped low", -7, -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float64ToInt16(tt.input); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
			if got := Float32ToInt16(float32(tt.input)); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := ToInt16(-1.0)
	for i := 1; i <= 2000; i++ {
		got := ToInt16(float32(i)/1000 - 1)
		if got < prev {
			t.Fatalf("ToInt16 decreased at step %d: %d < %d", i, got, prev)
		}
		prev = got
	}
}

func TestToInt16_Symmetric(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0.1, 0.33, 0.5, 0.9, 1} {
		if pos, neg := ToInt16(x), ToInt16(-x); pos != -neg {
			t.Errorf("ToInt16(%v) = %d, ToInt16(%v) = %d", x, pos, -x, neg)
		}
	}
}

func TestToInt16_ZeroAllocs(t *testing.T) {
	src := make([]float32, 1024)
	dst := make([]int16, len(src))
	for i := range src {
		src[i] = float32(math.Sin(float64(i) / 10))
	}

	allocs := testing.AllocsPerRun(100, func() {
		for i, v := range src {
			dst[i] = Float32ToInt16(v)
		}
	})
	if allocs != 0 {
		t.Errorf("Float32ToInt16 allocated %v times per run, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	src := make([]float32, 4096)
	dst := make([]int16, len(src))
	for i := range src {
		src[i] = float32(i%3000)/1000 - 1.5
	}

	b.ReportAllocs()
	for b.Loop() {
		for i, v := range src {
			dst[i] = Float32ToInt16(v)
		}
	}
}
