// SPDX-License-Identifier: EPL-2.0

package decimate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func TestStride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		visible   int
		maxPoints int
		want      int
	}{
		{name: "identity below budget", visible: 10, maxPoints: 25000, want: 1},
		{name: "identity at budget", visible: 25000, maxPoints: 25000, want: 1},
		{name: "exact multiple", visible: 100000, maxPoints: 25000, want: 4},
		{name: "one over budget", visible: 25001, maxPoints: 25000, want: 2},
		{name: "just under a multiple", visible: 99999, maxPoints: 25000, want: 4},
		{name: "just over a multiple", visible: 100001, maxPoints: 25000, want: 5},
		{name: "budget of one", visible: 7, maxPoints: 1, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Stride(tt.visible, tt.maxPoints)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Count(tt.visible, got), tt.maxPoints)
		})
	}
}

func TestStride_MatchesFloorOnMultiples(t *testing.T) {
	t.Parallel()

	for _, m := range []int{1, 3, 1000, 25000, 50000} {
		for k := 1; k <= 8; k++ {
			visible := k * m
			assert.Equal(t, max(1, visible/m), Stride(visible, m), "visible=%d max=%d", visible, m)
		}
	}
}

// 100,000 samples at 44.1 kHz with a 25,000 point budget keep every 4th sample.
func TestDecimate_FullRangeEveryFourth(t *testing.T) {
	t.Parallel()

	samples := ramp(100000)
	duration := 100000.0 / 44100.0

	res, err := Decimate(samples, Request{
		Start:     0,
		End:       len(samples),
		MaxPoints: 25000,
		XMin:      0,
		XMax:      duration,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Stride)
	require.Len(t, res.Samples, 25000)
	require.Len(t, res.Times, 25000)
	assert.Equal(t, 0.0, res.Samples[0])
	assert.Equal(t, 4.0, res.Samples[1])
	assert.Equal(t, 99996.0, res.Samples[len(res.Samples)-1])
	for k, s := range res.Samples {
		if s != float64(4*k) {
			t.Fatalf("Samples[%d] = %v, want %v", k, s, float64(4*k))
		}
	}
}

func TestDecimate_SmallRangeIsVerbatim(t *testing.T) {
	t.Parallel()

	samples := ramp(1000)

	res, err := Decimate(samples, Request{
		Start:     500,
		End:       510,
		MaxPoints: 25000,
		XMin:      0.5,
		XMax:      0.51,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Stride)
	assert.Equal(t, samples[500:510], res.Samples)
	assert.Len(t, res.Times, 10)
}

func TestDecimate_ViewportAxisRelabels(t *testing.T) {
	t.Parallel()

	res, err := Decimate(ramp(100), Request{
		Start:     10,
		End:       100,
		MaxPoints: 30,
		XMin:      1,
		XMax:      10,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Stride)
	require.Len(t, res.Times, 30)
	assert.Equal(t, 1.0, res.Times[0])
	assert.InDelta(t, 10.0, res.Times[29], 1e-12)
	assert.InDelta(t, 9.0/29.0, res.Times[1]-res.Times[0], 1e-12)
}

func TestDecimate_SampleAxisUsesTrueTimes(t *testing.T) {
	t.Parallel()

	res, err := Decimate(ramp(100), Request{
		Start:      10,
		End:        100,
		MaxPoints:  30,
		XMin:       1,
		XMax:       10,
		Axis:       AxisSample,
		SampleRate: 10,
	})
	require.NoError(t, err)

	for k, tm := range res.Times {
		want := float64(10+3*k) / 10
		assert.InDelta(t, want, tm, 1e-12, "Times[%d]", k)
	}
}

func TestDecimate_SinglePointTimeIsXMin(t *testing.T) {
	t.Parallel()

	res, err := Decimate(ramp(10), Request{Start: 3, End: 4, MaxPoints: 5, XMin: 0.3, XMax: 0.4})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, res.Samples)
	assert.Equal(t, []float64{0.3}, res.Times)
}

func TestDecimate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{name: "zero budget", req: Request{Start: 0, End: 10, MaxPoints: 0}, want: ErrInvalidBudget},
		{name: "negative budget", req: Request{Start: 0, End: 10, MaxPoints: -1}, want: ErrInvalidBudget},
		{name: "empty range", req: Request{Start: 5, End: 5, MaxPoints: 10}, want: ErrEmptyRange},
		{name: "reversed range", req: Request{Start: 8, End: 2, MaxPoints: 10}, want: ErrEmptyRange},
		{name: "past the end", req: Request{Start: 20, End: 30, MaxPoints: 10}, want: ErrEmptyRange},
		{name: "sample axis without rate", req: Request{Start: 0, End: 10, MaxPoints: 10, Axis: AxisSample}, want: ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decimate(ramp(10), tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecimate_ClampsIndexRange(t *testing.T) {
	t.Parallel()

	res, err := Decimate(ramp(10), Request{Start: -5, End: 50, MaxPoints: 100})
	require.NoError(t, err)
	assert.Equal(t, ramp(10), res.Samples)
	assert.Equal(t, 0, res.Start)
}

func TestDecimate_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	samples := ramp(1000)
	res, err := Decimate(samples, Request{Start: 0, End: 1000, MaxPoints: 10})
	require.NoError(t, err)

	res.Samples[0] = 42
	assert.Equal(t, 0.0, samples[0])
}

func TestDecimate_BudgetHoldsForRandomRequests(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	samples := ramp(200000)

	for range 2000 {
		i0 := rng.IntN(len(samples))
		i1 := i0 + 1 + rng.IntN(len(samples)-i0)
		maxPoints := 1 + rng.IntN(60000)

		res, err := Decimate(samples, Request{Start: i0, End: i1, MaxPoints: maxPoints, XMin: 0, XMax: 1})
		require.NoError(t, err)

		visible := i1 - i0
		require.Equal(t, len(res.Times), len(res.Samples))
		require.LessOrEqual(t, len(res.Samples), maxPoints, "visible=%d max=%d", visible, maxPoints)
		require.Equal(t, max(1, int(math.Ceil(float64(visible)/float64(maxPoints)))), res.Stride)

		if visible <= maxPoints {
			require.Equal(t, samples[i0:i1], res.Samples)
		}

		for k, idx := range res.Indices() {
			if res.Samples[k] != samples[idx] {
				t.Fatalf("Samples[%d] = %v, want samples[%d] = %v", k, res.Samples[k], idx, samples[idx])
			}
		}
	}
}

func TestTimeAxis_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "viewport", AxisViewport.String())
	assert.Equal(t, "sample", AxisSample.String())
	assert.Equal(t, "TimeAxis(7)", TimeAxis(7).String())
}

func BenchmarkDecimate_TenMillion(b *testing.B) {
	samples := ramp(10_000_000)
	req := Request{Start: 0, End: len(samples), MaxPoints: 50000, XMin: 0, XMax: 226.7}

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		if _, err := Decimate(samples, req); err != nil {
			b.Fatal(err)
		}
	}
}
