// SPDX-License-Identifier: EPL-2.0

package decimate_test

import (
	"fmt"

	"github.com/ik5/wavelod/decimate"
)

func ExampleDecimate() {
	samples := make([]float64, 100000)
	for i := range samples {
		samples[i] = float64(i)
	}

	res, err := decimate.Decimate(samples, decimate.Request{
		Start:     0,
		End:       len(samples),
		MaxPoints: 25000,
		XMin:      0,
		XMax:      float64(len(samples)) / 44100,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("stride:", res.Stride)
	fmt.Println("points:", res.Len())
	fmt.Println("first:", res.Samples[:3])
	// Output:
	// stride: 4
	// points: 25000
	// first: [0 4 8]
}

func ExampleStride() {
	fmt.Println(decimate.Stride(10, 25000))
	fmt.Println(decimate.Stride(100000, 25000))
	fmt.Println(decimate.Stride(100001, 25000))
	// Output:
	// 1
	// 4
	// 5
}
