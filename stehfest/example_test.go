package stehfest_test

import (
	"fmt"

	"github.com/katalvlaran/laplace/stehfest"
)

// ExampleInverter_Invert recovers f(t)=e^{-t} from its image 1/(1+p).
func ExampleInverter_Invert() {
	inv, err := stehfest.New(stehfest.DefaultOrder)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	got, err := inv.Invert(func(p float64) float64 { return 1.0 / (1.0 + p) }, 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("f(1) ≈ %.4f\n", got)
	// Output: f(1) ≈ 0.3679
}

// ExampleInverter_InvertBatch recovers the ramp f(t)=t on a small grid
// in one parallel call.
func ExampleInverter_InvertBatch() {
	inv, err := stehfest.New(stehfest.DefaultOrder)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := inv.InvertBatch(func(p float64) float64 { return 1.0 / (p * p) }, []float64{0.5, 1.0, 2.0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, v := range out {
		fmt.Printf("f(t%d) ≈ %.4f\n", i, v)
	}
	// Output:
	// f(t0) ≈ 0.5000
	// f(t1) ≈ 1.0000
	// f(t2) ≈ 2.0000
}
