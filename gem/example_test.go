package gem_test

import (
	"fmt"

	"github.com/cwbudde/algo-mixture/gem"
)

func ExampleNew() {
	est, _ := gem.New([]float64{0.1, 0.2, 0.3, 50, 52, 49, 51, 0.15, 0.25, 48})
	fmt.Println(est.Parameters())

	// Output:
	// beta: 1.00000 | mu: 0.00000 | sigma: 100.00000 | proportion: 0.50000
}

func ExampleEstimator_Fit() {
	est, _ := gem.New([]float64{0.1, 0.2, 0.3, 50, 52, 49, 51, 0.15, 0.25, 48},
		gem.WithMaxIterations(50),
		gem.WithTolerance(1e-4),
	)
	if err := est.Fit(); err != nil {
		fmt.Println("fit failed:", err)
		return
	}
	fmt.Println(est.Parameters())

	// Output:
	// beta: 0.20000 | mu: 50.00000 | sigma: 1.41421 | proportion: 0.50000
}

func ExampleEstimator_DensityAt() {
	est, _ := gem.New([]float64{0.1, 0.2, 0.3, 50, 52, 49, 51, 0.15, 0.25, 48},
		gem.WithMaxIterations(50),
		gem.WithTolerance(1e-4),
	)
	if err := est.Fit(); err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	// The density near the gaussian cluster dwarfs the exponential tail.
	fmt.Printf("at 50: %.3f\n", est.DensityAt(50))
	fmt.Printf("at 25: %.3f\n", est.DensityAt(25))

	// Output:
	// at 50: 0.141
	// at 25: 0.000
}
