// Package simreg provides synthetic dataset generation for penalized
// linear-regression experiments in Go, with exact known solutions and
// controllable signal-to-noise ratios.
//
// SimReg works backwards from the answer: you choose the regression
// coefficients, the correlation structure, and the noise, and it constructs
// a dataset for which your coefficients are exactly the optimum of the
// penalized least-squares objective. This makes it possible to validate
// regression and penalized-regression solvers against ground truth instead
// of against another solver.
//
// # Features
//
// - Exact Solutions: generated datasets satisfy the first-order optimality
// condition at the chosen coefficients
// - Target SNR: a bisection search scales the coefficients until the
// signal-to-noise ratio matches the requested value
// - Pluggable Penalties: L1, L2 and elastic-net terms included; any type
// with a gradient method works
// - Robust Error Handling: structured errors with stack traces
// - CPU-parallel assembly of large design matrices
//
// # Installation
//
// Install SimReg using go get:
//
//	go get github.com/YuminosukeSato/simreg
//
// # Quick Start
//
// Generating a dataset whose exact solution is beta = [5, 2]:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/simreg/penalty"
//	    "github.com/YuminosukeSato/simreg/simulate"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Template with an intercept column, and the desired residual
//	    X0 := mat.NewDense(4, 2, []float64{
//	        1, 1,
//	        1, 2,
//	        1, 3,
//	        1, 4,
//	    })
//	    e := mat.NewVecDense(4, []float64{0.1, -0.1, 0.2, -0.2})
//
//	    gen := simulate.NewLinearRegressionData(
//	        []simulate.Penalty{penalty.NewL1(0.1)},
//	        X0, e,
//	        simulate.WithIntercept(true),
//	        simulate.WithSNR(3.0),
//	    )
//
//	    data, err := gen.Load(mat.NewVecDense(2, []float64{5, 2}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("y:", mat.Formatted(data.Y))
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - simulate: dataset generators, template and coefficient helpers
//   - penalty: stock penalty terms (L1, L2, elastic net)
//   - optimize: bisection root-finding used by the SNR search
//   - metrics: validation metrics (SNR, MSE, RMSE, R²)
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging utilities
//   - core/parallel: parallel processing utilities
//
// # Performance
//
// Design-matrix assembly parallelizes automatically:
//
//   - Automatic parallelization for templates with >1000 rows
//   - CPU core detection and optimal worker allocation
//   - Generators are safe for concurrent Load calls
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/YuminosukeSato/simreg
//
// # License
//
// SimReg is released under the MIT License.
package simreg
