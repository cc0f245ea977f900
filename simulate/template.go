package simulate

import (
	"github.com/YuminosukeSato/simreg/core/parallel"
	"github.com/YuminosukeSato/simreg/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// ConstantCorrelation builds a p×p covariance matrix with 1+eps on the
// diagonal and a constant correlation rho between all pairs of columns.
// The eps ridge keeps the matrix positive definite for sampling when rho
// is close to 1.
//
// No range validation is performed; an indefinite result surfaces as an
// error from SampleTemplate.
func ConstantCorrelation(p int, rho, eps float64) *mat.SymDense {
	sigma := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		sigma.SetSym(i, i, 1+eps)
		for j := i + 1; j < p; j++ {
			sigma.SetSym(i, j, rho)
		}
	}
	return sigma
}

// SampleTemplate draws n rows from the multivariate normal N(0, sigma) for
// use as a template matrix. Sampling is deterministic for a fixed rng seed.
func SampleTemplate(rng *rand.Rand, n int, sigma mat.Symmetric) (*mat.Dense, error) {
	p := sigma.SymmetricDim()

	normal, ok := distmv.NewNormal(make([]float64, p), sigma, rng)
	if !ok {
		return nil, errors.Wrap(errors.ErrSingularMatrix, "SampleTemplate: covariance matrix is not positive definite")
	}

	x := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		normal.Rand(x.RawRowView(i))
	}

	return x, nil
}

// PrependOnes returns a copy of x with a column of ones prepended, making
// the result usable as a template for a model with an intercept.
func PrependOnes(x mat.Matrix) *mat.Dense {
	n, p := x.Dims()
	out := mat.NewDense(n, p+1, nil)

	// 並列処理の閾値（この行数以下では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.Set(i, 0, 1.0)
			for j := 0; j < p; j++ {
				out.Set(i, j+1, x.At(i, j))
			}
		}
	})

	return out
}
