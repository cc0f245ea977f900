// Package penalty provides stock penalty terms for penalized regression
// data generation.
//
// Each type exposes the penalty value and its (sub)gradient at a coefficient
// vector. The gradients drive the inverse construction in package simulate,
// where any type with a compatible Grad method can serve as a penalty term.
package penalty

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// L1 is the lasso penalty lambda * ||beta||_1.
type L1 struct {
	lambda float64
}

// NewL1 creates an L1 penalty with regularization weight lambda.
func NewL1(lambda float64) *L1 {
	return &L1{lambda: lambda}
}

// Value returns lambda * sum(|beta_i|).
func (p *L1) Value(beta mat.Vector) float64 {
	sum := 0.0
	for i := 0; i < beta.Len(); i++ {
		sum += math.Abs(beta.AtVec(i))
	}
	return p.lambda * sum
}

// Grad returns the subgradient lambda * sign(beta) elementwise.
// The subgradient at zero is taken as zero, so repeated calls with the
// same input produce the same output.
func (p *L1) Grad(beta mat.Vector) *mat.VecDense {
	grad := mat.NewVecDense(beta.Len(), nil)
	for i := 0; i < beta.Len(); i++ {
		grad.SetVec(i, p.lambda*sign(beta.AtVec(i)))
	}
	return grad
}

// Name returns the name of the penalty.
func (p *L1) Name() string {
	return "l1"
}

// L2 is the ridge penalty (lambda / 2) * ||beta||_2^2.
type L2 struct {
	lambda float64
}

// NewL2 creates an L2 penalty with regularization weight lambda.
func NewL2(lambda float64) *L2 {
	return &L2{lambda: lambda}
}

// Value returns (lambda / 2) * sum(beta_i^2).
func (p *L2) Value(beta mat.Vector) float64 {
	sum := 0.0
	for i := 0; i < beta.Len(); i++ {
		v := beta.AtVec(i)
		sum += v * v
	}
	return 0.5 * p.lambda * sum
}

// Grad returns lambda * beta elementwise.
func (p *L2) Grad(beta mat.Vector) *mat.VecDense {
	grad := mat.NewVecDense(beta.Len(), nil)
	for i := 0; i < beta.Len(); i++ {
		grad.SetVec(i, p.lambda*beta.AtVec(i))
	}
	return grad
}

// Name returns the name of the penalty.
func (p *L2) Name() string {
	return "l2_squared"
}

// ElasticNet is the combined penalty
// lambda * (rho * ||beta||_1 + ((1 - rho) / 2) * ||beta||_2^2).
type ElasticNet struct {
	lambda float64
	rho    float64
}

// NewElasticNet creates an elastic-net penalty with regularization weight
// lambda and mixing parameter rho. rho = 1 reduces to L1, rho = 0 to L2.
func NewElasticNet(lambda, rho float64) *ElasticNet {
	return &ElasticNet{lambda: lambda, rho: rho}
}

// Value returns lambda * (rho * sum(|beta_i|) + ((1-rho)/2) * sum(beta_i^2)).
func (p *ElasticNet) Value(beta mat.Vector) float64 {
	l1 := 0.0
	l2 := 0.0
	for i := 0; i < beta.Len(); i++ {
		v := beta.AtVec(i)
		l1 += math.Abs(v)
		l2 += v * v
	}
	return p.lambda * (p.rho*l1 + 0.5*(1-p.rho)*l2)
}

// Grad returns lambda * (rho * sign(beta) + (1-rho) * beta) elementwise.
func (p *ElasticNet) Grad(beta mat.Vector) *mat.VecDense {
	grad := mat.NewVecDense(beta.Len(), nil)
	for i := 0; i < beta.Len(); i++ {
		v := beta.AtVec(i)
		grad.SetVec(i, p.lambda*(p.rho*sign(v)+(1-p.rho)*v))
	}
	return grad
}

// Name returns the name of the penalty.
func (p *ElasticNet) Name() string {
	return "elastic_net"
}

// sign returns -1, 0 or 1, with sign(0) = 0.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
