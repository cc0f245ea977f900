// Package simulate generates synthetic datasets for penalized linear
// regression with a known exact solution.
//
// The generated data fits the linear regression plus sum-of-penalties
// objective
//
//	f(beta) = (1 / 2) * ||X*beta - y||²_2 + Σ_i λ_i * P_i(beta),
//
// where the P_i are penalty functions. Instead of fitting a model to given
// data, the generator works backwards: the caller chooses the regression
// vector beta, a structural template matrix X0 that carries the desired
// correlation structure, and a residual vector e that carries the desired
// noise distribution. Each template column is then rescaled so that the
// first-order optimality condition of the objective holds at exactly the
// chosen beta, which makes beta the known solution of the generated problem.
//
// When a target signal-to-noise ratio is set, the generator additionally
// root-finds the coefficient scale k such that ||X(k*beta)*(k*beta)|| /
// ||e|| matches the target, using the bracketing and bisection routines from
// package optimize.
//
// Helpers for assembling inputs are provided alongside the generator:
// ConstantCorrelation and SampleTemplate build correlated template matrices,
// PrependOnes adds an intercept column, and RandomBeta draws sparse
// coefficient vectors.
package simulate
