// SPDX-License-Identifier: MIT

// Package markov models finite discrete-time Markov chains on top of the
// matrix core.
//
// A Chain wraps a row-stochastic transition matrix P: square, non-empty,
// entries in [0,1] and every row summing to 1 within a tolerance
// (WithTolerance, default 1e-9). Distributions are row vectors, so one step
// of the chain is π·P.
//
// What is provided:
//   - Step and Evolve: propagate a distribution one step or k steps (P^k by
//     repeated squaring in matrix.Pow).
//   - Stationary: the unique π with π·P = π and Σπ = 1, solved through the
//     cofactor inverse of the matrix core. Chains without a unique stationary
//     distribution report ErrNoUniqueStationary.
//   - Structure: breadth-first Reachable, communicating Classes and
//     ClosedClasses, Period, IsAbsorbing, IsIrreducible, IsRegular.
//
// For irreducible and aperiodic (regular) chains the stationary distribution
// exists, is unique, and every initial distribution converges to it.
//
// Usage:
//
//	p, _ := matrix.NewDense(2, 2, []float64{0.9, 0.1, 0.5, 0.5})
//	c, err := markov.NewChain(p)
//	if err != nil {
//		// ErrNotStochastic, ErrEmptyChain or matrix.ErrNotSquare
//	}
//	pi, _ := c.Stationary() // [0.8333 0.1667]
//
// Complexity: Stationary inherits the factorial cost of the cofactor inverse
// and is meant for chains with a handful of states.
package markov
