// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrEmptyChain indicates a transition matrix without states.
	ErrEmptyChain = errors.New("markov: chain must have at least one state")

	// ErrNotStochastic indicates a negative or >1 probability, or a row
	// (or distribution) whose sum differs from 1 beyond the tolerance.
	ErrNotStochastic = errors.New("markov: not a stochastic matrix or distribution")

	// ErrBadSteps indicates a negative number of steps.
	ErrBadSteps = errors.New("markov: steps must be >= 0")

	// ErrNoUniqueStationary is returned when the chain has no unique
	// stationary distribution (e.g. several closed classes).
	ErrNoUniqueStationary = errors.New("markov: no unique stationary distribution")
)

// DefaultTolerance bounds |Σrow - 1| and the slack allowed on [0,1] entries.
const DefaultTolerance = 1e-9

const panicToleranceInvalid = "markov: WithTolerance: tol must be finite, non-negative"

// Option configures a Chain.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance sets the stochastic tolerance. Panics when tol is NaN, ±Inf
// or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// Chain is an immutable finite Markov chain.
//
// Fields:
//   - p: the validated n×n transition matrix (row i = outgoing probabilities of state i).
//   - tol: tolerance used for every stochastic check.
type Chain struct {
	p   *matrix.Dense
	tol float64
}
