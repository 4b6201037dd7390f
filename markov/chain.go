// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// NewChain validates p as a row-stochastic transition matrix and wraps it.
//
// Validation order:
//  1. p non-nil and square (matrix.ErrNilMatrix, matrix.ErrNotSquare).
//  2. at least one state (ErrEmptyChain).
//  3. every entry in [-tol, 1+tol] (NaN rejected) and every row sum within tol
//     of 1 (ErrNotStochastic).
//
// The chain keeps p itself; *matrix.Dense is immutable so no copy is needed.
func NewChain(p *matrix.Dense, opts ...Option) (*Chain, error) {
	o := options{tol: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	if err := matrix.ValidateSquareNonNil(p); err != nil {
		return nil, fmt.Errorf("markov: NewChain: %w", err)
	}
	n := p.Rows()
	if n == 0 {
		return nil, ErrEmptyChain
	}

	vals := p.Values()
	var i, j int
	var sum, v float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			v = vals[i*n+j]
			if math.IsNaN(v) || v < -o.tol || v > 1+o.tol {
				return nil, fmt.Errorf("markov: NewChain: P[%d,%d]=%g: %w", i, j, v, ErrNotStochastic)
			}
			sum += v
		}
		if math.Abs(sum-1) > o.tol {
			return nil, fmt.Errorf("markov: NewChain: row %d sums to %g: %w", i, sum, ErrNotStochastic)
		}
	}

	return &Chain{p: p, tol: o.tol}, nil
}

// States returns the number of states.
func (c *Chain) States() int { return c.p.Rows() }

// Transition returns the transition matrix.
func (c *Chain) Transition() *matrix.Dense { return c.p }

// Step advances the distribution dist by one step: π' = π·P.
// Errors: matrix.ErrDimensionMismatch (len(dist) != States()), ErrNotStochastic.
func (c *Chain) Step(dist []float64) ([]float64, error) {
	if err := c.validateDistribution(dist); err != nil {
		return nil, fmt.Errorf("markov: Step: %w", err)
	}

	next, err := matrix.VecMat(dist, c.p)
	if err != nil {
		return nil, fmt.Errorf("markov: Step: %w", err)
	}

	return next, nil
}

// Evolve returns π·P^steps. Evolve(dist, 0) returns a copy of dist.
// Errors: ErrBadSteps, matrix.ErrDimensionMismatch, ErrNotStochastic.
// Complexity: O(n³·log steps).
func (c *Chain) Evolve(dist []float64, steps int) ([]float64, error) {
	if steps < 0 {
		return nil, fmt.Errorf("markov: Evolve(%d): %w", steps, ErrBadSteps)
	}
	if err := c.validateDistribution(dist); err != nil {
		return nil, fmt.Errorf("markov: Evolve: %w", err)
	}

	pk, err := matrix.Pow(c.p, steps)
	if err != nil {
		return nil, fmt.Errorf("markov: Evolve: %w", err)
	}
	out, err := matrix.VecMat(dist, pk)
	if err != nil {
		return nil, fmt.Errorf("markov: Evolve: %w", err)
	}

	return out, nil
}

// Point returns the distribution concentrated on state.
// Errors: matrix.ErrOutOfRange.
func (c *Chain) Point(state int) ([]float64, error) {
	if state < 0 || state >= c.States() {
		return nil, fmt.Errorf("markov: Point(%d): %w", state, matrix.ErrOutOfRange)
	}
	dist := make([]float64, c.States())
	dist[state] = 1

	return dist, nil
}

// IsAbsorbing reports whether state never leaves itself (P[s,s] ≈ 1).
// Errors: matrix.ErrOutOfRange.
func (c *Chain) IsAbsorbing(state int) (bool, error) {
	v, err := c.p.At(state, state)
	if err != nil {
		return false, fmt.Errorf("markov: IsAbsorbing: %w", err)
	}

	return math.Abs(v-1) <= c.tol, nil
}

// AbsorbingStates lists the absorbing states in ascending order.
func (c *Chain) AbsorbingStates() []int {
	var out []int
	for s := 0; s < c.States(); s++ {
		if ok, _ := c.IsAbsorbing(s); ok {
			out = append(out, s)
		}
	}

	return out
}

// IsRegular reports whether some power P^k with 1 <= k <= maxPower is
// strictly positive. maxPower <= 0 selects Wielandt's bound (n-1)²+1, which
// is sufficient to decide regularity for any n-state chain.
func (c *Chain) IsRegular(maxPower int) bool {
	n := c.States()
	if maxPower <= 0 {
		maxPower = (n-1)*(n-1) + 1
	}

	// pk and c.p are both n×n, so Mul cannot fail here.
	pk := c.p
	for k := 1; k <= maxPower; k++ {
		if strictlyPositive(pk) {
			return true
		}
		if k == maxPower {
			break
		}
		pk, _ = matrix.Mul(pk, c.p)
	}

	return false
}

// validateDistribution checks len(dist) == n, entries >= -tol and Σ ≈ 1.
func (c *Chain) validateDistribution(dist []float64) error {
	if err := matrix.ValidateVecLen(dist, c.States()); err != nil {
		return err
	}
	sum := 0.0
	for i, v := range dist {
		if v < -c.tol || math.IsNaN(v) {
			return fmt.Errorf("dist[%d]=%g: %w", i, v, ErrNotStochastic)
		}
		sum += v
	}
	if math.Abs(sum-1) > c.tol {
		return fmt.Errorf("distribution sums to %g: %w", sum, ErrNotStochastic)
	}

	return nil
}

func strictlyPositive(m *matrix.Dense) bool {
	positive := true
	m.Do(func(_, _ int, v float64) bool {
		positive = v > 0
		return positive
	})

	return positive
}
