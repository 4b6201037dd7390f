// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// Stationary returns the unique distribution π with π·P = π and Σπ = 1.
//
// Algorithm:
//  1. A = (P - I)ᵀ, so that A·πᵀ = 0 encodes the balance equations.
//  2. Replace the last row of A with ones (the normalization Σπ = 1);
//     the right-hand side becomes e_n.
//  3. πᵀ = A⁻¹·e_n, i.e. the last column of A⁻¹ (matrix.Inverse).
//
// Errors:
//   - ErrNoUniqueStationary when the chain has more than one closed
//     communicating class (checked up front), or when A turns out singular.
//
// Complexity: dominated by the cofactor inverse, O(n²·(n-1)!).
func (c *Chain) Stationary() ([]float64, error) {
	if closed := c.ClosedClasses(); len(closed) != 1 {
		return nil, fmt.Errorf("markov: Stationary: %d closed classes: %w", len(closed), ErrNoUniqueStationary)
	}

	n := c.States()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("markov: Stationary: %w", err)
	}
	diff, err := matrix.Sub(c.p, id)
	if err != nil {
		return nil, fmt.Errorf("markov: Stationary: %w", err)
	}

	a, err := diff.T().Map(func(i, _ int, v float64) float64 {
		if i == n-1 {
			return 1
		}
		return v
	})
	if err != nil {
		return nil, fmt.Errorf("markov: Stationary: %w", err)
	}

	inv, err := a.Inverse()
	if errors.Is(err, matrix.ErrSingular) {
		return nil, fmt.Errorf("markov: Stationary: %w", ErrNoUniqueStationary)
	}
	if err != nil {
		return nil, fmt.Errorf("markov: Stationary: %w", err)
	}

	pi := make([]float64, n)
	for i := range pi {
		if pi[i], err = inv.At(i, n-1); err != nil {
			return nil, fmt.Errorf("markov: Stationary: %w", err)
		}
	}

	return pi, nil
}
