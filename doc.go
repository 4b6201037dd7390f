// SPDX-License-Identifier: MIT

// Package linalg is a small-matrix linear-algebra toolkit: an immutable dense
// matrix with textbook cofactor algorithms, plus finite Markov chains built on
// top of it.
//
// Packages:
//
//	matrix/           : Dense (row-major, immutable), structural queries,
//	                     Laplace determinant, minors/cofactors/adjugate,
//	                     inverse, rank, arithmetic (Add, Sub, Scale, Mul, Pow)
//	markov/           : stochastic transition matrices: Step, Evolve,
//	                     Stationary, communicating classes, period, regularity
//	cmd/linalg/       : CLI over a YAML workspace of named matrices
//	internal/config   : driver configuration (YAML)
//	internal/workspace: YAML workspace files
//	internal/render   : locale-aware output
//
// The cofactor algorithms are factorial in the matrix order and exact on
// rational inputs. They target matrices of a handful of rows where every
// term can be checked by hand; they are not a numerical-analysis library.
package linalg
