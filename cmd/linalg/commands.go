// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/matrix"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the matrices in the workspace with their shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.ws.Names() {
				m, err := a.ws.Matrix(name)
				if err != nil {
					return err
				}
				r, c := m.Shape()
				fmt.Fprintf(a.out, "%s\t%d×%d\n", name, r, c)
			}
			return nil
		},
	}
}

// unaryCmd builds "<use> NAME" commands over one workspace matrix.
func (a *app) unaryCmd(use, short string, run func(*matrix.Dense) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.ws.Matrix(args[0])
			if err != nil {
				return err
			}
			log.Debug().Str("op", use).Str("name", args[0]).Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("running")
			if err := run(m); err != nil {
				return fmt.Errorf("%s %s: %w", use, args[0], err)
			}
			return nil
		},
	}
}

func (a *app) det(m *matrix.Dense) error {
	d, err := m.Determinant()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, a.render.Scalar(d))

	return err
}

func (a *app) rank(m *matrix.Dense) error {
	_, err := fmt.Fprintln(a.out, m.Rank(matrix.WithEpsilon(a.cfg.Epsilon)))

	return err
}

// matrixOp adapts a matrix-valued operation: print the result, then store it
// when --save is set.
func (a *app) matrixOp(op func(*matrix.Dense) (*matrix.Dense, error)) func(*matrix.Dense) error {
	return func(m *matrix.Dense) error {
		res, err := op(m)
		if err != nil {
			return err
		}
		return a.emit(res)
	}
}

func (a *app) emit(res *matrix.Dense) error {
	if err := a.render.Matrix(a.out, res); err != nil {
		return err
	}

	return a.store(res)
}

func (a *app) binaryCmd(use, short string, op func(x, y matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.ws.Matrix(args[0])
			if err != nil {
				return err
			}
			y, err := a.ws.Matrix(args[1])
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return fmt.Errorf("%s %s %s: %w", use, args[0], args[1], err)
			}
			return a.emit(res)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale NAME FACTOR",
		Short: "Multiply every element by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.ws.Matrix(args[0])
			if err != nil {
				return err
			}
			factor, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("scale factor %q: %w", args[1], err)
			}
			res, err := matrix.Scale(m, factor)
			if err != nil {
				return fmt.Errorf("scale %s: %w", args[0], err)
			}
			return a.emit(res)
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow NAME K",
		Short: "Integer power of a square matrix (K >= 0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.ws.Matrix(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exponent %q: %w", args[1], err)
			}
			res, err := matrix.Pow(m, k)
			if err != nil {
				return fmt.Errorf("pow %s: %w", args[0], err)
			}
			return a.emit(res)
		},
	}
}
