// SPDX-License-Identifier: MIT

// Package render prints matrices, vectors and scalars with locale-aware
// number formatting (golang.org/x/text/message).
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/linalg/matrix"
)

// Renderer formats numbers for one locale and precision.
type Renderer struct {
	p    *message.Printer
	verb string
}

// New returns a Renderer for tag. precision < 0 prints the shortest
// representation, otherwise exactly precision fraction digits.
func New(tag language.Tag, precision int) *Renderer {
	verb := "%v"
	if precision >= 0 {
		verb = fmt.Sprintf("%%.%df", precision)
	}

	return &Renderer{p: message.NewPrinter(tag), verb: verb}
}

// Scalar formats a single value.
func (r *Renderer) Scalar(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return r.p.Sprintf(r.verb, v)
}

// Int formats an integer with locale digit grouping.
func (r *Renderer) Int(n int) string { return r.p.Sprintf("%d", n) }

// Vector writes "[a, b, c]\n".
func (r *Renderer) Vector(w io.Writer, v []float64) error {
	cells := make([]string, len(v))
	for i, x := range v {
		cells[i] = r.Scalar(x)
	}
	_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(cells, ", "))

	return err
}

// Matrix writes one bracketed line per row with right-aligned columns.
// A matrix without rows prints its shape instead.
func (r *Renderer) Matrix(w io.Writer, m *matrix.Dense) error {
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		_, err := fmt.Fprintf(w, "(%d×%d)\n", rows, cols)
		return err
	}

	cells := make([]string, 0, rows*cols)
	widths := make([]int, cols)
	m.Do(func(_, j int, v float64) bool {
		s := r.Scalar(v)
		cells = append(cells, s)
		if n := utf8.RuneCountInString(s); n > widths[j] {
			widths[j] = n
		}
		return true
	})

	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString("[")
		for j := 0; j < cols; j++ {
			s := cells[i*cols+j]
			b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(s)))
			b.WriteString(s)
			if j+1 < cols {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}
