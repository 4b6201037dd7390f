// SPDX-License-Identifier: MIT

// Package workspace reads and writes YAML files of named matrices and the
// Markov chains defined over them.
//
//	matrices:
//	  A: {rows: 2, cols: 2, values: [-7.5, 6.5, 7, -6]}
//	  B: {data: [[1, 2], [3, 4]]}
//	  I: {identity: 3}
//	  Z: {rows: 2, cols: 3}
//	chains:
//	  weather: P
package workspace

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/markov"
	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrUnknownMatrix indicates a name that is not defined under matrices.
	ErrUnknownMatrix = errors.New("workspace: unknown matrix")

	// ErrUnknownChain indicates a name that is not defined under chains.
	ErrUnknownChain = errors.New("workspace: unknown chain")

	// ErrBadEntry indicates a matrix entry that mixes or omits shape forms.
	ErrBadEntry = errors.New("workspace: invalid matrix entry")
)

// Entry is the YAML form of one matrix. Exactly one of the shapes is used:
// rows/cols (+values, zero padded), data (one list per row) or identity.
type Entry struct {
	Rows     *int        `yaml:"rows,omitempty"`
	Cols     *int        `yaml:"cols,omitempty"`
	Values   []float64   `yaml:"values,omitempty,flow"`
	Data     [][]float64 `yaml:"data,omitempty,flow"`
	Identity *int        `yaml:"identity,omitempty"`
}

type file struct {
	Matrices map[string]Entry  `yaml:"matrices"`
	Chains   map[string]string `yaml:"chains,omitempty"`
}

// Workspace is a set of named, already validated matrices.
type Workspace struct {
	matrices map[string]*matrix.Dense
	chains   map[string]string
}

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{
		matrices: make(map[string]*matrix.Dense),
		chains:   make(map[string]string),
	}
}

// Load reads and parses the workspace file at path.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace: %w", err)
	}
	ws, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ws, nil
}

// Parse decodes a workspace document and builds every matrix eagerly, so a
// broken entry is reported at load time rather than on first use.
func Parse(data []byte) (*Workspace, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse workspace: %w", err)
	}

	ws := New()
	for name, e := range f.Matrices {
		m, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		ws.matrices[name] = m
	}
	for name, ref := range f.Chains {
		if _, ok := ws.matrices[ref]; !ok {
			return nil, fmt.Errorf("chain %q -> %q: %w", name, ref, ErrUnknownMatrix)
		}
		ws.chains[name] = ref
	}

	return ws, nil
}

func (e Entry) build() (*matrix.Dense, error) {
	forms := 0
	if e.Rows != nil || e.Cols != nil {
		forms++
	}
	if e.Data != nil {
		forms++
	}
	if e.Identity != nil {
		forms++
	}
	if forms != 1 {
		return nil, fmt.Errorf("use exactly one of rows/cols, data or identity: %w", ErrBadEntry)
	}

	switch {
	case e.Identity != nil:
		return matrix.NewIdentity(*e.Identity)
	case e.Data != nil:
		rows := len(e.Data)
		cols := 0
		if rows > 0 {
			cols = len(e.Data[0])
		}
		vals := make([]float64, 0, rows*cols)
		for i, row := range e.Data {
			if len(row) != cols {
				return nil, fmt.Errorf("data row %d has %d values, want %d: %w", i, len(row), cols, ErrBadEntry)
			}
			vals = append(vals, row...)
		}
		return matrix.NewDense(rows, cols, vals)
	default:
		if e.Rows == nil || e.Cols == nil {
			return nil, fmt.Errorf("rows and cols are both required: %w", ErrBadEntry)
		}
		return matrix.NewDense(*e.Rows, *e.Cols, e.Values)
	}
}

// Names returns the matrix names in lexical order.
func (w *Workspace) Names() []string {
	names := make([]string, 0, len(w.matrices))
	for name := range w.matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Matrix returns the named matrix.
func (w *Workspace) Matrix(name string) (*matrix.Dense, error) {
	m, ok := w.matrices[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
	}

	return m, nil
}

// Put stores m under name, replacing any previous matrix.
func (w *Workspace) Put(name string, m *matrix.Dense) {
	w.matrices[name] = m
}

// Chain builds the Markov chain over a matrix. name is looked up under
// chains first and then, as a shortcut, under matrices.
func (w *Workspace) Chain(name string, opts ...markov.Option) (*markov.Chain, error) {
	ref, ok := w.chains[name]
	if !ok {
		if _, isMatrix := w.matrices[name]; !isMatrix {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownChain)
		}
		ref = name
	}

	c, err := markov.NewChain(w.matrices[ref], opts...)
	if err != nil {
		return nil, fmt.Errorf("chain %q: %w", name, err)
	}

	return c, nil
}

// Marshal encodes the workspace; matrices are written in the data form.
func (w *Workspace) Marshal() ([]byte, error) {
	f := file{Matrices: make(map[string]Entry, len(w.matrices))}
	if len(w.chains) > 0 {
		f.Chains = w.chains
	}
	for name, m := range w.matrices {
		f.Matrices[name] = EntryOf(m)
	}

	return yaml.Marshal(&f)
}

// Save writes the workspace to path.
func (w *Workspace) Save(path string) error {
	data, err := w.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode workspace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workspace: %w", err)
	}

	return nil
}

// EntryOf returns the YAML entry for m. Matrices without rows or columns
// use the rows/cols form so their shape survives a round trip.
func EntryOf(m *matrix.Dense) Entry {
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return Entry{Rows: &rows, Cols: &cols}
	}

	vals := m.Values()
	data := make([][]float64, rows)
	for i := range data {
		data[i] = vals[i*cols : (i+1)*cols]
	}

	return Entry{Data: data}
}
