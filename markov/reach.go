// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// The transition graph has an edge i→j whenever P[i,j] > 0. Reachability,
// communicating classes and periods are read off breadth-first walks over it.

// queueItem pairs a state with its BFS depth (steps from the start state).
type queueItem struct {
	state int
	depth int
}

// walk holds the outcome of one breadth-first walk.
//   - order: states in visit order, start first.
//   - depth: steps from the start; -1 for unreachable states.
type walk struct {
	order []int
	depth []int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	keep  func(int) bool // restricts the walk to a subset of states
	queue []queueItem
	res   *walk
}

// bfs runs breadth-first search from start over adj, visiting only states
// accepted by keep (nil keeps all).
func bfs(adj [][]int, start int, keep func(int) bool) *walk {
	n := len(adj)
	w := &walker{
		adj:   adj,
		keep:  keep,
		queue: make([]queueItem, 0, n),
		res: &walk{
			order: make([]int, 0, n),
			depth: make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
	}

	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.order = append(w.res.order, item.state)
		for _, next := range w.adj[item.state] {
			if w.res.depth[next] < 0 && (w.keep == nil || w.keep(next)) {
				w.enqueue(next, item.depth+1)
			}
		}
	}

	return w.res
}

// enqueue marks state visited at depth d and appends it to the queue.
func (w *walker) enqueue(state, d int) {
	w.res.depth[state] = d
	w.queue = append(w.queue, queueItem{state: state, depth: d})
}

// adjacency lists the positive transitions of each state in column order.
func (c *Chain) adjacency() [][]int {
	n := c.States()
	adj := make([][]int, n)
	c.p.Do(func(i, j int, v float64) bool {
		if v > 0 {
			adj[i] = append(adj[i], j)
		}
		return true
	})

	return adj
}

// Reachable returns the states reachable from state (itself included) in
// breadth-first order.
// Errors: matrix.ErrOutOfRange.
func (c *Chain) Reachable(state int) ([]int, error) {
	if state < 0 || state >= c.States() {
		return nil, fmt.Errorf("markov: Reachable(%d): %w", state, matrix.ErrOutOfRange)
	}

	return bfs(c.adjacency(), state, nil).order, nil
}

// Classes partitions the states into communicating classes: i and j share a
// class when each is reachable from the other. Each class is sorted and the
// classes are ordered by their smallest state.
// Complexity: O(n·(n + E)).
func (c *Chain) Classes() [][]int {
	adj := c.adjacency()
	n := len(adj)
	reach := make([][]int, n)
	for s := 0; s < n; s++ {
		reach[s] = bfs(adj, s, nil).depth
	}

	class := make([]int, n)
	for i := range class {
		class[i] = -1
	}
	var out [][]int
	for i := 0; i < n; i++ {
		if class[i] >= 0 {
			continue
		}
		members := []int{i}
		class[i] = len(out)
		for j := i + 1; j < n; j++ {
			if class[j] < 0 && reach[i][j] >= 0 && reach[j][i] >= 0 {
				class[j] = len(out)
				members = append(members, j)
			}
		}
		out = append(out, members)
	}

	return out
}

// ClosedClasses returns the communicating classes that no transition leaves
// (the recurrent classes of a finite chain). A chain has a unique stationary
// distribution exactly when it has one closed class.
func (c *Chain) ClosedClasses() [][]int {
	adj := c.adjacency()
	var out [][]int
	for _, members := range c.Classes() {
		in := make(map[int]bool, len(members))
		for _, s := range members {
			in[s] = true
		}
		closed := true
		for _, s := range members {
			for _, next := range adj[s] {
				if !in[next] {
					closed = false
				}
			}
		}
		if closed {
			out = append(out, members)
		}
	}

	return out
}

// IsIrreducible reports whether every state reaches every other state.
func (c *Chain) IsIrreducible() bool {
	return len(c.Classes()) == 1
}

// Period returns the period of state: the gcd of the lengths of all cycles
// through it. It is computed from one BFS restricted to the state's class as
// gcd(depth[u] + 1 - depth[v]) over the class's internal edges u→v.
// A state that never returns to itself has period 0.
// Errors: matrix.ErrOutOfRange.
func (c *Chain) Period(state int) (int, error) {
	if state < 0 || state >= c.States() {
		return 0, fmt.Errorf("markov: Period(%d): %w", state, matrix.ErrOutOfRange)
	}

	members := c.classOf(state)
	in := make(map[int]bool, len(members))
	for _, s := range members {
		in[s] = true
	}

	adj := c.adjacency()
	depth := bfs(adj, state, func(s int) bool { return in[s] }).depth
	g := 0
	for _, u := range members {
		for _, v := range adj[u] {
			if in[v] {
				g = gcd(g, abs(depth[u]+1-depth[v]))
			}
		}
	}

	return g, nil
}

// classOf returns the communicating class containing state.
func (c *Chain) classOf(state int) []int {
	for _, cl := range c.Classes() {
		for _, s := range cl {
			if s == state {
				return cl
			}
		}
	}

	return nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
