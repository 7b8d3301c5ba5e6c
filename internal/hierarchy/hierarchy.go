// Package hierarchy evaluates a parent-linked tree of local transforms
// into world transforms.
//
// Nodes are stored in insertion order and a node's parent must be added
// before the node itself, so a single forward pass over the slice always
// sees a parent's world matrix before any of its children need it.
package hierarchy

import (
	"errors"
	"fmt"

	"rig-renderer/internal/mathutil"
)

// NoParent marks a root node.
const NoParent = -1

var (
	ErrUnknownParent = errors.New("hierarchy: unknown parent")
	ErrDuplicateName = errors.New("hierarchy: duplicate node name")
	ErrLocalCount    = errors.New("hierarchy: local transform count mismatch")
)

type node struct {
	name   string
	parent int
	depth  int
}

// Graph is a transform tree. The zero value is an empty graph.
type Graph struct {
	nodes  []node
	byName map[string]int
}

// Add appends a node named name below parent (NoParent for a root) and
// returns its index.
func (g *Graph) Add(name string, parent int) (int, error) {
	if _, ok := g.byName[name]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	depth := 0
	if parent != NoParent {
		if parent < 0 || parent >= len(g.nodes) {
			return 0, fmt.Errorf("%w: %d for %s", ErrUnknownParent, parent, name)
		}
		depth = g.nodes[parent].depth + 1
	}
	if g.byName == nil {
		g.byName = make(map[string]int)
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, node{name: name, parent: parent, depth: depth})
	g.byName[name] = idx
	return idx, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Name returns the name of node i.
func (g *Graph) Name(i int) string { return g.nodes[i].name }

// Parent returns the parent index of node i, or NoParent.
func (g *Graph) Parent(i int) int { return g.nodes[i].parent }

// Depth returns the number of ancestors of node i.
func (g *Graph) Depth(i int) int { return g.nodes[i].depth }

// Index looks up a node by name.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.byName[name]
	return i, ok
}

// Children returns the immediate descendants of node i in insertion order.
func (g *Graph) Children(i int) []int {
	var out []int
	for j := i + 1; j < len(g.nodes); j++ {
		if g.nodes[j].parent == i {
			out = append(out, j)
		}
	}
	return out
}

// Order returns node indices in evaluation order (parents first).
func (g *Graph) Order() []int {
	out := make([]int, len(g.nodes))
	for i := range out {
		out[i] = i
	}
	return out
}

// Update composes locals (indexed like the graph) into world matrices:
// world[i] = world[parent(i)] × locals[i].
func (g *Graph) Update(locals []mathutil.Mat4) ([]mathutil.Mat4, error) {
	if len(locals) != len(g.nodes) {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrLocalCount, len(locals), len(g.nodes))
	}
	worlds := make([]mathutil.Mat4, len(locals))
	g.UpdateInto(worlds, locals)
	return worlds, nil
}

// UpdateInto is Update without allocation. Both slices must have Len()
// elements.
func (g *Graph) UpdateInto(worlds, locals []mathutil.Mat4) {
	for i, n := range g.nodes {
		if n.parent == NoParent {
			worlds[i] = locals[i]
			continue
		}
		worlds[i] = mathutil.Mat4Mul(worlds[n.parent], locals[i])
	}
}
