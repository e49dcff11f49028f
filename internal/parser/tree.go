// Package parser builds and walks the runtime Selector tree: the
// compiled form of a configuration tree, ready to read and write actual
// records (spec.md §4.1, §4.2).
package parser

import parsectx "github.com/somranjan/beanio/internal/context"

// StreamTree is the compiled, arena-owned form of one configuration
// Stream. No Selector holds a pointer to its parent; a Group holds its
// children directly as a []Selector, and the tree also lists every
// Selector in the flat nodes arena, so resetting the whole tree is a
// flat loop over the arena with no cycle to worry about. The teacher's own tree-shaped data (its
// `analyze.TypeGraph`) instead tracks nodes by string ID in a map — the
// closest the pack comes to "no parent pointers"; this tree specializes
// that idea to a flat owned slice since the Selector tree's node count
// is fixed at build time and never grows at runtime.
type StreamTree struct {
	Name string
	Root *Group

	// nodes holds every Selector in the tree, in build order, so code
	// that must visit "all selectors" (Reset, checkpoint Snapshot/
	// Restore) can do so without a recursive walk.
	nodes []Selector
}

// arenaIndex is a StreamTree-scoped identifier for a Selector, assigned
// at Build time. It is not a pointer, and is meaningless outside the
// StreamTree that issued it.
type arenaIndex int

// register appends n to the arena and returns its index.
func (t *StreamTree) register(n Selector) arenaIndex {
	idx := arenaIndex(len(t.nodes))
	t.nodes = append(t.nodes, n)

	return idx
}

// Nodes returns every Selector in the tree in build order.
func (t *StreamTree) Nodes() []Selector {
	return t.nodes
}

// Reset resets every selector's occurrence counters for a fresh pass
// over the stream, without needing to walk the tree recursively (spec.md
// §4.1, `reset()`).
func (t *StreamTree) Reset() {
	for _, n := range t.nodes {
		n.Reset()
	}
}

// Snapshot captures every selector's occurrence count into a flat
// StateMap keyed under namespace, for internal/checkpoint to persist
// (spec.md §4.8).
func (t *StreamTree) Snapshot(namespace string) parsectx.StateMap {
	state := make(parsectx.StateMap, len(t.nodes))

	for _, n := range t.nodes {
		state[parsectx.CountKey(namespace, n.Name())] = n.Count()
	}

	return state
}

// Restore applies a previously captured StateMap back onto every
// selector's occurrence count, failing on the first missing or
// malformed key rather than leaving the tree partially restored
// (spec.md §4.8 edge case).
func (t *StreamTree) Restore(namespace string, state parsectx.StateMap) error {
	counts := make([]int, len(t.nodes))

	for i, n := range t.nodes {
		count, err := state.RequireInt(parsectx.CountKey(namespace, n.Name()))
		if err != nil {
			return err
		}

		counts[i] = count
	}

	for i, n := range t.nodes {
		n.SetCount(counts[i])
	}

	return nil
}
