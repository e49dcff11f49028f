package context

import "fmt"

// StateMap is the flat checkpoint representation a Selector tree
// snapshots into and restores from, keyed "<namespace>.<selectorName>.
// <attribute>" (spec.md §4.8, checkpoint key shape). A flat map rather
// than a nested structure keeps checkpoint storage format-agnostic: the
// internal/checkpoint package just needs to persist string keys to
// arbitrary values, with no knowledge of the tree shape that produced
// them.
type StateMap map[string]any

// CountKey builds the checkpoint key for a selector's occurrence count
// under namespace.
func CountKey(namespace, selectorName string) string {
	return fmt.Sprintf("%s.%s.count", namespace, selectorName)
}

// RequireInt reads key as an int, failing fast rather than defaulting
// to zero when it is missing or of the wrong type (spec.md §4.8 edge
// case: "restoring from a checkpoint missing a required key is a fatal
// error, not a silent reset to the initial state").
func (s StateMap) RequireInt(key string) (int, error) {
	v, ok := s[key]
	if !ok {
		return 0, fmt.Errorf("checkpoint state missing required key %q", key)
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("checkpoint state key %q has type %T, want an integer", key, v)
	}
}
