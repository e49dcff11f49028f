package config

import (
	"fmt"
)

// ErrCircularImport is wrapped into the error ResolveImports returns when
// a resource is revisited while still on the import stack (spec.md §5:
// "Mapping-file imports must detect cycles by tracking the set of
// resolved resource names on the import stack and aborting with
// circular-import on revisit").
var ErrCircularImport = fmt.Errorf("circular import")

// Resolver loads one resource's raw bytes given its resolved path. The
// scheme (classpath: or file:) has already been validated by the time
// Resolver is called; resolving classpath: resources onto the host's
// search path is left to the caller, consistent with this module
// treating the loader's resource resolution as outside its scope.
type Resolver func(resource string) ([]byte, error)

// ResolveImports walks root's import list (and the import lists of
// everything it transitively imports) depth-first, merging every
// resolved Tree's streams and type handlers into one. It is the Go
// analogue of the teacher's topoSortAssignments ready-queue walk
// (internal/gen/toposort.go), but imports form no ordering worth
// sorting — only a cycle to reject — so this is plain DFS with an
// explicit stack rather than Kahn's algorithm.
func ResolveImports(root []Import, load Resolver) (*Tree, error) {
	merged := &Tree{}
	stack := map[string]struct{}{}

	var visit func(imports []Import) error
	visit = func(imports []Import) error {
		for _, imp := range imports {
			if imp.Scheme == ImportSchemeUnspecified {
				return fmt.Errorf("import %q: missing scheme (expected classpath: or file:)", imp.Resource)
			}

			key := imp.Resource
			if _, onStack := stack[key]; onStack {
				return fmt.Errorf("%w: %q", ErrCircularImport, key)
			}

			stack[key] = struct{}{}

			data, err := load(key)
			if err != nil {
				return fmt.Errorf("resolving import %q: %w", key, err)
			}

			child, err := ParseYAML(data)
			if err != nil {
				return fmt.Errorf("parsing imported resource %q: %w", key, err)
			}

			merged.Streams = append(merged.Streams, child.Streams...)
			merged.TypeHandlers = append(merged.TypeHandlers, child.TypeHandlers...)

			if err := visit(child.Imports); err != nil {
				return err
			}

			delete(stack, key)
		}

		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}

	return merged, nil
}
