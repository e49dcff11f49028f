package checkpoint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	parsectx "github.com/somranjan/beanio/internal/context"
)

// ExportYAML writes state to path as a flat YAML mapping, for the CLI's
// --checkpoint-file flag to hand off between runs without a database.
func ExportYAML(path string, state parsectx.StateMap) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("exporting checkpoint to %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("exporting checkpoint to %s: %w", path, err)
	}

	return nil
}

// ImportYAML reads a StateMap previously written by ExportYAML. A
// missing file is treated as an empty checkpoint, the same "no prior
// state" signal Store.Load gives for an unknown namespace.
func ImportYAML(path string) (parsectx.StateMap, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return parsectx.StateMap{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("importing checkpoint from %s: %w", path, err)
	}

	state := parsectx.StateMap{}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("importing checkpoint from %s: %w", path, err)
	}

	return state, nil
}
