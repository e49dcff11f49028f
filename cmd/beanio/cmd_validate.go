package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/somranjan/beanio/internal/config"
	"github.com/somranjan/beanio/internal/parser"
)

// newValidateCmd grounds its Use/Short/Args/RunE shape on
// dhamidi-sai/cmd/sai's newDumpCmd: one cobra.Command constructor per
// subcommand, flags closed over by the RunE closure.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <mapping.yaml>",
		Short: "Load, validate, and build a mapping file without reading any records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			tree, err := config.LoadYAML(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			if err := config.Validate(tree); err != nil {
				return fmt.Errorf("invalid mapping: %w", err)
			}

			registry, accessors := newEnvironment()

			trees, err := parser.Build(tree, registry, accessors)
			if err != nil {
				return fmt.Errorf("build mapping: %w", err)
			}

			for name, st := range trees {
				log.Infof("stream %q: %d selector(s)", name, len(st.Nodes()))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid, %d stream(s)\n", path, len(trees))

			return nil
		},
	}

	return cmd
}
