// Command beanio is a thin CLI demonstrating this module's mapping
// engine: validating a mapping file against the bean types this binary
// knows about, and round-tripping a sample record stream through it.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("beanio")

func main() {
	commonlog.Configure(1, nil)

	rootCmd := &cobra.Command{
		Use:   "beanio",
		Short: "Validate and round-trip record streams against a mapping file",
	}

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newRoundtripCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
