package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	docName    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag variables are reset on each call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tategaki [file]",
		Short: "Vertical manuscript editor",
		Long: `tategaki edits Japanese text as vertical columns read right to left,
breaking columns according to kinsoku rules.

With a file argument the file seeds the document; otherwise the document
is loaded from the store.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runEditor,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/tategaki/config.toml)")
	rootCmd.PersistentFlags().StringVar(&docName, "doc", "", "document name in the store (default: last opened, or \"draft\")")

	rootCmd.AddCommand(
		newListCmd(),
		newExportCmd(),
		newImportCmd(),
		newRemoveCmd(),
		newLayoutCmd(),
	)

	return rootCmd
}
