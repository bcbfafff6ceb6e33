package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xonecas/tategaki/internal/config"
	"github.com/xonecas/tategaki/internal/store"
	"github.com/xonecas/tategaki/internal/text"
)

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents, most recently edited first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, st *store.Store) error {
				docs, err := st.List()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, d := range docs {
					fmt.Fprintf(out, "%-24s %s\n", d.Name, d.Updated.Local().Format(time.DateTime))
				}
				return nil
			})
		},
	}
}

// newExportCmd creates the export subcommand
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name>",
		Short: "Write a stored document to stdout as UTF-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, st *store.Store) error {
				content, ok := st.Load(args[0])
				if !ok {
					return fmt.Errorf("document %q not found", args[0])
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			})
		},
	}
}

// newImportCmd creates the import subcommand
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Store a text file as a document",
		Long: `Store a text file as a document. UTF-8 and UTF-16 files with a byte
order mark are recognised; CR and CRLF line endings become LF.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			buffer, err := text.FromBytes(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			return withStore(func(_ *config.Config, st *store.Store) error {
				return st.Save(args[0], buffer.String())
			})
		},
	}
}

// newRemoveCmd creates the rm subcommand
func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a stored document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, st *store.Store) error {
				return st.Delete(args[0])
			})
		},
	}
}
