package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xonecas/tategaki/internal/screen"
	"github.com/xonecas/tategaki/internal/text"
)

// newLayoutCmd creates the layout subcommand
func newLayoutCmd() *cobra.Command {
	var lines, rows int
	cmd := &cobra.Command{
		Use:   "layout <file|->",
		Short: "Print the column layout of a text file",
		Long: `Print the column layout of a text file without starting the editor.
Each output line is one column: its characters, then the line and offset
where the following column starts, or EOF.

Grid size defaults to the [screen] section of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lines") {
				lines = cfg.Screen.LinesOrDefault()
			}
			if !cmd.Flags().Changed("rows") {
				rows = cfg.Screen.RowsOrDefault()
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			buffer, err := text.FromBytes(data)
			if err != nil {
				return err
			}

			sm, err := screen.New(lines, rows, buffer, 0, screen.WithRules(cfg.Kinsoku.RuleSet()))
			if err != nil {
				return fmt.Errorf("grid %dx%d: %w", lines, rows, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sm.String())
			return err
		},
	}
	cmd.Flags().IntVar(&lines, "lines", 0, "number of columns")
	cmd.Flags().IntVar(&rows, "rows", 0, "characters per column")
	return cmd
}
