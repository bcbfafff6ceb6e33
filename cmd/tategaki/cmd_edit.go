package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/tategaki/internal/config"
	"github.com/xonecas/tategaki/internal/constants"
	"github.com/xonecas/tategaki/internal/screen"
	"github.com/xonecas/tategaki/internal/text"
	"github.com/xonecas/tategaki/internal/tui"
)

// runEditor opens the document and runs the terminal UI until the user quits.
func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	state, err := config.LoadState()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load state")
	}
	name := docName
	if name == "" {
		name = state.DocumentOr(constants.DefaultDocument)
	}

	buffer, err := seedBuffer(args, name, st.Load)
	if err != nil {
		return err
	}

	sm, err := screen.New(
		cfg.Screen.LinesOrDefault(),
		cfg.Screen.RowsOrDefault(),
		buffer, 0,
		screen.WithRules(cfg.Kinsoku.RuleSet()),
	)
	if err != nil {
		return err
	}
	if state != nil && state.Document == name {
		restoreCursor(sm, state.CursorLine, state.CursorRow)
	}

	log.Info().Str("doc", name).Int("lines", buffer.LineLen()).Msg("editing")

	p := tea.NewProgram(tui.New(sm, st, name, cfg.Store.AutosaveOrDefault()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tategaki: %w", err)
	}
	st.Flush()

	if err := config.SaveState(&config.State{
		Document:   name,
		CursorLine: sm.CursorLine(),
		CursorRow:  sm.CursorRow(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to save state")
	}
	return nil
}

// seedBuffer reads the file argument when given, otherwise the stored document.
func seedBuffer(args []string, name string, load func(string) (string, bool)) (*text.Buffer, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return text.FromBytes(data)
	}
	if content, ok := load(name); ok {
		return text.FromString(content), nil
	}
	return text.NewBuffer(), nil
}

// restoreCursor walks forward to a remembered cursor, stopping early when
// the document has changed shape.
func restoreCursor(sm *screen.Model, line, row int) {
	for sm.CursorLine() < line || (sm.CursorLine() == line && sm.CursorRow() < row) {
		if !sm.MoveForward() {
			return
		}
	}
}
