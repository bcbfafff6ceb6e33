package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// State remembers where the last session left off.
type State struct {
	Document   string `json:"document"`
	CursorLine int    `json:"cursor_line"`
	CursorRow  int    `json:"cursor_row"`
}

// LoadState reads state from ~/.config/tategaki/state.json.
func LoadState() (*State, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	return loadState(path)
}

func loadState(path string) (*State, error) {
	state := &State{}

	//nolint:gosec // G304: path is inside the data directory
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// SaveState writes state to ~/.config/tategaki/state.json with 0600 permissions.
func SaveState(state *State) error {
	dir, err := EnsureDataDir()
	if err != nil {
		return err
	}
	return saveState(filepath.Join(dir, "state.json"), state)
}

func saveState(path string, state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// DocumentOr returns the remembered document name, or name when none is stored.
func (s *State) DocumentOr(name string) string {
	if s == nil || s.Document == "" {
		return name
	}
	return s.Document
}

func statePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}
