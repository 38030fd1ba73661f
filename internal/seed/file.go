// Package seed loads the event's initial data — teams, challenges, and the
// hint schedule — from one of two sources: static JSON files shipped with
// the frontend build, or a sqlite database holding the same three documents.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

// Files reads teams.json, challenges.json, and hints.json from a directory.
// This is the default source and matches the static data files the event
// frontend is built from.
type Files struct {
	dir string
}

func NewFiles(dir string) *Files {
	return &Files{dir: dir}
}

func (f *Files) Load(_ context.Context) (scoreboard.Snapshot, error) {
	var snap scoreboard.Snapshot
	if err := f.readFile("teams.json", &snap.Teams); err != nil {
		return scoreboard.Snapshot{}, err
	}
	if err := f.readFile("challenges.json", &snap.Challenges); err != nil {
		return scoreboard.Snapshot{}, err
	}
	if err := f.readFile("hints.json", &snap.Hints); err != nil {
		return scoreboard.Snapshot{}, err
	}
	return snap, nil
}

func (f *Files) readFile(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Check reports whether the seed directory is still reachable.
func (f *Files) Check(_ context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}
	return nil
}
