package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/festgames/scoreboard/internal/scoreboard"
)

// DB reads the three seed documents from a sqlite database, one JSONB row
// per document in the seed_documents table. Used when the event data is
// managed centrally instead of shipped alongside the frontend build.
type DB struct {
	db *sql.DB
}

func NewDB(db *sql.DB) *DB {
	return &DB{db: db}
}

func (s *DB) Load(ctx context.Context) (scoreboard.Snapshot, error) {
	var snap scoreboard.Snapshot
	if err := s.readDocument(ctx, "teams", &snap.Teams); err != nil {
		return scoreboard.Snapshot{}, err
	}
	if err := s.readDocument(ctx, "challenges", &snap.Challenges); err != nil {
		return scoreboard.Snapshot{}, err
	}
	if err := s.readDocument(ctx, "hints", &snap.Hints); err != nil {
		return scoreboard.Snapshot{}, err
	}
	return snap, nil
}

func (s *DB) readDocument(ctx context.Context, name string, v any) error {
	var body []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT json(body) FROM seed_documents WHERE name = ?
	`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("seed document %q not found", name)
	}
	if err != nil {
		return fmt.Errorf("reading seed document %q: %w", name, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing seed document %q: %w", name, err)
	}
	return nil
}

// WriteDocument stores one seed document, replacing any previous version.
func (s *DB) WriteDocument(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding seed document %q: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO seed_documents (name, body) VALUES (?, jsonb(?))
		ON CONFLICT (name) DO UPDATE SET body = excluded.body
	`, name, string(body))
	if err != nil {
		return fmt.Errorf("writing seed document %q: %w", name, err)
	}
	return nil
}

// Check reports whether the database is still reachable.
func (s *DB) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
