// Package journal keeps an in-memory SQLite record of one control session:
// every mouse action emitted and every gesture mode change. Nothing is
// written to disk; the journal is gone when the process exits.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Journal is an in-memory session log.
type Journal struct {
	db        *sql.DB
	sessionID string
	startedAt time.Time
}

// Open creates a fresh in-memory journal for a new session.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	j := &Journal{
		db:        db,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
	}

	if err := j.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		j.sessionID, j.startedAt,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	return j, nil
}

// SessionID returns the id of the session this journal records.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Close discards the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}

// DB returns the underlying database connection.
func (j *Journal) DB() *sql.DB {
	return j.db
}
