package journal

// runMigrations creates the journal schema.
func (j *Journal) runMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		)`,

		// One row per mouse action handed to the sink
		`CREATE TABLE IF NOT EXISTS actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			frame INTEGER NOT NULL,
			kind TEXT NOT NULL CHECK(kind IN ('left_click', 'right_click', 'scroll')),
			amount INTEGER NOT NULL DEFAULT 0,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			at DATETIME NOT NULL
		)`,

		// One row each time the reported gesture mode changes
		`CREATE TABLE IF NOT EXISTS mode_changes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			frame INTEGER NOT NULL,
			from_mode TEXT NOT NULL,
			to_mode TEXT NOT NULL,
			at DATETIME NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_actions_session_id ON actions(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mode_changes_session_id ON mode_changes(session_id)`,
	}

	for _, migration := range migrations {
		if _, err := j.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
