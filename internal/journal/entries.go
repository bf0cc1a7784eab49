package journal

import (
	"fmt"
	"time"

	"github.com/ayusman/handmouse/internal/gesture"
)

// Summary aggregates a session.
type Summary struct {
	SessionID   string
	Frames      int64
	LeftClicks  int
	RightClicks int
	Scrolls     int
	ScrollTotal int
	ModeChanges int
	// Visits counts how often each mode was entered.
	Visits   map[string]int
	Duration time.Duration
}

// RecordAction stores one emitted action and the cursor position it was
// emitted at.
func (j *Journal) RecordAction(frame int64, a gesture.Action, x, y int, at time.Time) error {
	_, err := j.db.Exec(
		`INSERT INTO actions (session_id, frame, kind, amount, x, y, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID, frame, a.Kind.String(), a.Amount, x, y, at,
	)
	if err != nil {
		return fmt.Errorf("failed to record action: %w", err)
	}
	return nil
}

// RecordModeChange stores a transition between two reported modes.
func (j *Journal) RecordModeChange(frame int64, from, to gesture.Mode, at time.Time) error {
	_, err := j.db.Exec(
		`INSERT INTO mode_changes (session_id, frame, from_mode, to_mode, at)
		 VALUES (?, ?, ?, ?, ?)`,
		j.sessionID, frame, from.String(), to.String(), at,
	)
	if err != nil {
		return fmt.Errorf("failed to record mode change: %w", err)
	}
	return nil
}

// End marks the session finished.
func (j *Journal) End(at time.Time) error {
	_, err := j.db.Exec(`UPDATE sessions SET ended_at = ? WHERE id = ?`, at, j.sessionID)
	return err
}

// Summarize returns the counts recorded so far. frames is the number of
// frames the caller processed.
func (j *Journal) Summarize(frames int64, now time.Time) (Summary, error) {
	s := Summary{
		SessionID: j.sessionID,
		Frames:    frames,
		Duration:  now.Sub(j.startedAt),
	}

	rows, err := j.db.Query(
		`SELECT kind, COUNT(*), COALESCE(SUM(amount), 0) FROM actions
		 WHERE session_id = ? GROUP BY kind`,
		j.sessionID,
	)
	if err != nil {
		return s, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count, total int
		if err := rows.Scan(&kind, &count, &total); err != nil {
			return s, err
		}
		switch kind {
		case gesture.ActionLeftClick.String():
			s.LeftClicks = count
		case gesture.ActionRightClick.String():
			s.RightClicks = count
		case gesture.ActionScroll.String():
			s.Scrolls = count
			s.ScrollTotal = total
		}
	}
	if err := rows.Err(); err != nil {
		return s, err
	}

	if err := j.db.QueryRow(
		`SELECT COUNT(*) FROM mode_changes WHERE session_id = ?`,
		j.sessionID,
	).Scan(&s.ModeChanges); err != nil {
		return s, fmt.Errorf("failed to count mode changes: %w", err)
	}

	s.Visits, err = j.ModeVisits()
	if err != nil {
		return s, fmt.Errorf("failed to count mode visits: %w", err)
	}

	return s, nil
}

// ModeVisits returns how many times each mode was entered.
func (j *Journal) ModeVisits() (map[string]int, error) {
	rows, err := j.db.Query(
		`SELECT to_mode, COUNT(*) FROM mode_changes WHERE session_id = ? GROUP BY to_mode`,
		j.sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := map[string]int{}
	for rows.Next() {
		var mode string
		var n int
		if err := rows.Scan(&mode, &n); err != nil {
			return nil, err
		}
		visits[mode] = n
	}
	return visits, rows.Err()
}
