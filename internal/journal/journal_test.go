package journal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/handmouse/internal/gesture"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpen_RunsMigrations(t *testing.T) {
	j := openJournal(t)

	for _, table := range []string{"sessions", "actions", "mode_changes"} {
		var name string
		err := j.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestOpen_SessionID(t *testing.T) {
	j := openJournal(t)

	_, err := uuid.Parse(j.SessionID())
	require.NoError(t, err)

	var count int
	require.NoError(t, j.DB().QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE id = ?", j.SessionID(),
	).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpen_SeparateSessions(t *testing.T) {
	a := openJournal(t)
	b := openJournal(t)

	require.NoError(t, a.RecordAction(1, gesture.Action{Kind: gesture.ActionLeftClick}, 0, 0, time.Now()))

	sa, err := a.Summarize(1, time.Now())
	require.NoError(t, err)
	sb, err := b.Summarize(1, time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID(), b.SessionID())
	assert.Equal(t, 1, sa.LeftClicks)
	assert.Zero(t, sb.LeftClicks)
}

func TestSummarize(t *testing.T) {
	j := openJournal(t)
	now := time.Now()

	require.NoError(t, j.RecordAction(3, gesture.Action{Kind: gesture.ActionLeftClick}, 10, 20, now))
	require.NoError(t, j.RecordAction(9, gesture.Action{Kind: gesture.ActionRightClick}, 10, 20, now))
	require.NoError(t, j.RecordAction(12, gesture.Action{Kind: gesture.ActionScroll, Amount: -5}, 10, 20, now))
	require.NoError(t, j.RecordAction(14, gesture.Action{Kind: gesture.ActionScroll, Amount: 3}, 10, 20, now))
	require.NoError(t, j.RecordAction(20, gesture.Action{Kind: gesture.ActionLeftClick}, 10, 20, now))

	require.NoError(t, j.RecordModeChange(3, gesture.ModeCursor, gesture.ModeLeftClick, now))
	require.NoError(t, j.RecordModeChange(4, gesture.ModeLeftClick, gesture.ModeDrag, now))
	require.NoError(t, j.RecordModeChange(8, gesture.ModeDrag, gesture.ModeCursor, now))
	require.NoError(t, j.RecordModeChange(11, gesture.ModeCursor, gesture.ModeScroll, now))
	require.NoError(t, j.RecordModeChange(15, gesture.ModeScroll, gesture.ModeCursor, now))

	s, err := j.Summarize(25, now)
	require.NoError(t, err)

	assert.Equal(t, j.SessionID(), s.SessionID)
	assert.Equal(t, int64(25), s.Frames)
	assert.Equal(t, 2, s.LeftClicks)
	assert.Equal(t, 1, s.RightClicks)
	assert.Equal(t, 2, s.Scrolls)
	assert.Equal(t, -2, s.ScrollTotal)
	assert.Equal(t, 5, s.ModeChanges)
	assert.Equal(t, map[string]int{
		"LEFT CLICK": 1,
		"DRAG":       1,
		"CURSOR":     2,
		"SCROLL":     1,
	}, s.Visits)
}

func TestSummarize_Empty(t *testing.T) {
	j := openJournal(t)

	s, err := j.Summarize(0, time.Now())
	require.NoError(t, err)

	assert.Zero(t, s.LeftClicks+s.RightClicks+s.Scrolls+s.ModeChanges)
	assert.Empty(t, s.Visits)
}

func TestEnd(t *testing.T) {
	j := openJournal(t)
	require.NoError(t, j.End(time.Now()))

	var ended bool
	require.NoError(t, j.DB().QueryRow(
		"SELECT ended_at IS NOT NULL FROM sessions WHERE id = ?", j.SessionID(),
	).Scan(&ended))
	assert.True(t, ended)
}
