package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/handmouse/internal/capture"
	"github.com/ayusman/handmouse/internal/config"
	"github.com/ayusman/handmouse/internal/detector"
	"github.com/ayusman/handmouse/internal/journal"
	"github.com/ayusman/handmouse/internal/mouse"
	"github.com/ayusman/handmouse/internal/render"
	"github.com/ayusman/handmouse/internal/session"
)

func TestE2E_GestureWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	cfgPath := filepath.Join(t.TempDir(), "handmouse.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		"smoothing_factor": 5,
		"click_cooldown_ms": 250,
		"log_level": "debug"
	}`), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.Empty(t, cfg.Validate())

	j, err := journal.Open()
	require.NoError(t, err)
	defer j.Close()

	palm := detector.OpenPalmLandmarks()
	script := [][]detector.HandLandmarks{
		{detector.PointingLandmarks()},
		{detector.LeftPinchLandmarks()},
		{detector.LeftPinchLandmarks()},
		{detector.PointingLandmarks()},
		{palm},
		{palm.Translate(0, 55.0/720)},
		nil,
		{detector.RightPinchLandmarks()},
	}

	cam := capture.NewBlankCamera(len(script), 1280, 720)
	defer cam.Release()
	det := detector.NewMockDetector()
	det.SetScript(script...)
	sink := mouse.NewRecorder()

	s := session.New(cfg, session.Deps{
		Camera:       cam,
		Detector:     det,
		Sink:         sink,
		Renderer:     render.Headless(),
		Journal:      j,
		Clock:        session.NewStepClock(time.Unix(0, 0), 400*time.Millisecond),
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})

	t.Run("Run", func(t *testing.T) {
		require.NoError(t, s.Run(context.Background()))
		assert.Equal(t, int64(len(script)), s.Frames())
	})

	t.Run("MouseEvents", func(t *testing.T) {
		var kinds []string
		for _, e := range sink.Events() {
			kinds = append(kinds, e.Kind)
		}
		assert.Equal(t, []string{
			"move",
			"move", "left_click",
			"move",
			"move",
			"move",
			"move", "scroll",
			"move", "right_click",
		}, kinds)
	})

	t.Run("Journal", func(t *testing.T) {
		sum, err := j.Summarize(s.Frames(), time.Now())
		require.NoError(t, err)

		assert.Equal(t, 1, sum.LeftClicks)
		assert.Equal(t, 1, sum.RightClicks)
		assert.Equal(t, 1, sum.Scrolls)
		assert.Equal(t, -5, sum.ScrollTotal)
		assert.Equal(t, 6, sum.ModeChanges)
		assert.Equal(t, 1, sum.Visits["DRAG"])
	})
}
