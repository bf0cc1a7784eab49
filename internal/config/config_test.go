package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1280, cfg.CameraWidth)
	assert.Equal(t, 720, cfg.CameraHeight)
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, 1, cfg.MaxHands)
	assert.Equal(t, 7.0, cfg.SmoothingFactor)
	assert.Equal(t, 40.0, cfg.ClickThreshold)
	assert.Equal(t, 30, cfg.ScrollThreshold)
	assert.Equal(t, 300*time.Millisecond, cfg.ClickCooldown())
	assert.Equal(t, time.Millisecond, cfg.InjectPause())
	assert.Empty(t, cfg.Validate(), "defaults should validate cleanly")
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides selected fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "handmouse.json")
		data := `{"smoothing_factor": 4, "click_cooldown_ms": 500, "camera_index": 2}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4.0, cfg.SmoothingFactor)
		assert.Equal(t, 500*time.Millisecond, cfg.ClickCooldown())
		assert.Equal(t, 2, cfg.CameraIndex)
		assert.Equal(t, 40.0, cfg.ClickThreshold, "unset fields keep defaults")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"smoothing_factor":`), 0o644))

		cfg, err := Load(path)
		assert.Error(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantWarns int
		check     func(t *testing.T, c *Config)
	}{
		{
			name:      "smoothing above range is kept",
			mutate:    func(c *Config) { c.SmoothingFactor = 25 },
			wantWarns: 1,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 25.0, c.SmoothingFactor)
			},
		},
		{
			name:      "zero smoothing is reset",
			mutate:    func(c *Config) { c.SmoothingFactor = 0 },
			wantWarns: 2,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 7.0, c.SmoothingFactor)
			},
		},
		{
			name:      "confidence out of range",
			mutate:    func(c *Config) { c.MinDetectionConfidence = 1.5; c.MinTrackingConfidence = -0.1 },
			wantWarns: 2,
		},
		{
			name:      "inverted control area",
			mutate:    func(c *Config) { c.ControlAreaStart = 0.9; c.ControlAreaEnd = 0.1 },
			wantWarns: 1,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 0.2, c.ControlAreaStart)
				assert.Equal(t, 0.8, c.ControlAreaEnd)
			},
		},
		{
			name:      "multi hand forced to one",
			mutate:    func(c *Config) { c.MaxHands = 2 },
			wantWarns: 1,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 1, c.MaxHands)
			},
		},
		{
			name:      "multi character keys",
			mutate:    func(c *Config) { c.QuitKey = "quit"; c.HelpKey = "" },
			wantWarns: 2,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "q", c.QuitKey)
				assert.Equal(t, "h", c.HelpKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			warnings := cfg.Validate()
			assert.Len(t, warnings, tt.wantWarns, "warnings: %v", warnings)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
