// Package config holds the tunable parameters of a handmouse session.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
)

// Config holds runtime configuration for capture, detection, gestures and the UI.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	// Capture
	CameraIndex  int  `json:"camera_index"`
	CameraWidth  int  `json:"camera_width"`
	CameraHeight int  `json:"camera_height"`
	TargetFPS    int  `json:"target_fps"`
	Mirror       bool `json:"mirror"`

	// Hand tracking
	MaxHands               int     `json:"max_hands"`
	MinDetectionConfidence float64 `json:"min_detection_confidence"`
	MinTrackingConfidence  float64 `json:"min_tracking_confidence"`
	ModelComplexity        int     `json:"model_complexity"`
	StaticImageMode        bool    `json:"static_image_mode"`

	// Cursor
	SmoothingFactor  float64 `json:"smoothing_factor"`
	ControlAreaStart float64 `json:"control_area_start"`
	ControlAreaEnd   float64 `json:"control_area_end"`
	InjectPauseMs    int     `json:"inject_pause_ms"`

	// Gestures
	ClickThreshold  float64 `json:"click_threshold"`
	ScrollThreshold int     `json:"scroll_threshold"`
	ClickCooldownMs int     `json:"click_cooldown_ms"`

	// UI
	FPSHistorySize int    `json:"fps_history_size"`
	WindowTitle    string `json:"window_title"`
	QuitKey        string `json:"quit_key"`
	HelpKey        string `json:"help_key"`
	ShowWindow     bool   `json:"show_window"`
	Tray           bool   `json:"tray"`

	LogLevel string `json:"log_level"`
}

// Default returns a Config populated with the standard defaults.
func Default() *Config {
	return &Config{
		CameraIndex:  0,
		CameraWidth:  1280,
		CameraHeight: 720,
		TargetFPS:    60,
		Mirror:       true,

		MaxHands:               1,
		MinDetectionConfidence: 0.8,
		MinTrackingConfidence:  0.8,
		ModelComplexity:        1,
		StaticImageMode:        false,

		SmoothingFactor:  7,
		ControlAreaStart: 0.2,
		ControlAreaEnd:   0.8,
		InjectPauseMs:    1,

		ClickThreshold:  40,
		ScrollThreshold: 30,
		ClickCooldownMs: 300,

		FPSHistorySize: 30,
		WindowTitle:    "Gesture Mouse Control",
		QuitKey:        "q",
		HelpKey:        "h",
		ShowWindow:     true,
		Tray:           false,

		LogLevel: "info",
	}
}

// ClickCooldown returns the minimum time between two triggered clicks.
func (c *Config) ClickCooldown() time.Duration {
	return time.Duration(c.ClickCooldownMs) * time.Millisecond
}

// InjectPause returns the pause applied after each injected mouse event.
func (c *Config) InjectPause() time.Duration {
	return time.Duration(c.InjectPauseMs) * time.Millisecond
}

// Load reads configuration from the JSON file at path on top of Default().
// A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := sonic.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports values outside their recommended ranges; such tuning values
// are kept as given. Settings that would make a session impossible are reset
// to their defaults and reported as well. The warnings are logged at startup.
func (c *Config) Validate() []string {
	var warnings []string
	def := Default()

	if c.SmoothingFactor < 1 || c.SmoothingFactor > 20 {
		warnings = append(warnings, fmt.Sprintf("smoothing factor %.2f outside recommended range 1-20", c.SmoothingFactor))
	}
	if c.SmoothingFactor <= 0 {
		warnings = append(warnings, fmt.Sprintf("smoothing factor must be positive, using %.0f", def.SmoothingFactor))
		c.SmoothingFactor = def.SmoothingFactor
	}
	if c.MinDetectionConfidence < 0 || c.MinDetectionConfidence > 1 {
		warnings = append(warnings, fmt.Sprintf("min detection confidence %.2f must be 0.0-1.0", c.MinDetectionConfidence))
	}
	if c.MinTrackingConfidence < 0 || c.MinTrackingConfidence > 1 {
		warnings = append(warnings, fmt.Sprintf("min tracking confidence %.2f must be 0.0-1.0", c.MinTrackingConfidence))
	}
	if !(c.ControlAreaStart >= 0 && c.ControlAreaStart < c.ControlAreaEnd && c.ControlAreaEnd <= 1) {
		warnings = append(warnings, fmt.Sprintf("invalid control area %.2f-%.2f, using %.2f-%.2f",
			c.ControlAreaStart, c.ControlAreaEnd, def.ControlAreaStart, def.ControlAreaEnd))
		c.ControlAreaStart, c.ControlAreaEnd = def.ControlAreaStart, def.ControlAreaEnd
	}
	if c.MaxHands != 1 {
		warnings = append(warnings, fmt.Sprintf("max hands %d not supported, tracking a single hand", c.MaxHands))
		c.MaxHands = 1
	}
	if c.FPSHistorySize <= 0 {
		c.FPSHistorySize = def.FPSHistorySize
	}
	if len(c.QuitKey) != 1 {
		warnings = append(warnings, fmt.Sprintf("quit key %q must be a single character, using %q", c.QuitKey, def.QuitKey))
		c.QuitKey = def.QuitKey
	}
	if len(c.HelpKey) != 1 {
		warnings = append(warnings, fmt.Sprintf("help key %q must be a single character, using %q", c.HelpKey, def.HelpKey))
		c.HelpKey = def.HelpKey
	}

	return warnings
}
