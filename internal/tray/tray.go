// Package tray provides a system tray icon for pausing, inspecting and
// stopping gesture control.
package tray

import (
	"context"
	"sync"
	"time"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/ayusman/handmouse/internal/gesture"
	"github.com/ayusman/handmouse/internal/logging"
)

// modePollInterval is how often the mode menu line is refreshed.
const modePollInterval = 250 * time.Millisecond

// Controller is the part of a running session the tray drives. The help
// overlay stays on the keyboard: tray mode runs without a preview window.
type Controller interface {
	SetPaused(paused bool)
	Paused() bool
	RequestQuit()
	Mode() gesture.Mode
}

// Tray represents the system tray application.
type Tray struct {
	ctl Controller
	mu  sync.Mutex
	log zerolog.Logger

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuMode   *systray.MenuItem
	lastMode   gesture.Mode
}

// New creates a tray driving ctl.
func New(ctl Controller) *Tray {
	return &Tray{
		ctl: ctl,
		log: logging.Module("tray"),
	}
}

// Run starts the system tray and blocks until Quit is chosen or ctx is done.
// It must be called from the main goroutine.
func (t *Tray) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		systray.Quit()
	}()
	systray.Run(func() { t.onReady(ctx) }, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady(ctx context.Context) {
	systray.SetTitle("Handmouse")
	systray.SetTooltip("Hand gesture mouse control")

	t.mu.Lock()
	t.menuToggle = systray.AddMenuItem(toggleTitle(t.ctl.Paused()), "Pause or resume gesture control")
	systray.AddSeparator()
	t.menuMode = systray.AddMenuItem(modeTitle(t.ctl.Mode()), "Current gesture")
	t.menuMode.Disable()
	t.mu.Unlock()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Stop gesture control")

	// Handle menu item clicks in a separate goroutine
	go func() {
		ticker := time.NewTicker(modePollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-ticker.C:
				t.refreshMode()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
	t.ctl.RequestQuit()
}

// handleToggle pauses or resumes gesture control.
func (t *Tray) handleToggle() {
	paused := !t.ctl.Paused()
	t.ctl.SetPaused(paused)
	t.log.Info().Bool("paused", paused).Msg("gesture control toggled")

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.menuToggle != nil {
		t.menuToggle.SetTitle(toggleTitle(paused))
	}
}

// handleQuit asks the session to stop.
func (t *Tray) handleQuit() {
	t.log.Info().Msg("quit from tray")
	t.ctl.RequestQuit()
}

// refreshMode updates the mode line when the session reports a new mode.
// It returns true when the mode changed.
func (t *Tray) refreshMode() bool {
	m := t.ctl.Mode()

	t.mu.Lock()
	defer t.mu.Unlock()
	if m == t.lastMode {
		return false
	}
	t.lastMode = m
	if t.menuMode != nil {
		t.menuMode.SetTitle(modeTitle(m))
	}
	return true
}

func toggleTitle(paused bool) string {
	if paused {
		return "○ Paused"
	}
	return "● Tracking"
}

func modeTitle(m gesture.Mode) string {
	return "Mode: " + m.String()
}
