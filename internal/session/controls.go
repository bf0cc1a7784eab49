package session

import (
	"sync/atomic"

	"github.com/ayusman/handmouse/internal/gesture"
)

// Controls are the flags shared between the frame loop and outside
// controllers such as the keyboard, the tray icon and signal handlers.
// The loop reads them once per frame.
type Controls struct {
	quit   atomic.Bool
	paused atomic.Bool
	help   atomic.Bool
	mode   atomic.Int32
}

// NewControls returns controls with tracking enabled and help hidden.
func NewControls() *Controls {
	return &Controls{}
}

// RequestQuit asks the loop to stop after the current frame.
func (c *Controls) RequestQuit() { c.quit.Store(true) }

// QuitRequested reports whether RequestQuit was called.
func (c *Controls) QuitRequested() bool { return c.quit.Load() }

// SetPaused suspends or resumes gesture control. While paused frames are
// still shown but treated as if no hand were visible.
func (c *Controls) SetPaused(paused bool) { c.paused.Store(paused) }

// Paused reports whether gesture control is suspended.
func (c *Controls) Paused() bool { return c.paused.Load() }

// ToggleHelp flips the help overlay and returns the new state.
func (c *Controls) ToggleHelp() bool {
	for {
		old := c.help.Load()
		if c.help.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// HelpVisible reports whether the help overlay is shown.
func (c *Controls) HelpVisible() bool { return c.help.Load() }

// Mode returns the mode reported for the most recent frame.
func (c *Controls) Mode() gesture.Mode { return gesture.Mode(c.mode.Load()) }

func (c *Controls) setMode(m gesture.Mode) { c.mode.Store(int32(m)) }
