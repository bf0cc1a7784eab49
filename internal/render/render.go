// Package render draws tracking overlays onto camera frames and shows them
// in a window.
package render

import (
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/handmouse/internal/gesture"
)

// NoKey is returned by PollKey when no key was pressed.
const NoKey = -1

// Scene is everything drawn on a frame after the hand skeleton.
type Scene struct {
	HandVisible bool
	Thumb       image.Point
	Index       image.Point
	Middle      image.Point
	Mode        gesture.Mode
	Drag        bool
	FPS         float64
	ShowHelp    bool
	Paused      bool
}

// Renderer draws and presents frames and reports key presses.
type Renderer interface {
	// DrawHand draws the landmark skeleton of one hand.
	DrawHand(frame *gocv.Mat, points []image.Point)
	// DrawOverlays draws gesture markers, the info panel and the help
	// overlay, in that order.
	DrawOverlays(frame *gocv.Mat, s Scene)
	// Present shows the frame.
	Present(frame *gocv.Mat)
	// PollKey waits up to wait for a key press and returns its code or NoKey.
	PollKey(wait time.Duration) int
	Close() error
}

// Null discards everything. It is used when no preview window is wanted.
type Null struct{}

func (Null) DrawHand(*gocv.Mat, []image.Point) {}
func (Null) DrawOverlays(*gocv.Mat, Scene)     {}
func (Null) Present(*gocv.Mat)                 {}
func (Null) PollKey(time.Duration) int         { return NoKey }
func (Null) Close() error                      { return nil }
