package render

import (
	"image"
	"time"

	"gocv.io/x/gocv"
)

// Window renders into a native OpenCV window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

func (w *Window) DrawHand(frame *gocv.Mat, points []image.Point) {
	DrawSkeleton(frame, points)
}

func (w *Window) DrawOverlays(frame *gocv.Mat, s Scene) {
	DrawScene(frame, s)
}

func (w *Window) Present(frame *gocv.Mat) {
	w.win.IMShow(*frame)
}

// PollKey waits for a key press. OpenCV waits at least one millisecond.
func (w *Window) PollKey(wait time.Duration) int {
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	key := w.win.WaitKey(ms)
	if key < 0 {
		return NoKey
	}
	return key & 0xFF
}

func (w *Window) Close() error {
	return w.win.Close()
}
