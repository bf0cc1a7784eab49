package mouse

import (
	"time"

	"github.com/go-vgo/robotgo"
)

// RobotgoSink injects mouse events through robotgo.
type RobotgoSink struct{}

// NewRobotgoSink returns a sink that waits pause after every event.
// The pause is process-wide in robotgo.
func NewRobotgoSink(pause time.Duration) *RobotgoSink {
	robotgo.MouseSleep = int(pause / time.Millisecond)
	return &RobotgoSink{}
}

// ScreenSize returns the primary display size in pixels.
func ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// MoveTo moves the pointer to (x, y).
func (s *RobotgoSink) MoveTo(x, y int) {
	robotgo.Move(x, y)
}

// ClickLeft presses and releases the left button.
func (s *RobotgoSink) ClickLeft() {
	robotgo.Click("left")
}

// ClickRight presses and releases the right button.
func (s *RobotgoSink) ClickRight() {
	robotgo.Click("right")
}

// Scroll turns the wheel by amount units; positive scrolls up.
func (s *RobotgoSink) Scroll(amount int) {
	if amount == 0 {
		return
	}
	robotgo.Scroll(0, amount)
}
