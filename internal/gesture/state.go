package gesture

import "time"

// State is the gesture state carried from one frame to the next.
// It is owned by a single session goroutine and is not safe for concurrent use.
type State struct {
	// DragActive is true while a left pinch is held past its initial click.
	DragActive bool

	// LastClick is when the last left or right click was triggered.
	LastClick time.Time

	anchorY  int
	anchored bool
}

// ScrollAnchor returns the index-tip y captured when the current scroll
// gesture began, and whether a scroll gesture is anchored at all.
func (s *State) ScrollAnchor() (int, bool) {
	return s.anchorY, s.anchored
}

func (s *State) anchor(y int) {
	s.anchorY = y
	s.anchored = true
}

func (s *State) clearAnchor() {
	s.anchorY = 0
	s.anchored = false
}

// HandLost clears the gesture state that must not survive a frame without a
// hand: an active drag and the scroll anchor. The click cooldown is kept.
func (s *State) HandLost() {
	s.DragActive = false
	s.clearAnchor()
}
