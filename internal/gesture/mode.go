// Package gesture classifies per-frame hand geometry into mouse gestures.
package gesture

import "fmt"

// Mode is the gesture active in one frame. Exactly one mode is active per frame.
type Mode int

const (
	// ModeCursor moves the cursor only.
	ModeCursor Mode = iota
	// ModeLeftClick is a thumb-index pinch.
	ModeLeftClick
	// ModeRightClick is a thumb-middle pinch.
	ModeRightClick
	// ModeScroll is an open hand moving vertically.
	ModeScroll
	// ModeDrag is a thumb-index pinch held past its initial click.
	ModeDrag
)

var modeNames = [...]string{
	ModeCursor:     "CURSOR",
	ModeLeftClick:  "LEFT CLICK",
	ModeRightClick: "RIGHT CLICK",
	ModeScroll:     "SCROLL",
	ModeDrag:       "DRAG",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ActionKind identifies an OS mouse action requested by the classifier.
type ActionKind int

const (
	ActionLeftClick ActionKind = iota + 1
	ActionRightClick
	ActionScroll
)

func (k ActionKind) String() string {
	switch k {
	case ActionLeftClick:
		return "left_click"
	case ActionRightClick:
		return "right_click"
	case ActionScroll:
		return "scroll"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one directive for the injection layer. Amount is only set for
// scrolls: positive scrolls up, negative scrolls down.
type Action struct {
	Kind   ActionKind
	Amount int
}
