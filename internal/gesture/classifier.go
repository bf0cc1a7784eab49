package gesture

import (
	"image"
	"time"

	"github.com/ayusman/handmouse/internal/detector"
	"github.com/ayusman/handmouse/internal/geometry"
)

// ScrollDivisor scales vertical pixel movement down to scroll wheel units.
const ScrollDivisor = 10

// Thresholds tune the gesture rules. Distances are in frame pixels, so the
// behavior depends on the capture resolution.
type Thresholds struct {
	// Click is the maximum thumb-to-fingertip distance of a pinch.
	Click float64
	// Scroll is the vertical movement needed before a scroll fires.
	Scroll int
	// Cooldown is the minimum time between two triggered clicks.
	Cooldown time.Duration
}

// DefaultThresholds returns the thresholds tuned for a 1280x720 capture.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Click:    40,
		Scroll:   30,
		Cooldown: 300 * time.Millisecond,
	}
}

// Input is one frame of hand geometry in frame pixels.
type Input struct {
	Thumb    image.Point
	Index    image.Point
	Middle   image.Point
	Extended int
	Now      time.Time
}

// NewInput extracts the classifier input from a detected hand in a
// width x height frame.
func NewInput(hand *detector.HandLandmarks, width, height int, now time.Time) Input {
	return Input{
		Thumb:    geometry.Denormalize(hand.Points[detector.ThumbTip], width, height),
		Index:    geometry.Denormalize(hand.Points[detector.IndexTip], width, height),
		Middle:   geometry.Denormalize(hand.Points[detector.MiddleTip], width, height),
		Extended: geometry.CountExtendedFingers(hand, width, height),
		Now:      now,
	}
}

// Decision is the classifier output for one frame.
type Decision struct {
	Mode    Mode
	Actions []Action
	// Drag reports whether a drag is active after this frame.
	Drag bool
	// Rule names the rule that selected Mode.
	Rule string
}

// rule is one entry of the priority chain. The first rule whose match
// returns true decides the frame; later rules are not consulted.
type rule struct {
	name  string
	match func(in Input) bool
	apply func(s *State, in Input) Decision
}

// Classifier maps hand geometry and the carried State to a gesture mode and
// the mouse actions it triggers.
type Classifier struct {
	th    Thresholds
	rules []rule
}

// NewClassifier builds a classifier with the rule order
// left pinch, right pinch, open hand, cursor.
func NewClassifier(th Thresholds) *Classifier {
	c := &Classifier{th: th}
	c.rules = []rule{
		{name: "left-pinch", match: c.isLeftPinch, apply: c.leftPinch},
		{name: "right-pinch", match: c.isRightPinch, apply: c.rightPinch},
		{name: "open-hand", match: isOpenHand, apply: c.scroll},
		{name: "cursor", match: func(Input) bool { return true }, apply: cursor},
	}
	return c
}

// Thresholds returns the classifier's thresholds.
func (c *Classifier) Thresholds() Thresholds {
	return c.th
}

// Classify evaluates the rules in priority order against in, updates s and
// returns the decision. A drag only survives consecutive pinch frames and the
// scroll anchor only survives consecutive scroll frames.
func (c *Classifier) Classify(s *State, in Input) Decision {
	var d Decision
	for _, r := range c.rules {
		if r.match(in) {
			d = r.apply(s, in)
			d.Rule = r.name
			break
		}
	}

	if d.Mode != ModeLeftClick && d.Mode != ModeDrag {
		s.DragActive = false
	}
	if d.Mode != ModeScroll {
		s.clearAnchor()
	}
	d.Drag = s.DragActive
	return d
}

func (c *Classifier) isLeftPinch(in Input) bool {
	return geometry.Distance(in.Thumb, in.Index) < c.th.Click
}

func (c *Classifier) isRightPinch(in Input) bool {
	return geometry.Distance(in.Thumb, in.Middle) < c.th.Click
}

func isOpenHand(in Input) bool {
	return in.Extended == 5
}

func (c *Classifier) cooledDown(s *State, now time.Time) bool {
	return now.Sub(s.LastClick) > c.th.Cooldown
}

// leftPinch clicks once when the pinch starts and holds the drag while the
// pinch persists.
func (c *Classifier) leftPinch(s *State, in Input) Decision {
	d := Decision{Mode: ModeLeftClick}
	if s.DragActive {
		d.Mode = ModeDrag
	} else if c.cooledDown(s, in.Now) {
		d.Actions = append(d.Actions, Action{Kind: ActionLeftClick})
		s.LastClick = in.Now
	}
	s.DragActive = true
	return d
}

func (c *Classifier) rightPinch(s *State, in Input) Decision {
	d := Decision{Mode: ModeRightClick}
	if c.cooledDown(s, in.Now) {
		d.Actions = append(d.Actions, Action{Kind: ActionRightClick})
		s.LastClick = in.Now
	}
	return d
}

// scroll anchors on the first open-hand frame and then scrolls by the
// vertical movement since the anchor, re-anchoring after every scroll.
func (c *Classifier) scroll(s *State, in Input) Decision {
	d := Decision{Mode: ModeScroll}

	anchorY, ok := s.ScrollAnchor()
	if !ok {
		s.anchor(in.Index.Y)
		return d
	}

	delta := anchorY - in.Index.Y
	if abs(delta) > c.th.Scroll {
		d.Actions = append(d.Actions, Action{Kind: ActionScroll, Amount: delta / ScrollDivisor})
		s.anchor(in.Index.Y)
	}
	return d
}

func cursor(s *State, in Input) Decision {
	return Decision{Mode: ModeCursor}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
