// Package mouse injects cursor movement, clicks and scrolls into the OS.
package mouse

import (
	"fmt"
	"sync"
)

// Sink receives mouse actions. Calls are fire-and-forget: failures are the
// sink's own concern and never reach the caller.
type Sink interface {
	MoveTo(x, y int)
	ClickLeft()
	ClickRight()
	Scroll(amount int)
}

// Event is one recorded call on a Recorder.
type Event struct {
	Kind   string
	X, Y   int
	Amount int
}

func (e Event) String() string {
	switch e.Kind {
	case "move":
		return fmt.Sprintf("move(%d,%d)", e.X, e.Y)
	case "scroll":
		return fmt.Sprintf("scroll(%d)", e.Amount)
	default:
		return e.Kind
	}
}

// Recorder is a Sink that records every call. It is used by tests and by
// dry runs that must not touch the real pointer.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// MoveTo records a cursor move.
func (r *Recorder) MoveTo(x, y int) { r.record(Event{Kind: "move", X: x, Y: y}) }

// ClickLeft records a left click.
func (r *Recorder) ClickLeft() { r.record(Event{Kind: "left_click"}) }

// ClickRight records a right click.
func (r *Recorder) ClickRight() { r.record(Event{Kind: "right_click"}) }

// Scroll records a scroll.
func (r *Recorder) Scroll(amount int) { r.record(Event{Kind: "scroll", Amount: amount}) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
