package render

import (
	"image"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// Scripted is a headless Renderer. It records every scene, replays a fixed
// sequence of key presses and optionally draws onto the frames.
type Scripted struct {
	mu        sync.Mutex
	keys      []int
	scenes    []Scene
	hands     int
	presented int
	closed    bool
	draw      bool
}

// NewScripted returns a renderer that reports keys on successive PollKey
// calls and NoKey once they run out.
func NewScripted(keys ...int) *Scripted {
	return &Scripted{keys: keys}
}

// Headless returns a renderer that draws overlays but never shows them and
// never reports a key.
func Headless() *Scripted {
	return &Scripted{draw: true}
}

func (r *Scripted) DrawHand(frame *gocv.Mat, points []image.Point) {
	r.mu.Lock()
	r.hands++
	draw := r.draw
	r.mu.Unlock()

	if draw {
		DrawSkeleton(frame, points)
	}
}

func (r *Scripted) DrawOverlays(frame *gocv.Mat, s Scene) {
	r.mu.Lock()
	r.scenes = append(r.scenes, s)
	draw := r.draw
	r.mu.Unlock()

	if draw {
		DrawScene(frame, s)
	}
}

func (r *Scripted) Present(frame *gocv.Mat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presented++
}

func (r *Scripted) PollKey(time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.keys) == 0 {
		return NoKey
	}
	k := r.keys[0]
	r.keys = r.keys[1:]
	return k
}

func (r *Scripted) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Scenes returns a copy of the recorded scenes.
func (r *Scripted) Scenes() []Scene {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Scene(nil), r.scenes...)
}

// Hands returns how many skeletons were drawn.
func (r *Scripted) Hands() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hands
}

// Presented returns how many frames were presented.
func (r *Scripted) Presented() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presented
}

// Closed reports whether Close was called.
func (r *Scripted) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
