// Package metrics tracks the frame rate of the processing loop.
package metrics

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DefaultWindow is the number of frame intervals averaged by FPS.
const DefaultWindow = 30

// FPS is a rolling frames-per-second estimate over the last N intervals.
type FPS struct {
	mu      sync.Mutex
	window  int
	samples []float64
	last    time.Time
}

// NewFPS returns an estimator averaging over window intervals.
// A non-positive window falls back to DefaultWindow.
func NewFPS(window int) *FPS {
	if window <= 0 {
		window = DefaultWindow
	}
	return &FPS{window: window, samples: make([]float64, 0, window)}
}

// Tick records a frame completed at now and returns the current estimate.
// The first tick only sets the reference time and reports zero.
func (f *FPS) Tick(now time.Time) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.last.IsZero() {
		if dt := now.Sub(f.last).Seconds(); dt > 0 {
			if len(f.samples) == f.window {
				copy(f.samples, f.samples[1:])
				f.samples = f.samples[:f.window-1]
			}
			f.samples = append(f.samples, 1/dt)
		}
	}
	f.last = now
	return f.value()
}

// Value returns the current estimate without recording a frame.
func (f *FPS) Value() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value()
}

func (f *FPS) value() float64 {
	if len(f.samples) == 0 {
		return 0
	}
	return stat.Mean(f.samples, nil)
}

// Samples returns how many intervals are currently averaged.
func (f *FPS) Samples() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.samples)
}
