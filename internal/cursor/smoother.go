// Package cursor damps raw screen targets into a steady cursor trajectory.
package cursor

// DefaultFactor is the smoothing divisor used when none is configured.
const DefaultFactor = 7

// Position is a screen-space cursor coordinate.
type Position struct {
	X, Y float64
}

// Smoother applies an exponential moving average to cursor targets.
// Each step covers 1/Factor of the remaining distance to the target.
// The zero value is not usable; call NewSmoother.
type Smoother struct {
	factor float64
	prev   Position
}

// NewSmoother returns a Smoother starting at (0,0). Factors below 1 make the
// cursor overshoot; values <= 0 fall back to DefaultFactor.
func NewSmoother(factor float64) *Smoother {
	if factor <= 0 {
		factor = DefaultFactor
	}
	return &Smoother{factor: factor}
}

// Step moves the smoothed position toward target and returns it.
func (s *Smoother) Step(target Position) Position {
	s.prev = Position{
		X: s.prev.X + (target.X-s.prev.X)/s.factor,
		Y: s.prev.Y + (target.Y-s.prev.Y)/s.factor,
	}
	return s.prev
}

// Position returns the last smoothed position.
func (s *Smoother) Position() Position {
	return s.prev
}

// Factor returns the smoothing divisor.
func (s *Smoother) Factor() float64 {
	return s.factor
}
