package cursor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSmoother(t *testing.T) {
	s := NewSmoother(7)
	assert.Equal(t, 7.0, s.Factor())
	assert.Equal(t, Position{}, s.Position(), "starts at origin")

	assert.Equal(t, float64(DefaultFactor), NewSmoother(0).Factor())
	assert.Equal(t, float64(DefaultFactor), NewSmoother(-3).Factor())
}

func TestSmoother_StepCoversOneSeventh(t *testing.T) {
	s := NewSmoother(7)

	got := s.Step(Position{X: 700, Y: 350})
	assert.Equal(t, Position{X: 100, Y: 50}, got)

	prev := got
	target := Position{X: 700, Y: 350}
	got = s.Step(target)
	assert.Equal(t, prev.X+(target.X-prev.X)/7, got.X)
	assert.Equal(t, prev.Y+(target.Y-prev.Y)/7, got.Y)
	assert.Equal(t, got, s.Position())
}

func TestSmoother_Converges(t *testing.T) {
	s := NewSmoother(7)
	target := Position{X: 1920, Y: 1080}

	lastDist := math.Inf(1)
	for i := 0; i < 200; i++ {
		p := s.Step(target)
		dist := math.Hypot(target.X-p.X, target.Y-p.Y)
		assert.Less(t, dist, lastDist, "step %d should move closer", i)
		assert.LessOrEqual(t, p.X, target.X, "never overshoots")
		lastDist = dist
		if dist == 0 {
			break
		}
	}
	assert.InDelta(t, target.X, s.Position().X, 1e-6)
	assert.InDelta(t, target.Y, s.Position().Y, 1e-6)
}

func TestSmoother_FactorOneJumps(t *testing.T) {
	s := NewSmoother(1)
	assert.Equal(t, Position{X: 12, Y: 34}, s.Step(Position{X: 12, Y: 34}))
}
