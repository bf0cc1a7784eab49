package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayusman/handmouse/internal/detector"
)

const (
	frameW = 1280
	frameH = 720
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(image.Pt(0, 0), image.Pt(3, 4)))

	points := []image.Point{{0, 0}, {17, -4}, {640, 360}, {-20, 99}}
	for _, p := range points {
		assert.Zero(t, Distance(p, p), "distance of %v to itself", p)
	}

	for i, a := range points {
		for _, b := range points[i:] {
			assert.Equal(t, Distance(a, b), Distance(b, a), "symmetry %v %v", a, b)
		}
	}
}

func TestDenormalize(t *testing.T) {
	tests := []struct {
		name string
		in   detector.Point3D
		want image.Point
	}{
		{"origin", detector.Point3D{}, image.Pt(0, 0)},
		{"center", detector.Point3D{X: 0.5, Y: 0.5}, image.Pt(640, 360)},
		{"truncates", detector.Point3D{X: 0.43, Y: 0.64}, image.Pt(550, 460)},
		{"far corner", detector.Point3D{X: 1, Y: 1, Z: -0.3}, image.Pt(1280, 720)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Denormalize(tt.in, frameW, frameH))
		})
	}
}

func TestCountExtendedFingers(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want int
	}{
		{"open palm", detector.OpenPalmLandmarks(), 5},
		{"fist", detector.FistLandmarks(), 0},
		{"pointing", detector.PointingLandmarks(), 1},
		{"pinching open palm", detector.PinchingOpenPalmLandmarks(), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := tt.hand
			assert.Equal(t, tt.want, CountExtendedFingers(&hand, frameW, frameH))
		})
	}
}

func TestCountExtendedFingers_PerFingerIndependence(t *testing.T) {
	type finger struct {
		name     string
		tip, ref int
	}
	fingers := []finger{
		{"thumb", detector.ThumbTip, detector.ThumbIP},
		{"index", detector.IndexTip, detector.IndexPIP},
		{"middle", detector.MiddleTip, detector.MiddlePIP},
		{"ring", detector.RingTip, detector.RingPIP},
		{"pinky", detector.PinkyTip, detector.PinkyPIP},
	}

	for _, f := range fingers {
		t.Run("curl "+f.name, func(t *testing.T) {
			hand := detector.OpenPalmLandmarks()
			ref := hand.Points[f.ref]
			if f.tip == detector.ThumbTip {
				hand.Points[f.tip].X = ref.X + 0.05
			} else {
				hand.Points[f.tip].Y = ref.Y + 0.05
			}
			assert.Equal(t, 4, CountExtendedFingers(&hand, frameW, frameH))
		})

		t.Run("extend "+f.name, func(t *testing.T) {
			hand := detector.FistLandmarks()
			ref := hand.Points[f.ref]
			if f.tip == detector.ThumbTip {
				hand.Points[f.tip].X = ref.X - 0.05
			} else {
				hand.Points[f.tip].Y = ref.Y - 0.05
			}
			assert.Equal(t, 1, CountExtendedFingers(&hand, frameW, frameH))
		})
	}
}

func TestControlArea(t *testing.T) {
	area := ControlArea(frameW, frameH, 0.2, 0.8)
	assert.Equal(t, image.Rect(256, 144, 1024, 576), area)

	full := ControlArea(frameW, frameH, 0, 1)
	assert.Equal(t, image.Rect(0, 0, frameW, frameH), full)
}

func TestMapToScreen(t *testing.T) {
	area := ControlArea(frameW, frameH, 0.2, 0.8)

	tests := []struct {
		name         string
		in           image.Point
		wantX, wantY float64
	}{
		{"area top-left maps to origin", image.Pt(256, 144), 0, 0},
		{"area bottom-right maps to screen size", image.Pt(1024, 576), 1920, 1080},
		{"area center maps to screen center", image.Pt(640, 360), 960, 540},
		{"left of area clamps", image.Pt(10, 360), 0, 540},
		{"below area clamps", image.Pt(640, 700), 960, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := MapToScreen(tt.in, area, 1920, 1080)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestMapToScreen_DegenerateArea(t *testing.T) {
	x, y := MapToScreen(image.Pt(5, 5), image.Rect(10, 10, 10, 10), 1920, 1080)
	assert.Zero(t, x)
	assert.Zero(t, y)
}
