// Package geometry turns normalized hand landmarks into frame and screen
// coordinates and measures the finger relations the gesture rules use.
package geometry

import (
	"image"
	"math"

	"github.com/ayusman/handmouse/internal/detector"
)

// Distance returns the Euclidean distance between two pixel positions.
func Distance(p1, p2 image.Point) float64 {
	return math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y))
}

// Denormalize converts a normalized landmark into a pixel position in a
// width x height frame. Fractions are truncated.
func Denormalize(p detector.Point3D, width, height int) image.Point {
	return image.Point{
		X: int(p.X * float64(width)),
		Y: int(p.Y * float64(height)),
	}
}

// CountExtendedFingers returns how many of the five fingers are extended.
//
// The thumb counts when its tip is left of its IP joint; in the mirrored
// frame the thumb moves sideways. The other fingers count when the tip is
// above (smaller y than) the PIP joint.
func CountExtendedFingers(hand *detector.HandLandmarks, width, height int) int {
	count := 0

	thumbTip := Denormalize(hand.Points[detector.ThumbTip], width, height)
	thumbIP := Denormalize(hand.Points[detector.ThumbIP], width, height)
	if thumbTip.X < thumbIP.X {
		count++
	}

	for i, tipIdx := range detector.FingerTips {
		tip := Denormalize(hand.Points[tipIdx], width, height)
		pip := Denormalize(hand.Points[detector.FingerPIPs[i]], width, height)
		if tip.Y < pip.Y {
			count++
		}
	}

	return count
}

// ControlArea returns the inset rectangle of a width x height frame spanning
// start..end of each axis. It is the input range mapped onto the screen.
func ControlArea(width, height int, start, end float64) image.Rectangle {
	return image.Rect(
		int(float64(width)*start),
		int(float64(height)*start),
		int(float64(width)*end),
		int(float64(height)*end),
	)
}

// MapToScreen maps a frame pixel inside area linearly onto a screenW x
// screenH screen. Positions outside the area are clamped to the screen edges.
func MapToScreen(p image.Point, area image.Rectangle, screenW, screenH int) (float64, float64) {
	return interp(float64(p.X), float64(area.Min.X), float64(area.Max.X), float64(screenW)),
		interp(float64(p.Y), float64(area.Min.Y), float64(area.Max.Y), float64(screenH))
}

// interp maps v from [lo, hi] onto [0, out], clamping at both ends.
func interp(v, lo, hi, out float64) float64 {
	if hi <= lo {
		return 0
	}
	if v <= lo {
		return 0
	}
	if v >= hi {
		return out
	}
	return (v - lo) / (hi - lo) * out
}
