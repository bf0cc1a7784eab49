package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/handmouse/internal/detector"
	"github.com/ayusman/handmouse/internal/gesture"
)

// Overlay colors.
var (
	ColorGreen  = color.RGBA{R: 0, G: 255, B: 0}
	ColorRed    = color.RGBA{R: 255, G: 0, B: 0}
	ColorBlue   = color.RGBA{R: 0, G: 0, B: 255}
	ColorOrange = color.RGBA{R: 255, G: 165, B: 0}
	ColorYellow = color.RGBA{R: 255, G: 255, B: 0}
	ColorCyan   = color.RGBA{R: 0, G: 255, B: 255}
	ColorWhite  = color.RGBA{R: 255, G: 255, B: 255}
)

const (
	InfoPanelHeight = 120
	TipRadius       = 12
	MiddleTipRadius = 10

	fontLarge = 0.7
	fontSmall = 0.5
)

var helpLines = []string{
	"GESTURE CONTROLS:",
	"",
	"Move Cursor: Point with index finger",
	"Left Click: Pinch thumb + index finger",
	"Right Click: Pinch thumb + middle finger",
	"Drag & Drop: Hold left click pinch while moving",
	"Scroll: Extend all 5 fingers and move up/down",
	"",
	"Press 'H' to close help",
}

// DrawSkeleton draws the hand connections in red and the landmarks as small
// green dots. points must hold one entry per landmark.
func DrawSkeleton(frame *gocv.Mat, points []image.Point) {
	if len(points) < detector.NumLandmarks {
		return
	}
	for _, c := range detector.Connections {
		gocv.Line(frame, points[c[0]], points[c[1]], ColorRed, 2)
	}
	for _, p := range points {
		gocv.Circle(frame, p, 2, ColorGreen, 2)
	}
}

// DrawScene draws everything after the skeleton.
func DrawScene(frame *gocv.Mat, s Scene) {
	w, h := frame.Cols(), frame.Rows()

	if s.HandVisible {
		drawHandDetected(frame, w)
		drawPinchLine(frame, s)
		drawModeBanner(frame, s.Mode, w)
		drawFingertips(frame, s)
		if s.Drag {
			drawDragIndicator(frame, w, h)
		}
	}
	drawInfoPanel(frame, s, w)
	if s.ShowHelp {
		drawHelp(frame, w, h)
	}
}

// PinchColor returns the color of the thumb line for mode.
func PinchColor(m gesture.Mode) color.RGBA {
	switch m {
	case gesture.ModeLeftClick, gesture.ModeDrag:
		return ColorRed
	case gesture.ModeRightClick:
		return ColorBlue
	default:
		return ColorGreen
	}
}

func drawHandDetected(frame *gocv.Mat, w int) {
	gocv.PutText(frame, "Hand Detected", image.Pt(w-200, 30), gocv.FontHersheySimplex, fontLarge, ColorGreen, 2)
}

func drawPinchLine(frame *gocv.Mat, s Scene) {
	to, thickness := s.Index, 2
	switch s.Mode {
	case gesture.ModeLeftClick, gesture.ModeDrag:
		thickness = 3
	case gesture.ModeRightClick:
		to, thickness = s.Middle, 3
	}
	gocv.Line(frame, s.Thumb, to, PinchColor(s.Mode), thickness)
}

func drawModeBanner(frame *gocv.Mat, m gesture.Mode, w int) {
	var text string
	var c color.RGBA
	switch m {
	case gesture.ModeScroll:
		text, c = "SCROLLING", ColorYellow
	case gesture.ModeLeftClick, gesture.ModeDrag:
		text, c = "CLICKING", ColorRed
	default:
		return
	}
	gocv.PutText(frame, text, image.Pt(w/2-80, 50), gocv.FontHersheySimplex, 1, c, 2)
}

func drawFingertips(frame *gocv.Mat, s Scene) {
	gocv.Circle(frame, s.Index, TipRadius, ColorBlue, -1)
	gocv.Circle(frame, s.Middle, MiddleTipRadius, ColorOrange, -1)
	gocv.Circle(frame, s.Thumb, TipRadius, ColorGreen, -1)
}

func drawDragIndicator(frame *gocv.Mat, w, h int) {
	gocv.PutText(frame, "DRAGGING", image.Pt(w/2-80, h-50), gocv.FontHersheySimplex, 1, ColorOrange, 2)
}

func drawInfoPanel(frame *gocv.Mat, s Scene, w int) {
	shade(frame, image.Rect(0, 0, w, InfoPanelHeight), 0.6)

	gocv.PutText(frame, fmt.Sprintf("FPS: %d", int(s.FPS)), image.Pt(10, 30), gocv.FontHersheySimplex, fontLarge, ColorGreen, 2)

	modeColor := ColorOrange
	if s.Mode == gesture.ModeCursor {
		modeColor = ColorCyan
	}
	modeText := "Mode: " + s.Mode.String()
	if s.Paused {
		modeText += " (paused)"
	}
	gocv.PutText(frame, modeText, image.Pt(10, 60), gocv.FontHersheySimplex, fontLarge, modeColor, 2)
	gocv.PutText(frame, "Press 'Q' to quit | 'H' for help", image.Pt(10, 90), gocv.FontHersheySimplex, fontSmall, ColorWhite, 1)
}

func drawHelp(frame *gocv.Mat, w, h int) {
	shade(frame, image.Rect(0, 0, w, h), 0.8)

	for i, line := range helpLines {
		if line == "" {
			continue
		}
		c, thickness := ColorWhite, 1
		if line[len(line)-1] == ':' {
			c, thickness = ColorCyan, 2
		}
		gocv.PutText(frame, line, image.Pt(50, 80+i*40), gocv.FontHersheySimplex, fontLarge, c, thickness)
	}
}

// shade darkens r by blending a black fill with weight alpha.
func shade(frame *gocv.Mat, r image.Rectangle, alpha float64) {
	r = r.Intersect(image.Rect(0, 0, frame.Cols(), frame.Rows()))
	if r.Empty() {
		return
	}

	region := frame.Region(r)
	defer region.Close()

	black := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), region.Rows(), region.Cols(), region.Type())
	defer black.Close()

	gocv.AddWeighted(black, alpha, region, 1-alpha, 0, &region)
}
