package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It replays a script of per-frame results; once the script is exhausted
// the last configured hands are returned for every frame.
type MockDetector struct {
	mu     sync.Mutex
	hands  []HandLandmarks
	script [][]HandLandmarks
	err    error
	calls  int
	closed bool
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = hands
}

// SetScript queues per-frame results. A nil entry means no hand in that frame.
func (m *MockDetector) SetScript(frames ...[]HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = frames
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Detect returns the next scripted result, the configured hands, or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.script) > 0 {
		next := m.script[0]
		m.script = m.script[1:]
		return next, nil
	}
	return m.hands, nil
}

// Close marks the detector closed.
func (m *MockDetector) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockDetector) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Fixture poses below are laid out for a mirrored 1280x720 frame. Pixel
// distances quoted in comments assume that resolution.

// OpenPalmLandmarks returns an open hand with all five fingers extended.
// The thumb tip lies left of its IP joint; every other tip is above its PIP.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := HandLandmarks{Handedness: "Right", Score: 0.95}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.40, Y: 0.70}
	landmarks.Points[ThumbIP] = Point3D{X: 0.36, Y: 0.65}
	landmarks.Points[ThumbTip] = Point3D{X: 0.32, Y: 0.60}

	landmarks.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.55}
	landmarks.Points[IndexPIP] = Point3D{X: 0.44, Y: 0.45}
	landmarks.Points[IndexDIP] = Point3D{X: 0.44, Y: 0.38}
	landmarks.Points[IndexTip] = Point3D{X: 0.44, Y: 0.32}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.54}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.43}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.35}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28}

	landmarks.Points[RingMCP] = Point3D{X: 0.55, Y: 0.55}
	landmarks.Points[RingPIP] = Point3D{X: 0.56, Y: 0.45}
	landmarks.Points[RingDIP] = Point3D{X: 0.56, Y: 0.38}
	landmarks.Points[RingTip] = Point3D{X: 0.57, Y: 0.33}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.60, Y: 0.58}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.62, Y: 0.50}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.63, Y: 0.45}
	landmarks.Points[PinkyTip] = Point3D{X: 0.64, Y: 0.40}

	return landmarks
}

// FistLandmarks returns a closed hand: no finger extended and the thumb tip
// about 58px from the index tip, outside the pinch threshold.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{Handedness: "Right", Score: 0.95}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.70}
	landmarks.Points[ThumbIP] = Point3D{X: 0.40, Y: 0.66}
	landmarks.Points[ThumbTip] = Point3D{X: 0.43, Y: 0.64}

	landmarks.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.55}
	landmarks.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.50}
	landmarks.Points[IndexDIP] = Point3D{X: 0.46, Y: 0.56}
	landmarks.Points[IndexTip] = Point3D{X: 0.47, Y: 0.60}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.54}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.49}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.51, Y: 0.55}
	landmarks.Points[MiddleTip] = Point3D{X: 0.52, Y: 0.59}

	landmarks.Points[RingMCP] = Point3D{X: 0.55, Y: 0.55}
	landmarks.Points[RingPIP] = Point3D{X: 0.55, Y: 0.50}
	landmarks.Points[RingDIP] = Point3D{X: 0.56, Y: 0.56}
	landmarks.Points[RingTip] = Point3D{X: 0.56, Y: 0.60}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.60, Y: 0.58}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.60, Y: 0.54}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.60, Y: 0.59}
	landmarks.Points[PinkyTip] = Point3D{X: 0.60, Y: 0.62}

	return landmarks
}

// PointingLandmarks returns a fist with only the index finger extended.
func PointingLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	landmarks.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.45}
	landmarks.Points[IndexDIP] = Point3D{X: 0.45, Y: 0.38}
	landmarks.Points[IndexTip] = Point3D{X: 0.45, Y: 0.32}
	return landmarks
}

// LeftPinchLandmarks returns a fist with the index tip about 15px from the
// thumb tip and the middle tip well away from it.
func LeftPinchLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	landmarks.Points[IndexTip] = Point3D{X: 0.44, Y: 0.65}
	return landmarks
}

// RightPinchLandmarks returns a fist with the middle tip about 15px from the
// thumb tip while the index tip stays about 58px away.
func RightPinchLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	landmarks.Points[MiddleTip] = Point3D{X: 0.44, Y: 0.65}
	return landmarks
}

// PinchingOpenPalmLandmarks returns an open palm whose thumb tip touches the
// index tip, so it reads both as a left pinch and as five extended fingers.
func PinchingOpenPalmLandmarks() HandLandmarks {
	landmarks := OpenPalmLandmarks()
	landmarks.Points[ThumbIP] = Point3D{X: 0.46, Y: 0.45}
	landmarks.Points[ThumbTip] = Point3D{X: 0.43, Y: 0.33}
	return landmarks
}
