package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantFPS int
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantFPS: 60,
		},
		{
			name:    "zero rate falls back to default",
			opts:    Options{DeviceID: 1},
			wantFPS: 60,
		},
		{
			name:    "explicit rate",
			opts:    Options{DeviceID: 2, Width: 640, Height: 480, FPS: 30},
			wantFPS: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.opts)

			if cam == nil {
				t.Fatal("NewCamera returned nil")
			}

			if got := cam.FPS(); got != tt.wantFPS {
				t.Errorf("FPS() = %d, want %d", got, tt.wantFPS)
			}

			// Camera should not be running initially
			if cam.IsOpen() {
				t.Error("camera should not be running initially")
			}
		})
	}
}

func TestNewCamera_DefaultSize(t *testing.T) {
	cam := NewCamera(Options{Width: 0, Height: 480}).(*cameraImpl)

	if cam.opts.Width != DefaultWidth || cam.opts.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", cam.opts.Width, cam.opts.Height, DefaultWidth, DefaultHeight)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 1280 || opts.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", opts.Width, opts.Height)
	}
	if opts.FPS != 60 {
		t.Errorf("FPS = %d, want 60", opts.FPS)
	}
	if !opts.Mirror {
		t.Error("frames should be mirrored by default")
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(DefaultOptions())

	tests := []struct {
		name    string
		fps     int
		wantFPS int
	}{
		{
			name:    "set to 10",
			fps:     10,
			wantFPS: 10,
		},
		{
			name:    "set to 30",
			fps:     30,
			wantFPS: 30,
		},
		{
			name:    "set to 0 should keep previous",
			fps:     0,
			wantFPS: 30,
		},
		{
			name:    "set to negative should keep previous",
			fps:     -5,
			wantFPS: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.SetFPS(tt.fps)

			if got := cam.FPS(); got != tt.wantFPS {
				t.Errorf("FPS() = %d, want %d", got, tt.wantFPS)
			}
		})
	}
}

func TestCamera_OpenClose_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cam := NewCamera(DefaultOptions())

	err := cam.Open()
	if err != nil {
		t.Skipf("skipping test - camera not available: %v", err)
	}

	if !cam.IsOpen() {
		t.Error("IsOpen() should return true after Open()")
	}

	mat, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else {
		if mat.Empty() {
			t.Error("ReadFrame() returned empty mat")
		} else if mat.Cols() != DefaultWidth || mat.Rows() != DefaultHeight {
			t.Logf("Frame dimensions: %dx%d (camera may not support %dx%d)", mat.Cols(), mat.Rows(), DefaultWidth, DefaultHeight)
		}
		mat.Close()
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	if cam.IsOpen() {
		t.Error("IsOpen() should return false after Close()")
	}
}

func TestCamera_ReadFrame_NotOpened(t *testing.T) {
	cam := NewCamera(DefaultOptions())

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_Close_NotOpened(t *testing.T) {
	cam := NewCamera(DefaultOptions())

	if err := cam.Close(); err != nil {
		t.Errorf("Close() on not opened camera should return nil, got: %v", err)
	}
}

func TestMirror(t *testing.T) {
	m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 4, 8, gocv.MatTypeCV8UC1)
	defer m.Close()
	m.SetUCharAt(1, 0, 200)

	Mirror(&m)

	if got := m.GetUCharAt(1, 7); got != 200 {
		t.Errorf("mirrored pixel = %d, want 200", got)
	}
	if got := m.GetUCharAt(1, 0); got != 0 {
		t.Errorf("original pixel = %d, want 0", got)
	}
}
