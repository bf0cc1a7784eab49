// Package session runs the per-frame loop that turns camera frames into
// mouse control.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"github.com/ayusman/handmouse/internal/capture"
	"github.com/ayusman/handmouse/internal/config"
	"github.com/ayusman/handmouse/internal/cursor"
	"github.com/ayusman/handmouse/internal/detector"
	"github.com/ayusman/handmouse/internal/geometry"
	"github.com/ayusman/handmouse/internal/gesture"
	"github.com/ayusman/handmouse/internal/journal"
	"github.com/ayusman/handmouse/internal/logging"
	"github.com/ayusman/handmouse/internal/metrics"
	"github.com/ayusman/handmouse/internal/mouse"
	"github.com/ayusman/handmouse/internal/render"
)

// keyPollWait is how long each frame waits for a key press.
const keyPollWait = time.Millisecond

// ErrPanic wraps a panic recovered from the frame loop.
var ErrPanic = errors.New("frame loop panicked")

// Deps are the collaborators a session drives.
type Deps struct {
	Camera   capture.Camera
	Detector detector.Detector
	Sink     mouse.Sink
	Renderer render.Renderer
	// Journal is optional.
	Journal *journal.Journal
	// Clock defaults to the wall clock.
	Clock Clock
	// Controls default to a fresh set.
	Controls *Controls

	ScreenWidth  int
	ScreenHeight int
}

// Result describes what one frame did.
type Result struct {
	Frame       int64
	HandVisible bool
	Decision    gesture.Decision
	// Cursor is the smoothed screen position after this frame.
	Cursor cursor.Position
	Thumb  image.Point
	Index  image.Point
	Middle image.Point
}

// Session owns the gesture state, the cursor smoother and the FPS estimate
// for one run. It is driven by a single goroutine.
type Session struct {
	cfg      *config.Config
	camera   capture.Camera
	detector detector.Detector
	sink     mouse.Sink
	renderer render.Renderer
	journal  *journal.Journal
	clock    Clock
	controls *Controls

	screenW, screenH int

	classifier *gesture.Classifier
	state      gesture.State
	smoother   *cursor.Smoother
	fps        *metrics.FPS

	quitKey, helpKey int

	frames   int64
	lastMode gesture.Mode
	log      zerolog.Logger
}

// New builds a session from cfg and deps.
func New(cfg *config.Config, deps Deps) *Session {
	if deps.Clock == nil {
		deps.Clock = RealClock{}
	}
	if deps.Controls == nil {
		deps.Controls = NewControls()
	}

	return &Session{
		cfg:      cfg,
		camera:   deps.Camera,
		detector: deps.Detector,
		sink:     deps.Sink,
		renderer: deps.Renderer,
		journal:  deps.Journal,
		clock:    deps.Clock,
		controls: deps.Controls,
		screenW:  deps.ScreenWidth,
		screenH:  deps.ScreenHeight,
		classifier: gesture.NewClassifier(gesture.Thresholds{
			Click:    cfg.ClickThreshold,
			Scroll:   cfg.ScrollThreshold,
			Cooldown: cfg.ClickCooldown(),
		}),
		smoother: cursor.NewSmoother(cfg.SmoothingFactor),
		fps:      metrics.NewFPS(cfg.FPSHistorySize),
		quitKey:  keyCode(cfg.QuitKey),
		helpKey:  keyCode(cfg.HelpKey),
		lastMode: gesture.ModeCursor,
		log:      logging.Module("session"),
	}
}

func keyCode(k string) int {
	if k == "" {
		return render.NoKey
	}
	return int(k[0])
}

// Controls returns the flags shared with outside controllers.
func (s *Session) Controls() *Controls {
	return s.controls
}

// State returns a copy of the gesture state.
func (s *Session) State() gesture.State {
	return s.state
}

// Frames returns the number of frames processed.
func (s *Session) Frames() int64 {
	return s.frames
}

// Run opens the camera and processes frames until the context is done, a quit
// is requested, the stream ends or reading a frame fails. Every resource is
// released before Run returns, also after a panic in the loop body.
func (s *Session) Run(ctx context.Context) (err error) {
	defer s.shutdown()
	if err := s.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	s.log.Info().
		Int("screen_width", s.screenW).
		Int("screen_height", s.screenH).
		Float64("smoothing", s.smoother.Factor()).
		Msg("session started")

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("frame loop panicked")
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("interrupted")
			return nil
		default:
		}
		if s.controls.QuitRequested() {
			s.log.Info().Msg("quit requested")
			return nil
		}

		if err := s.tick(); err != nil {
			if errors.Is(err, capture.ErrEndOfStream) {
				s.log.Info().Msg("end of stream")
				return nil
			}
			return err
		}
	}
}

// tick reads, processes, draws and presents one frame.
func (s *Session) tick() error {
	frame, err := s.camera.ReadFrame()
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()

	now := s.clock.Now()
	w, h := frame.Cols(), frame.Rows()

	hand := s.detect(frame)
	if hand != nil {
		s.renderer.DrawHand(frame, pixelPoints(hand, w, h))
	}

	res := s.Step(hand, w, h, now)

	s.renderer.DrawOverlays(frame, render.Scene{
		HandVisible: res.HandVisible,
		Thumb:       res.Thumb,
		Index:       res.Index,
		Middle:      res.Middle,
		Mode:        res.Decision.Mode,
		Drag:        res.Decision.Drag,
		FPS:         s.fps.Tick(now),
		ShowHelp:    s.controls.HelpVisible(),
		Paused:      s.controls.Paused(),
	})
	s.renderer.Present(frame)

	s.handleKey(s.renderer.PollKey(keyPollWait))
	return nil
}

// detect returns the tracked hand, or nil when there is none, detection
// failed or control is paused.
func (s *Session) detect(frame *gocv.Mat) *detector.HandLandmarks {
	if s.controls.Paused() {
		return nil
	}
	hands, err := s.detector.Detect(frame)
	if err != nil {
		s.log.Warn().Err(err).Int64("frame", s.frames+1).Msg("hand detection failed")
		return nil
	}
	if len(hands) == 0 {
		return nil
	}
	return &hands[0]
}

// Step runs geometry, classification, smoothing and injection for one frame
// of the given size. A nil hand is a frame without a hand: the mode is
// CURSOR, the cursor stays where it is and the drag and scroll anchor are
// dropped.
func (s *Session) Step(hand *detector.HandLandmarks, width, height int, now time.Time) Result {
	s.frames++
	res := Result{Frame: s.frames}
	dragging := s.state.DragActive
	defer func() {
		if dragging && !s.state.DragActive {
			s.log.Info().Int64("frame", s.frames).Msg("drag released")
		}
	}()

	if hand == nil {
		s.state.HandLost()
		res.Decision = gesture.Decision{Mode: gesture.ModeCursor, Rule: "no-hand"}
		res.Cursor = s.smoother.Position()
		s.noteMode(res.Decision.Mode, now)
		return res
	}

	in := gesture.NewInput(hand, width, height, now)
	d := s.classifier.Classify(&s.state, in)

	area := geometry.ControlArea(width, height, s.cfg.ControlAreaStart, s.cfg.ControlAreaEnd)
	tx, ty := geometry.MapToScreen(in.Index, area, s.screenW, s.screenH)
	pos := s.smoother.Step(cursor.Position{X: tx, Y: ty})

	x, y := int(pos.X), int(pos.Y)
	s.sink.MoveTo(x, y)
	for _, a := range d.Actions {
		s.emit(a, x, y, now)
	}
	s.noteMode(d.Mode, now)

	res.HandVisible = true
	res.Decision = d
	res.Cursor = pos
	res.Thumb, res.Index, res.Middle = in.Thumb, in.Index, in.Middle
	return res
}

func (s *Session) emit(a gesture.Action, x, y int, now time.Time) {
	switch a.Kind {
	case gesture.ActionLeftClick:
		s.sink.ClickLeft()
		s.log.Info().Int("x", x).Int("y", y).Msg("left click")
	case gesture.ActionRightClick:
		s.sink.ClickRight()
		s.log.Info().Int("x", x).Int("y", y).Msg("right click")
	case gesture.ActionScroll:
		s.sink.Scroll(a.Amount)
		s.log.Info().Int("amount", a.Amount).Msg("scroll")
	default:
		return
	}

	if s.journal != nil {
		if err := s.journal.RecordAction(s.frames, a, x, y, now); err != nil {
			s.log.Warn().Err(err).Msg("journal write failed")
		}
	}
}

func (s *Session) noteMode(m gesture.Mode, now time.Time) {
	s.controls.setMode(m)
	if m == s.lastMode {
		return
	}

	s.log.Debug().Stringer("from", s.lastMode).Stringer("to", m).Int64("frame", s.frames).Msg("mode changed")
	if s.journal != nil {
		if err := s.journal.RecordModeChange(s.frames, s.lastMode, m, now); err != nil {
			s.log.Warn().Err(err).Msg("journal write failed")
		}
	}
	s.lastMode = m
}

func (s *Session) handleKey(key int) {
	switch {
	case key == render.NoKey:
	case key == s.quitKey:
		s.controls.RequestQuit()
	case key == s.helpKey:
		on := s.controls.ToggleHelp()
		s.log.Info().Bool("visible", on).Msg("help overlay toggled")
	}
}

// shutdown releases every collaborator and logs the session summary.
func (s *Session) shutdown() {
	if err := s.renderer.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing renderer")
	}
	if err := s.detector.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing detector")
	}
	if err := s.camera.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing camera")
	}

	ev := s.log.Info().Int64("frames", s.frames).Float64("avg_fps", s.fps.Value())
	if s.journal != nil {
		now := s.clock.Now()
		if err := s.journal.End(now); err != nil {
			s.log.Warn().Err(err).Msg("journal write failed")
		}
		if sum, err := s.journal.Summarize(s.frames, now); err != nil {
			s.log.Warn().Err(err).Msg("journal summary failed")
		} else {
			ev = ev.
				Str("session_id", sum.SessionID).
				Int("left_clicks", sum.LeftClicks).
				Int("right_clicks", sum.RightClicks).
				Int("scrolls", sum.Scrolls).
				Int("mode_changes", sum.ModeChanges)
		}
	}
	ev.Msg("session ended")
}

func pixelPoints(hand *detector.HandLandmarks, width, height int) []image.Point {
	points := make([]image.Point, len(hand.Points))
	for i, p := range hand.Points {
		points[i] = geometry.Denormalize(p, width, height)
	}
	return points
}
