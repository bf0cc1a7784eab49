package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayusman/handmouse/internal/capture"
	"github.com/ayusman/handmouse/internal/config"
	"github.com/ayusman/handmouse/internal/detector"
	"github.com/ayusman/handmouse/internal/journal"
	"github.com/ayusman/handmouse/internal/logging"
	"github.com/ayusman/handmouse/internal/mouse"
	"github.com/ayusman/handmouse/internal/render"
	"github.com/ayusman/handmouse/internal/session"
	"github.com/ayusman/handmouse/internal/tray"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn or error")
		camera     = flag.Int("camera", -1, "camera device index")
		noWindow   = flag.Bool("no-window", false, "run without the preview window")
		useTray    = flag.Bool("tray", false, "show a system tray icon (implies -no-window)")
	)
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logging.Setup(os.Stderr, cfg.LogLevel)
	log := logging.Module("main")

	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("using default configuration")
	}
	if *camera >= 0 {
		cfg.CameraIndex = *camera
	}
	if *noWindow {
		cfg.ShowWindow = false
	}
	if *useTray {
		cfg.Tray = true
	}

	for _, w := range cfg.Validate() {
		log.Warn().Msg(w)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("gesture control stopped")
	}
}

// run wires the collaborators and blocks until the session ends.
func run(cfg *config.Config) error {
	log := logging.Module("main")

	det, err := detector.NewMediaPipeDetector(detector.Config{
		MaxHands:        cfg.MaxHands,
		MinConfidence:   cfg.MinDetectionConfidence,
		MinTrackingConf: cfg.MinTrackingConfidence,
		ModelComplexity: cfg.ModelComplexity,
		StaticImageMode: cfg.StaticImageMode,
	})
	if err != nil {
		return fmt.Errorf("hand detector: %w", err)
	}

	j, err := journal.Open()
	if err != nil {
		log.Warn().Err(err).Msg("session journal disabled")
		j = nil
	} else {
		defer j.Close()
	}

	// The OpenCV window and the tray icon both need the main thread.
	var rend render.Renderer = render.Null{}
	if cfg.ShowWindow && !cfg.Tray {
		rend = render.NewWindow(cfg.WindowTitle)
	}

	screenW, screenH := mouse.ScreenSize()
	sess := session.New(cfg, session.Deps{
		Camera: capture.NewCamera(capture.Options{
			DeviceID: cfg.CameraIndex,
			Width:    cfg.CameraWidth,
			Height:   cfg.CameraHeight,
			FPS:      cfg.TargetFPS,
			Mirror:   cfg.Mirror,
		}),
		Detector:     det,
		Sink:         mouse.NewRobotgoSink(cfg.InjectPause()),
		Renderer:     rend,
		Journal:      j,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.Tray {
		return sess.Run(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- sess.Run(runCtx)
		cancel()
	}()
	tray.New(sess.Controls()).Run(runCtx)
	return <-errCh
}
