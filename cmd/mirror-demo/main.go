package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"mirror-demo/internal/app"
	"mirror-demo/internal/config"
	"mirror-demo/internal/graphics"
	"mirror-demo/internal/logging"
	"mirror-demo/internal/metrics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	settings, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	settings.Apply()

	logger := logging.Init(settings.Debug)
	ctx, cancel := context.WithCancel(logging.Context(context.Background(), logger))
	// Signals run the hook on closer's goroutine; GL teardown stays on the main thread
	done := make(chan struct{})
	closer.Bind(func() {
		shutdownHook(cancel, done, shutdownTimeout)()
		logging.Sync()
	})

	recorder := metrics.NewRecorder()
	recorder.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if settings.MetricsAddr != "" {
		router := mux.NewRouter()
		recorder.InitRoutes(router)
		go func() {
			if err := metrics.Serve(ctx, settings.MetricsAddr, router); err != nil {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	err = run(ctx, settings, recorder)
	close(done)
	if err != nil {
		logger.Error("Demo failed", zap.Error(err))
		closer.Exit(1)
	}
	closer.Close()
}

func run(ctx context.Context, s config.Settings, recorder *metrics.Recorder) error {
	logger := logging.From(ctx)

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(s.WindowWidth, s.WindowHeight)
	if err != nil {
		return err
	}
	defer window.Destroy()

	logger.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("maxTextureSize", graphics.MaxTextureSize()))

	a, err := app.New(ctx, window, s, recorder)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
