package app

import (
	"context"
	"fmt"
	"time"

	"mirror-demo/internal/assets"
	"mirror-demo/internal/config"
	"mirror-demo/internal/graphics"
	"mirror-demo/internal/graphics/renderables/mirror"
	"mirror-demo/internal/graphics/renderables/model"
	"mirror-demo/internal/graphics/renderables/skybox"
	renderer "mirror-demo/internal/graphics/renderer"
	"mirror-demo/internal/logging"
	"mirror-demo/internal/meshdata"
	"mirror-demo/internal/metrics"
	"mirror-demo/internal/profiling"
	"mirror-demo/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// MirrorSize is the edge length of the mirror quad in world units
const MirrorSize = 2

// SlowFrame is the frame time above which the busiest phases are logged
const SlowFrame = 16 * time.Millisecond

// Window is the part of a GLFW window the loop drives
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	GetFramebufferSize() (width, height int)
}

// FrameRenderer draws one animation frame
type FrameRenderer interface {
	Render(f *scene.Frame)
	Dispose()
}

type App struct {
	window     Window
	pollEvents func()
	renderer   FrameRenderer
	driver     *scene.Driver
	recorder   *metrics.Recorder
	fpsLimiter *FPSLimiter
	logger     *zap.Logger

	cleanup []func()
}

// New loads every asset, creates the GPU resources and starts the animation clock.
// The window's GL context must be current. Nothing is drawn until every image has
// been decoded and every program has linked.
func New(ctx context.Context, window *glfw.Window, s config.Settings, rec *metrics.Recorder) (*App, error) {
	logger, ctx := logging.SubFrom(ctx, "app")

	manifest := assets.DefaultManifest(s.ImagesDir())
	manifest.MaxTextureSize = graphics.MaxTextureSize()
	bundle, err := assets.Load(ctx, manifest)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	mesh, err := meshdata.LoadGLTF(ctx, s.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	logger.Info("Model loaded",
		zap.String("path", s.ModelPath),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", len(mesh.Indices)/3))

	width, height := window.GetFramebufferSize()
	surface := graphics.NewGLSurface(width, height)

	rw, rh := ReflectionSize(width, height, config.GetReflectionScale())
	reflection, err := graphics.NewRenderTarget(rw, rh)
	if err != nil {
		return nil, fmt.Errorf("reflection target: %w", err)
	}
	logger.Debug("Reflection target created", zap.Int("width", rw), zap.Int("height", rh))

	r, err := renderer.NewRenderer(surface, reflection,
		skybox.NewSkybox(s.ShadersDir(), bundle.Cubemap),
		model.NewModel(s.ShadersDir(), mesh, bundle.ModelTexture),
		mirror.NewMirror(s.ShadersDir(), meshdata.Plane(MirrorSize), bundle.Distortion, reflection),
	)
	if err != nil {
		reflection.Delete()
		return nil, err
	}

	a := newApp(window, glfw.PollEvents, r, scene.NewDriver(time.Now), rec, logger)
	a.cleanup = append(a.cleanup, reflection.Delete)
	a.driver.Start()
	logger.Info("Animation started", zap.Int("width", width), zap.Int("height", height))
	return a, nil
}

func newApp(window Window, poll func(), r FrameRenderer, driver *scene.Driver, rec *metrics.Recorder, logger *zap.Logger) *App {
	return &App{
		window:     window,
		pollEvents: poll,
		renderer:   r,
		driver:     driver,
		recorder:   rec,
		fpsLimiter: NewFPSLimiter(),
		logger:     logger,
	}
}

// ReflectionSize scales the framebuffer size for the reflection target, never below 1x1
func ReflectionSize(width, height int, scale float32) (int, int) {
	return max(int(float32(width)*scale), 1), max(int(float32(height)*scale), 1)
}

// Run renders frames until the window closes or ctx is canceled
func (a *App) Run(ctx context.Context) error {
	for !a.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	start := time.Now()

	width, height := a.window.GetFramebufferSize()
	if width == 0 || height == 0 {
		// minimized
		a.pollEvents()
		a.fpsLimiter.Wait()
		return nil
	}

	frame, err := a.driver.Tick(float32(width) / float32(height))
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	a.renderer.Render(&frame)

	func() {
		defer profiling.Track("app.swap")()
		a.window.SwapBuffers()
	}()
	a.pollEvents()

	elapsed := time.Since(start)
	if a.recorder != nil {
		a.recorder.Observe(&frame, metrics.Timings{
			Frame:  elapsed,
			Render: profiling.SumWithPrefix(metrics.PassPrefix),
			Passes: profiling.Snapshot(),
		})
	}
	if elapsed > SlowFrame {
		a.logger.Warn("Slow frame", zap.Duration("duration", elapsed), zap.String("top", profiling.TopN(5)))
	}

	a.fpsLimiter.Wait()
	return nil
}

// Close releases the renderer and the resources it borrows
func (a *App) Close() {
	a.renderer.Dispose()
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}
