// Planet Lab - an ImGui inspector for tuning cube planet generation.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeplanet/internal/config"
	"github.com/Faultbox/cubeplanet/internal/engine/camera"
	"github.com/Faultbox/cubeplanet/internal/engine/debug"
	"github.com/Faultbox/cubeplanet/internal/engine/framebuffer"
	"github.com/Faultbox/cubeplanet/internal/engine/lighting"
	"github.com/Faultbox/cubeplanet/internal/engine/picking"
	"github.com/Faultbox/cubeplanet/internal/engine/renderer"
	"github.com/Faultbox/cubeplanet/internal/engine/scene"
	"github.com/Faultbox/cubeplanet/internal/engine/ui"
	"github.com/Faultbox/cubeplanet/internal/logger"
	"github.com/Faultbox/cubeplanet/internal/regen"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

const title = "Planet Lab"

func main() {
	runtime.LockOSThread()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start planet lab", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
}

// App is the inspector state. The edited config is applied through a
// debounced Regenerator; the preview shows the last mesh that succeeded.
type App struct {
	cfg     *config.Config
	edit    planet.Config
	saved   planet.Config
	path    string // file the edit was loaded from or saved to
	backend *ui.Backend

	regen   *regen.Regenerator
	scene   *scene.Scene
	preview *framebuffer.Framebuffer
	orbit   *camera.OrbitCamera
	shots   *debug.ScreenshotCapture

	wireframe  bool
	liveUpdate bool
	lastMouse  [2]float32
	status     string
	statusTime time.Time
	pending    chan pathChoice
	hover      *picking.Hit

	log *zap.Logger
}

// NewApp opens the window and generates the first planet.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:        cfg,
		edit:       cfg.Planet.Clone(),
		saved:      cfg.Planet.Clone(),
		path:       config.ConfigPath(),
		liveUpdate: true,
		pending:    make(chan pathChoice, 1),
		wireframe:  cfg.Graphics.Wireframe,
		orbit:      camera.NewOrbitCamera(),
		shots:      debug.NewScreenshotCapture("screenshots", "planetlab"),
		log:        logger.Named("planetlab"),
	}

	var err error
	app.backend, err = ui.NewBackend(title, cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.ClearColor)
	if err != nil {
		return nil, err
	}

	l := cfg.Lighting
	app.scene, err = scene.New(lighting.NewLight(l.SunLongitude, l.SunLatitude, l.SunColor, l.AmbientColor, l.AmbientIntensity))
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	app.preview, err = framebuffer.New(previewWidth, previewHeight)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create preview: %w", err)
	}

	app.regen = regen.New(cfg.Regen.Debounce)
	first := app.regen.GenerateNow(app.edit)
	if first.Err != nil {
		app.Close()
		return nil, fmt.Errorf("initial planet: %w", first.Err)
	}
	app.apply(first, true)

	return app, nil
}

// Run blocks in the ImGui loop until the window closes.
func (app *App) Run() {
	app.log.Info("starting inspector loop")
	app.backend.Run(app.frame)
}

func (app *App) frame() {
	app.handlePending()
	app.handleShortcuts()

	if res, ok := app.regen.Poll(); ok {
		if res.Err != nil {
			app.setStatus("Rejected: %v", res.Err)
		} else {
			app.apply(res, false)
		}
	}

	app.renderPreview()

	pos, size := ui.Viewport()
	app.renderPanels(pos, size)
}

// apply shows a finished mesh. fit re-frames the orbit camera on it.
func (app *App) apply(res regen.Result, fit bool) {
	app.scene.SetMesh(res.Mesh, res.Config)
	if fit {
		b := res.Mesh.Bounds()
		app.orbit.FitToBounds(b.Min, b.Max, app.cfg.Graphics.FOV)
	}
	app.backend.SetWindowTitle(fmt.Sprintf("%s | %s | res %d | %d tris | %v",
		title, app.displayPath(), res.Config.Resolution, res.Mesh.TriangleCount(),
		res.Duration.Round(time.Millisecond)))
}

// changed queues a regeneration after an edit.
func (app *App) changed() {
	if app.liveUpdate {
		app.regen.Request(app.edit)
	}
}

func (app *App) renderPreview() {
	restore := app.preview.Bind()
	defer restore()

	renderer.SetupState()
	renderer.SetPolygonMode(app.wireframe)
	defer renderer.SetPolygonMode(false)

	app.preview.Clear(app.cfg.Graphics.ClearColor)
	proj := camera.Projection(app.cfg.Graphics.FOV, app.preview.Aspect())
	app.scene.Render(app.orbit.ViewMatrix(), proj)
}

func (app *App) screenshot() {
	w, h := app.preview.Size()
	path, err := app.shots.CaptureFromPixels(app.preview.ReadPixels(), int(w), int(h))
	if err != nil {
		app.log.Error("screenshot failed", zap.Error(err))
		app.setStatus("Screenshot failed: %v", err)
		return
	}
	app.log.Info("screenshot saved", zap.String("path", path))
	app.setStatus("Saved %s", path)
}

func (app *App) setStatus(format string, args ...any) {
	app.status = fmt.Sprintf(format, args...)
	app.statusTime = time.Now()
}

func (app *App) displayPath() string {
	if app.path == "" {
		return "untitled"
	}
	return app.path
}

// Close releases GPU resources and stops the generator.
func (app *App) Close() {
	if app.regen != nil {
		app.regen.Close()
	}
	if app.preview != nil {
		app.preview.Destroy()
	}
	if app.scene != nil {
		app.scene.Destroy()
	}
}
