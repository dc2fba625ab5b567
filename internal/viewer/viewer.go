// Package viewer runs the free-flying planet viewer: an SDL2 window, a fly
// camera and live regeneration driven by keyboard edits.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeplanet/internal/config"
	"github.com/Faultbox/cubeplanet/internal/engine/camera"
	"github.com/Faultbox/cubeplanet/internal/engine/debug"
	"github.com/Faultbox/cubeplanet/internal/engine/input"
	"github.com/Faultbox/cubeplanet/internal/engine/lighting"
	"github.com/Faultbox/cubeplanet/internal/engine/renderer"
	"github.com/Faultbox/cubeplanet/internal/engine/scene"
	"github.com/Faultbox/cubeplanet/internal/engine/window"
	"github.com/Faultbox/cubeplanet/internal/logger"
	"github.com/Faultbox/cubeplanet/internal/regen"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// Title is the window title prefix.
const Title = "Cube Planet"

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	planet  planet.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	camera   *camera.FlyCamera
	regen    *regen.Regenerator
	shots    *debug.ScreenshotCapture

	mouseGrabbed bool
	log          *zap.Logger
}

// New opens the window, sets up GL and generates the first planet.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:    cfg,
		planet: cfg.Planet.Clone(),
		input:  input.New(),
		shots:  debug.NewScreenshotCapture("screenshots", "planet"),
		log:    logger.Named("viewer"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
		Wireframe:  cfg.Graphics.Wireframe,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	l := cfg.Lighting
	v.scene, err = scene.New(lighting.NewLight(l.SunLongitude, l.SunLatitude, l.SunColor, l.AmbientColor, l.AmbientIntensity))
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	c := cfg.Camera
	v.camera = camera.NewFlyCamera(c.Position, c.LookAt, c.MovementSpeed, c.RotationSpeed)
	v.camera.InvertY = c.InvertY

	v.regen = regen.New(cfg.Regen.Debounce)
	first := v.regen.GenerateNow(v.planet)
	if first.Err != nil {
		v.Close()
		return nil, fmt.Errorf("initial planet: %w", first.Err)
	}
	v.apply(first)

	v.setMouseGrab(true)
	return v, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.running = true
	frames := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")
	for v.running {
		if v.input.Update() {
			break
		}
		v.handleEvents()
		v.update()
		v.render()
		v.window.SwapBuffers()

		frames++
		if since := time.Since(fpsTimer); since >= time.Second {
			v.log.Debug("fps", zap.Int("count", frames))
			v.updateTitle(float64(frames) / since.Seconds())
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (v *Viewer) handleEvents() {
	if w, h, ok := v.input.Resized(); ok {
		v.renderer.Resize(w, h)
	}

	for _, e := range v.input.Events() {
		if e.Type != input.EventKeyDown || e.Repeat {
			continue
		}

		if next, ok := editPlanet(v.planet, e.Key); ok {
			v.planet = next
			v.regen.Request(next)
			continue
		}

		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_TAB:
			v.setMouseGrab(!v.mouseGrabbed)
		case sdl.SCANCODE_F:
			v.renderer.SetWireframe(!v.renderer.Wireframe())
		case sdl.SCANCODE_N:
			v.scene.ShowNormals = !v.scene.ShowNormals
		case sdl.SCANCODE_B:
			v.scene.ShowBounds = !v.scene.ShowBounds
		case sdl.SCANCODE_H:
			v.scene.Planet.HighlightFace = !v.scene.Planet.HighlightFace
		case sdl.SCANCODE_V:
			v.scene.Planet.Mode = (v.scene.Planet.Mode + 1) % scene.ShadeMode(len(scene.ShadeModeNames))
		case sdl.SCANCODE_F5:
			v.regen.Force(v.planet)
		case sdl.SCANCODE_F12:
			v.screenshot()
		}
	}
}

func (v *Viewer) update() {
	if v.mouseGrabbed {
		dx, dy := v.input.MouseDelta()
		v.camera.Turn(dx, dy)
	}
	v.camera.Move(moveAxes(v.input))

	if res, ok := v.regen.Poll(); ok {
		if res.Err != nil {
			v.log.Warn("edit rejected", zap.Error(res.Err))
			// Keep editing from the config that produced the visible mesh.
			v.planet = v.regen.Current().Config.Clone()
			return
		}
		v.apply(res)
	}
}

func (v *Viewer) apply(res regen.Result) {
	v.scene.SetMesh(res.Mesh, res.Config)
	v.updateTitle(0)
}

func (v *Viewer) render() {
	v.renderer.Begin()
	proj := camera.Projection(v.cfg.Graphics.FOV, v.renderer.Aspect())
	v.scene.Render(v.camera.ViewMatrix(), proj)
}

func (v *Viewer) updateTitle(fps float64) {
	cur := v.regen.Current()
	if cur.Mesh == nil {
		return
	}
	title := fmt.Sprintf("%s | res %d | %d tris | %s | gen %v",
		Title, cur.Config.Resolution, cur.Mesh.TriangleCount(), cur.Config.Noise,
		cur.Duration.Round(time.Millisecond))
	if fps > 0 {
		title += fmt.Sprintf(" | %.0f fps", fps)
	}
	v.window.SetTitle(title)
}

func (v *Viewer) setMouseGrab(on bool) {
	v.mouseGrabbed = on
	v.window.GrabMouse(on)
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases everything New created.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.regen != nil {
		v.regen.Close()
	}
	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
