// Package app implements the main viewer loop and terrain regeneration.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/ConArtist141/Terrain/internal/config"
	"github.com/ConArtist141/Terrain/internal/engine/camera"
	"github.com/ConArtist141/Terrain/internal/engine/debug"
	"github.com/ConArtist141/Terrain/internal/engine/input"
	"github.com/ConArtist141/Terrain/internal/engine/lighting"
	"github.com/ConArtist141/Terrain/internal/engine/picking"
	"github.com/ConArtist141/Terrain/internal/engine/renderer"
	"github.com/ConArtist141/Terrain/internal/engine/scene"
	"github.com/ConArtist141/Terrain/internal/engine/window"
	"github.com/ConArtist141/Terrain/internal/logger"
	"github.com/ConArtist141/Terrain/pkg/terrain"
)

// Camera projection parameters.
const (
	fovDegrees = 60
	nearPlane  = 0.1
	farPlane   = 10000
)

// Overlay and capture settings.
const (
	contourLevels    = 10
	contourLift      = 0.15
	screenshotDir    = "screenshots"
	screenshotPrefix = "terrain"
)

// App is the interactive terrain viewer.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	terrain  *scene.TerrainRenderer
	overlay  *scene.LineRenderer
	contours *scene.LineRenderer

	sun      lighting.Sun
	material scene.Material

	showGrid     bool
	showContours bool
	dragging     bool

	// Currently displayed terrain and its seed
	data *terrain.TerrainData
	seed int64
}

// New creates the viewer and generates the initial terrain.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		cfg:     cfg,
		running: false,
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist).
	// The GL framebuffer can be larger than the window on high-DPI displays.
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  fbWidth,
		Height: fbHeight,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.SetWireframe(cfg.Render.Wireframe)

	a.input = input.New()
	a.camera = camera.NewOrbitCamera()
	a.sun = lighting.NewSun(135, 55)

	mode, err := scene.ParseRenderMode(cfg.Render.Mode)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.material = scene.Material{Mode: mode, UVScale: cfg.Render.UVScale}

	a.terrain, err = scene.NewTerrainRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create terrain renderer: %w", err)
	}

	a.overlay, err = scene.NewLineRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	a.contours, err = scene.NewLineRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create contour renderer: %w", err)
	}

	a.seed = cfg.Terrain.Seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}

	if err := a.regenerate(); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("viewer initialized successfully")
	return a, nil
}

// regenerate builds terrain from the current seed and re-uploads it.
func (a *App) regenerate() error {
	start := time.Now()

	field, err := a.generateField()
	if err != nil {
		return fmt.Errorf("generating field: %w", err)
	}

	cs := a.cfg.Terrain.CellSize
	data, err := terrain.NewTerrainData(field, mgl32.Vec3{cs.X, cs.Y, cs.Z})
	if err != nil {
		return fmt.Errorf("building terrain data: %w", err)
	}

	chunks, err := terrain.ExtractChunks(data, a.cfg.Terrain.ChunkSize)
	if err != nil {
		return fmt.Errorf("extracting chunks: %w", err)
	}

	a.data = data
	a.terrain.Load(data, chunks)

	// Chunk borders on the surface plus each chunk's bounding box
	overlay := debug.ChunkOutlines(chunks, 0.15)
	overlay = append(overlay, debug.ChunkBoundsWireframes(chunks)...)
	a.overlay.Load(overlay)

	a.contours.Load(debug.ContourLines(data, contourLevels, contourLift))

	a.camera.FitToBounds(a.terrain.MinBounds, a.terrain.MaxBounds)

	logger.Info("terrain generated",
		zap.String("generator", a.cfg.Terrain.Generator),
		zap.Int64("seed", a.seed),
		zap.Int("width", field.Width()),
		zap.Int("height", field.Height()),
		zap.Int("chunks", len(chunks)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// generateField runs the configured generator.
func (a *App) generateField() (*terrain.HeightField, error) {
	tc := a.cfg.Terrain

	switch tc.Generator {
	case config.GeneratorGaussian:
		g := tc.Gaussian
		center := mgl32.Vec2{g.CenterX, g.CenterY}
		// Negative center components mean the grid midpoint
		if center.X() < 0 {
			center[0] = float32(g.Width-1) / 2
		}
		if center.Y() < 0 {
			center[1] = float32(g.Height-1) / 2
		}
		return terrain.GenerateGaussian(g.Width, g.Height,
			mgl32.Vec2{g.SigmaX, g.SigmaY}, g.Amplitude, center, g.FalloffRadius)

	case config.GeneratorPerlin:
		p := tc.Perlin
		return terrain.GeneratePerlin(a.seed, p.Width, p.Height, p.Scale, p.Amplitude)

	default:
		rng := rand.New(rand.NewSource(a.seed))
		return terrain.GenerateRandom(rng, tc.Roughness, tc.MaxSeedHeight, tc.Iterations)
	}
}

// Run starts the main viewer loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			// Quit event received
			a.running = false
			break
		}

		if err := a.handleEvents(); err != nil {
			return fmt.Errorf("event error: %w", err)
		}

		// 2. Update camera
		a.update(dt)

		// 3. Render
		a.render()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugf("fps %d (%.2fms)", frameCount, dt*1000)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents dispatches the frame's input events.
func (a *App) handleEvents() error {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			// Resize events report window coordinates; the viewport needs
			// the drawable size
			a.renderer.Resize(a.window.DrawableSize())

		case input.EventMouseDown:
			if event.Button == input.ButtonLeft {
				a.dragging = true
			} else if event.Button == input.ButtonRight {
				a.probeTerrain(event.MouseX, event.MouseY)
			}

		case input.EventMouseUp:
			if event.Button == input.ButtonLeft {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(event.WheelY))

		case input.EventKeyDown:
			if err := a.handleKey(event.Key); err != nil {
				return err
			}
		}
	}
	return nil
}

// handleKey processes a single key press.
func (a *App) handleKey(key input.Key) error {
	switch key {
	case input.KeyEscape:
		a.running = false

	case input.KeyR:
		// Fresh seed each time so R always gives a new landscape
		a.seed = time.Now().UnixNano()
		if err := a.regenerate(); err != nil {
			return err
		}

	case input.KeyG:
		a.showGrid = !a.showGrid

	case input.KeyC:
		a.showContours = !a.showContours

	case input.KeyTab:
		a.renderer.SetWireframe(!a.renderer.Wireframe())

	case input.Key1:
		a.material.Mode = scene.ModeNoTexture
	case input.Key2:
		a.material.Mode = scene.ModeTextured
	case input.Key3:
		a.material.Mode = scene.ModeMultiTextured

	case input.KeyF2:
		if err := a.cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved")
		}

	case input.KeyF12:
		a.saveScreenshot()
	}
	return nil
}

// update applies held-key camera panning.
func (a *App) update(dt float32) {
	var forward, right float32
	if a.input.IsKeyHeld(input.KeyW) {
		forward++
	}
	if a.input.IsKeyHeld(input.KeyS) {
		forward--
	}
	if a.input.IsKeyHeld(input.KeyD) {
		right++
	}
	if a.input.IsKeyHeld(input.KeyA) {
		right--
	}

	if forward != 0 || right != 0 {
		// Scale to a 60fps baseline so pan speed is frame rate independent
		a.camera.HandleMovement(forward*dt*60, right*dt*60, 0)
	}
}

// viewProjMatrix builds the combined view-projection matrix for this frame.
func (a *App) viewProjMatrix() mgl32.Mat4 {
	width, height := a.renderer.Size()
	aspect := float32(width) / float32(height)
	proj := mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
	return proj.Mul4(a.camera.ViewMatrix())
}

// render draws the current frame.
func (a *App) render() {
	a.renderer.Begin()

	viewProj := a.viewProjMatrix()
	a.terrain.Render(viewProj, a.sun, a.material)

	if a.showGrid {
		a.overlay.Render(viewProj)
	}
	if a.showContours {
		a.contours.Render(viewProj)
	}
}

// probeTerrain logs the terrain surface point under the cursor.
func (a *App) probeTerrain(screenX, screenY int) {
	if a.data == nil {
		return
	}

	// Mouse coordinates arrive in window space, not drawable pixels
	width, height := a.window.Size()
	ray := picking.ScreenToRay(
		float32(screenX), float32(screenY),
		float32(width), float32(height),
		a.viewProjMatrix().Inv(),
	)

	point, hit := ray.IntersectTerrain(a.data, farPlane)
	if !hit {
		return
	}

	logger.Info("terrain probe",
		zap.Float32("x", point.X()),
		zap.Float32("height", point.Y()),
		zap.Float32("z", point.Z()),
	)
}

// saveScreenshot captures the framebuffer to a PNG file.
func (a *App) saveScreenshot() {
	pixels, width, height := a.renderer.CapturePixels()

	path, err := debug.SaveScreenshot(screenshotDir, screenshotPrefix, pixels, width, height)
	if err != nil {
		logger.Warn("failed to save screenshot", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.contours != nil {
		a.contours.Destroy()
	}
	if a.overlay != nil {
		a.overlay.Destroy()
	}
	if a.terrain != nil {
		a.terrain.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
