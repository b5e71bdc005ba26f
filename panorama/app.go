package panorama

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/oliverbestmann/panorama/glimpse"
	"github.com/oliverbestmann/panorama/orion"
	"github.com/oliverbestmann/panorama/pulse"
	"github.com/oliverbestmann/panorama/scene"
)

type touchSource interface {
	NumTouches() int
	TouchAt(idx int) glimpse.Touch
}

type orionTouches struct{}

func (orionTouches) NumTouches() int {
	return orion.NumTouches()
}

func (orionTouches) TouchAt(idx int) glimpse.Touch {
	return orion.TouchAt(idx)
}

type sceneResult struct {
	scene *LoadedScene
	err   error
}

var _ orion.Game = (*App)(nil)
var _ io.Closer = (*App)(nil)

// App shows the panorama and rotates the camera while the user drags.
type App struct {
	imageURL  string
	client    *http.Client
	resources *scene.ResourceCache
	renderer  *scene.Renderer
	touches   touchSource

	cancel  context.CancelFunc
	results chan sceneResult

	loaded      bool
	err         error
	scene       *LoadedScene
	orientation CameraOrientation
}

func New() *App {
	return &App{
		imageURL:  ImageURL,
		client:    &http.Client{},
		resources: scene.NewResourceCache(),
		renderer:  scene.NewRenderer(),
		touches:   orionTouches{},
	}
}

// Initialize starts creating the scene in the background and returns immediately.
func (a *App) Initialize() error {
	ctx, cancel := context.WithCancel(context.Background())

	results := make(chan sceneResult, 1)

	a.cancel = cancel
	a.results = results

	slog.Info("Create scene", slog.String("url", a.imageURL))

	go func() {
		loaded, err := CreateScene(ctx, a.resources, a.client, a.imageURL)
		results <- sceneResult{scene: loaded, err: err}
	}()

	return nil
}

func (a *App) Update(dt time.Duration) error {
	a.receiveScene()

	if !a.loaded || a.touches.NumTouches() < 1 {
		return nil
	}

	delta := a.touches.TouchAt(0).Delta
	UpdateCamera(&a.orientation, a.scene.CameraNode, delta[0], delta[1])

	return nil
}

// receiveScene takes the result of the scene creation, if available.
func (a *App) receiveScene() {
	if a.results == nil {
		return
	}

	var result sceneResult

	select {
	case result = <-a.results:
		a.results = nil
	default:
		return
	}

	if result.err != nil {
		slog.Error("Failed to create scene", slog.String("error", result.err.Error()))
		a.err = result.err
		return
	}

	a.renderer.SetViewport(0, scene.NewViewport(result.scene.Scene, result.scene.Camera))

	a.scene = result.scene
	a.loaded = true

	slog.Info("Scene loaded")
}

func (a *App) Draw(screen *orion.Image) {
	screen.Clear(pulse.ColorBlack)

	err := orion.DrawViewports(screen, a.renderer)
	orion.Handle(err, "draw viewports")
}

// Close cancels a pending scene creation.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}

	return nil
}

// Loaded returns true once the scene was created and registered with the renderer.
func (a *App) Loaded() bool {
	return a.loaded
}

// Err returns the error of the failed scene creation, if any.
func (a *App) Err() error {
	return a.err
}

func (a *App) Orientation() CameraOrientation {
	return a.orientation
}

func (a *App) Renderer() *scene.Renderer {
	return a.renderer
}

// Scene returns the loaded scene or nil.
func (a *App) Scene() *LoadedScene {
	return a.scene
}
