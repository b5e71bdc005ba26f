package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/panorama/glimpse"
	"github.com/oliverbestmann/panorama/pulse"
)

type LoopState struct {
	Window        glimpse.Window
	Game          Game
	SurfaceWidth  uint32
	SurfaceHeight uint32
	Initialized   bool
}

func loopOnce(viewState *pulse.View, loopState *LoopState, inputState glimpse.UpdateInputState) error {
	// get surface size for next frame
	surfaceWidth, surfaceHeight := loopState.Window.GetSize()

	if surfaceWidth == 0 || surfaceHeight == 0 {
		// minimized, keep processing events but do not render
		updateInput(inputState)
		return nil
	}

	// reconfigure surface if needed
	if loopState.SurfaceWidth != surfaceWidth || loopState.SurfaceHeight != surfaceHeight {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		viewState.Configure(surfaceWidth, surfaceHeight)

		loopState.SurfaceWidth = surfaceWidth
		loopState.SurfaceHeight = surfaceHeight
	}

	// get the surface texture (the actual screen)
	surface, err := viewState.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	defer func() {
		if surface != nil {
			surface.Release()
		}
	}()

	// get input after waiting for a texture to keep input lag low
	updateInput(inputState)

	if currentFrameTimes.Tick(time.Now()) {
		currentFrameTimes.log()
	}

	// run game.Initialize and game.Update
	err = performGameUpdate(loopState, currentFrameTimes.Delta)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer surfaceView.Release()

	screen := asImage(viewState.SurfaceAsTexture(surface, surfaceView))
	loopState.Game.Draw(screen)

	// present the rendered image
	viewState.Surface.Present()

	// we do not need to release the screen if present was successful
	surface = nil

	return nil
}

func updateInput(inputState glimpse.UpdateInputState) {
	currentInputState.reset()
	currentInputState.set(inputState())
}

func performGameUpdate(loopState *LoopState, dt time.Duration) error {
	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := loopState.Game.Update(dt); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}
