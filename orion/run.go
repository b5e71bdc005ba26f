package orion

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/oliverbestmann/panorama/glimpse"
	"github.com/oliverbestmann/panorama/pulse"
)

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

func RunGame(opts RunGameOptions) error {
	game := opts.Game
	if game == nil {
		return errors.New("Game must not be nil")
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Orion"
	}

	config, err := pulse.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("read wgpu config: %w", err)
	}

	// create a new window (or canvas)
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), config)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	// initialize the view
	view := pulse.NewView(ctx)

	defer resetGlobals()

	initializeCommands(ctx)
	defer releaseCommands()

	if closer, ok := game.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("Failed to close game", slog.String("error", err.Error()))
			}
		}()
	}

	loopState := &LoopState{
		Window: win,
		Game:   game,
	}

	return win.Run(func(inputState glimpse.UpdateInputState) error {
		// do the actual rendering here
		return loopOnce(view, loopState, inputState)
	})
}
