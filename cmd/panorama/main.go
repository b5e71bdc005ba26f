package main

import (
	"log/slog"
	"os"

	"github.com/oliverbestmann/panorama/orion"
	"github.com/oliverbestmann/panorama/panorama"
)

func main() {
	config, err := orion.ConfigFromEnv()
	orion.Handle(err, "read config")

	level, err := config.SlogLevel()
	orion.Handle(err, "configure logging")

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	err = orion.RunGame(orion.RunGameOptions{
		Game:         panorama.New(),
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "Panorama",
	})

	orion.Handle(err, "run game")
}
