package glimpse

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Profile enables profiling of the process while the window
	// is open. Valid values are "cpu", "mem" or empty.
	Profile string `env:"GLIMPSE_PROFILE"`
}

func ConfigFromEnv() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch config.Profile {
	case "", "cpu", "mem":
	default:
		return Config{}, fmt.Errorf("unknown profile mode %q", config.Profile)
	}

	return config, nil
}
