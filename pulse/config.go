package pulse

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/oliverbestmann/webgpu/wgpu"
)

type Config struct {
	// LogLevel of the native wgpu library, one of OFF, ERROR, WARN, INFO, DEBUG or TRACE.
	LogLevel string `env:"WGPU_LOG_LEVEL"`

	// ForceFallbackAdapter requests a software adapter
	ForceFallbackAdapter bool `env:"WGPU_FORCE_FALLBACK_ADAPTER"`
}

func ConfigFromEnv() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

// WGPULogLevel maps the configured log level to the wgpu log level.
// An empty value keeps the default of the library.
func (c Config) WGPULogLevel() (level wgpu.LogLevel, ok bool, err error) {
	switch strings.ToUpper(c.LogLevel) {
	case "":
		return 0, false, nil
	case "OFF":
		return wgpu.LogLevelOff, true, nil
	case "ERROR":
		return wgpu.LogLevelError, true, nil
	case "WARN":
		return wgpu.LogLevelWarn, true, nil
	case "INFO":
		return wgpu.LogLevelInfo, true, nil
	case "DEBUG":
		return wgpu.LogLevelDebug, true, nil
	case "TRACE":
		return wgpu.LogLevelTrace, true, nil
	default:
		return 0, false, fmt.Errorf("unknown wgpu log level %q", c.LogLevel)
	}
}
