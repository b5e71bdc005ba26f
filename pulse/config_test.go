package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WGPU_LOG_LEVEL", "debug")
	t.Setenv("WGPU_FORCE_FALLBACK_ADAPTER", "true")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !config.ForceFallbackAdapter {
		t.Fatalf("expected fallback adapter to be forced")
	}

	level, ok, err := config.WGPULogLevel()
	if err != nil || !ok || level != wgpu.LogLevelDebug {
		t.Fatalf("unexpected log level %v, %v, %v", level, ok, err)
	}
}

func TestConfigLogLevel(t *testing.T) {
	if _, ok, err := (Config{}).WGPULogLevel(); ok || err != nil {
		t.Fatalf("expected empty log level to keep the default")
	}

	if _, _, err := (Config{LogLevel: "verbose"}).WGPULogLevel(); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
