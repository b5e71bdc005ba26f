package orion

import (
	"testing"

	"github.com/oliverbestmann/panorama/scene"
	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestToWGPUCullMode(t *testing.T) {
	cases := map[scene.CullMode]wgpu.CullMode{
		scene.CullModeCCW:  wgpu.CullModeBack,
		scene.CullModeCW:   wgpu.CullModeFront,
		scene.CullModeNone: wgpu.CullModeNone,
	}

	for mode, want := range cases {
		if got := toWGPUCullMode(mode); got != want {
			t.Fatalf("toWGPUCullMode(%d) = %v, want %v", mode, got, want)
		}
	}
}
