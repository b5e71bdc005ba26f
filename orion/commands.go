package orion

import (
	"github.com/oliverbestmann/panorama/pulse"
	"github.com/oliverbestmann/panorama/pulse/commands"
)

var mesh3dCommand global[*commands.Mesh3dCommand]
var viewportRenderer global[*viewportCache]

func initializeCommands(ctx *pulse.Context) {
	mesh3d, err := commands.NewMesh3dCommand(ctx)
	Handle(err, "initialize mesh3d command")
	mesh3dCommand.set(mesh3d)

	viewportRenderer.set(newViewportCache(ctx))
}

func releaseCommands() {
	if cache, ok := viewportRenderer.TryGet(); ok {
		cache.Purge()
	}

	if mesh3d, ok := mesh3dCommand.TryGet(); ok {
		mesh3d.Release()
	}

	viewportRenderer.reset()
	mesh3dCommand.reset()
}
