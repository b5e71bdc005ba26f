package orion

import (
	"github.com/oliverbestmann/panorama/glm"
	"github.com/oliverbestmann/panorama/pulse"
)

type Color = pulse.Color

// Image is a texture the game can draw to.
type Image struct {
	texture *pulse.Texture
}

func asImage(texture *pulse.Texture) *Image {
	return &Image{texture: texture}
}

// Clear fills the image with the given color and resets its depth.
func (i *Image) Clear(color Color) {
	err := mesh3dCommand.Get().Clear(i.texture, color)
	Handle(err, "clear image")
}

func (i *Image) Texture() *pulse.Texture {
	return i.texture
}

func (i *Image) Size() glm.Vec2u {
	return i.texture.Size()
}

func (i *Image) Width() uint32 {
	return i.texture.Width()
}

func (i *Image) Height() uint32 {
	return i.texture.Height()
}

// AspectRatio returns width divided by height.
func (i *Image) AspectRatio() float32 {
	if i.Height() == 0 {
		return 1
	}

	return float32(i.Width()) / float32(i.Height())
}
