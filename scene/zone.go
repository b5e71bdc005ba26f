package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultAmbientColor is used where no zone covers the camera.
var DefaultAmbientColor = ColorRGB(0.1, 0.1, 0.1)

// Zone defines the ambient lighting within a box in the local space of its node.
type Zone struct {
	component

	BoundingBox  BoundingBox
	AmbientColor Color
}

func NewZone() *Zone {
	return &Zone{
		BoundingBox:  BoundingBoxOf(mgl32.Vec3{-10, -10, -10}, mgl32.Vec3{10, 10, 10}),
		AmbientColor: DefaultAmbientColor,
	}
}

func (z *Zone) SetBoundingBox(box BoundingBox) {
	z.BoundingBox = box
}

func (z *Zone) SetAmbientColor(color Color) {
	z.AmbientColor = color
}

// WorldBoundingBox returns the box of the zone in world space.
func (z *Zone) WorldBoundingBox() BoundingBox {
	if z.node == nil {
		return z.BoundingBox
	}

	return z.BoundingBox.Transformed(z.node.WorldTransform())
}
