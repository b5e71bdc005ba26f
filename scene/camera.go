package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera projects the scene as seen from its node, looking along the forward axis.
type Camera struct {
	component

	// vertical field of view in degrees
	Fov float32

	NearClip float32
	FarClip  float32
}

func NewCamera() *Camera {
	return &Camera{
		Fov:      45,
		NearClip: 0.1,
		FarClip:  1000,
	}
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
}

// View returns the transformation from world space into view space.
func (c *Camera) View() mgl32.Mat4 {
	if c.node == nil {
		return mgl32.Ident4()
	}

	position := c.node.WorldPosition()
	translate := mgl32.Translate3D(-position[0], -position[1], -position[2])

	return c.node.WorldRotation().Inverse().Mat4().Mul4(translate)
}

// Projection returns a left handed perspective projection mapping the depth
// between the near and far clip planes to the range 0 to 1.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}

	n, f := c.NearClip, c.FarClip

	ys := float32(1 / math.Tan(float64(mgl32.DegToRad(c.Fov))/2))
	xs := ys / aspect

	return mgl32.Mat4{
		xs, 0, 0, 0,
		0, ys, 0, 0,
		0, 0, f / (f - n), 1,
		0, 0, -n * f / (f - n), 0,
	}
}

func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}
