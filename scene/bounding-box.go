package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BoundingBox is an axis aligned box.
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBoundingBox returns a box that contains nothing. Merging a point into it
// produces a box containing only that point.
func EmptyBoundingBox() BoundingBox {
	inf := float32(math.Inf(1))

	return BoundingBox{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

func BoundingBoxOf(min, max mgl32.Vec3) BoundingBox {
	return EmptyBoundingBox().Merge(min).Merge(max)
}

func (b BoundingBox) Defined() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

func (b BoundingBox) Merge(point mgl32.Vec3) BoundingBox {
	for idx := range 3 {
		b.Min[idx] = min(b.Min[idx], point[idx])
		b.Max[idx] = max(b.Max[idx], point[idx])
	}

	return b
}

func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Contains(point mgl32.Vec3) bool {
	for idx := range 3 {
		if point[idx] < b.Min[idx] || point[idx] > b.Max[idx] {
			return false
		}
	}

	return true
}

func (b BoundingBox) Intersects(other BoundingBox) bool {
	if !b.Defined() || !other.Defined() {
		return false
	}

	for idx := range 3 {
		if other.Max[idx] < b.Min[idx] || other.Min[idx] > b.Max[idx] {
			return false
		}
	}

	return true
}

// Transformed returns the axis aligned box containing all corners of this box
// after applying the transformation.
func (b BoundingBox) Transformed(transform mgl32.Mat4) BoundingBox {
	if !b.Defined() {
		return b
	}

	result := EmptyBoundingBox()

	for corner := range 8 {
		point := b.Min
		if corner&1 != 0 {
			point[0] = b.Max[0]
		}
		if corner&2 != 0 {
			point[1] = b.Max[1]
		}
		if corner&4 != 0 {
			point[2] = b.Max[2]
		}

		result = result.Merge(mgl32.TransformCoordinate(point, transform))
	}

	return result
}
