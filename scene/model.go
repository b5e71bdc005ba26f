package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Model is an indexed triangle list. Front faces are wound clockwise.
type Model struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32

	BoundingBox BoundingBox
}

func NewModel(name string, vertices []Vertex, indices []uint32) *Model {
	bbox := EmptyBoundingBox()
	for _, v := range vertices {
		bbox = bbox.Merge(v.Position)
	}

	return &Model{
		Name:        name,
		Vertices:    vertices,
		Indices:     indices,
		BoundingBox: bbox,
	}
}

// NewSphereModel builds an uv sphere centered at the origin. Texture coordinates map
// an equirectangular image onto the sphere, u follows the longitude and v the latitude
// starting at the north pole.
func NewSphereModel(name string, radius float32, segments, rings int) *Model {
	segments = max(segments, 3)
	rings = max(rings, 2)

	vertices := make([]Vertex, 0, (rings+1)*(segments+1))
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		theta := math.Pi * float64(ring) / float64(rings)
		sinTheta, cosTheta := math.Sincos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(segments)
			sinPhi, cosPhi := math.Sincos(phi)

			normal := mgl32.Vec3{
				float32(sinTheta * cosPhi),
				float32(cosTheta),
				float32(sinTheta * sinPhi),
			}

			vertices = append(vertices, Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV: mgl32.Vec2{
					float32(seg) / float32(segments),
					float32(ring) / float32(rings),
				},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			indices = append(indices,
				current, current+1, next,
				current+1, next+1, next,
			)
		}
	}

	return NewModel(name, vertices, indices)
}
