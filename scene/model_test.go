package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereModel(t *testing.T) {
	const segments, rings = 16, 8

	model := NewSphereModel("sphere", 0.5, segments, rings)

	if len(model.Vertices) != (segments+1)*(rings+1) {
		t.Fatalf("unexpected vertex count %d", len(model.Vertices))
	}

	if len(model.Indices) != segments*rings*6 {
		t.Fatalf("unexpected index count %d", len(model.Indices))
	}

	for _, idx := range model.Indices {
		if int(idx) >= len(model.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}

	for _, v := range model.Vertices {
		if l := v.Position.Len(); mgl32.Abs(l-0.5) > 1e-5 {
			t.Fatalf("vertex %v not on sphere surface", v.Position)
		}

		if l := v.Normal.Len(); mgl32.Abs(l-1) > 1e-5 {
			t.Fatalf("normal %v not normalized", v.Normal)
		}

		if v.UV[0] < 0 || v.UV[0] > 1 || v.UV[1] < 0 || v.UV[1] > 1 {
			t.Fatalf("uv %v out of range", v.UV)
		}
	}

	approxVec3(t, "bbox min", model.BoundingBox.Min, mgl32.Vec3{-0.5, -0.5, -0.5})
	approxVec3(t, "bbox max", model.BoundingBox.Max, mgl32.Vec3{0.5, 0.5, 0.5})

	// north pole first, south pole last
	approxVec3(t, "north", model.Vertices[0].Position, mgl32.Vec3{0, 0.5, 0})
	approxVec3(t, "south", model.Vertices[len(model.Vertices)-1].Position, mgl32.Vec3{0, -0.5, 0})
}

func TestSphereTrianglesFaceOutwardClockwise(t *testing.T) {
	model := NewSphereModel("sphere", 0.5, 16, 8)

	for idx := 0; idx < len(model.Indices); idx += 3 {
		a := model.Vertices[model.Indices[idx+0]].Position
		b := model.Vertices[model.Indices[idx+1]].Position
		c := model.Vertices[model.Indices[idx+2]].Position

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() < 1e-9 {
			// degenerate triangle at a pole
			continue
		}

		center := a.Add(b).Add(c).Mul(1.0 / 3.0)

		// in a left handed system the cross product of a triangle wound
		// clockwise points towards the viewer
		if normal.Dot(center) <= 0 {
			t.Fatalf("triangle %d is not wound clockwise seen from outside", idx/3)
		}
	}
}

func TestResourceCache(t *testing.T) {
	resources := NewResourceCache()

	first, err := resources.GetModel(PathSphere)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	second, _ := resources.GetModel(PathSphere)
	if first != second {
		t.Fatalf("expected cached model")
	}

	if _, err := resources.GetModel("Models/Teapot.mdl"); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}

	custom := NewSphereModel("custom", 1, 4, 2)
	resources.AddModel("Models/Custom.mdl", custom)

	if got, _ := resources.GetModel("Models/Custom.mdl"); got != custom {
		t.Fatalf("expected manual model")
	}

	resources.RemoveModel("Models/Custom.mdl")
	if _, err := resources.GetModel("Models/Custom.mdl"); !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected removed model to be gone, got %v", err)
	}
}
