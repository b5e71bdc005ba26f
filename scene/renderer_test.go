package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraProjectionDepthRange(t *testing.T) {
	s := NewScene()
	camera := CreateComponent(s.CreateChild("camera"), NewCamera())
	camera.SetFov(50)

	vp := camera.ViewProjection(2)

	project := func(point mgl32.Vec3) mgl32.Vec3 {
		clip := vp.Mul4x1(point.Vec4(1))
		return clip.Vec3().Mul(1 / clip.W())
	}

	near := project(mgl32.Vec3{0, 0, camera.NearClip})
	if mgl32.Abs(near.Z()) > 1e-5 {
		t.Fatalf("near plane maps to depth %f", near.Z())
	}

	far := project(mgl32.Vec3{0, 0, camera.FarClip})
	if mgl32.Abs(far.Z()-1) > 1e-4 {
		t.Fatalf("far plane maps to depth %f", far.Z())
	}

	// a point to the right of the camera ends up on the right side of the screen
	right := project(mgl32.Vec3{1, 0, 5})
	if right.X() <= 0 || mgl32.Abs(right.Y()) > 1e-6 {
		t.Fatalf("unexpected projection %v", right)
	}
}

func TestCameraViewFollowsNode(t *testing.T) {
	s := NewScene()
	node := s.CreateChild("camera")
	camera := CreateComponent(node, NewCamera())

	node.SetPosition(mgl32.Vec3{0, 1, 0})
	node.LookAt(mgl32.Vec3{0, 1, 5}, mgl32.Vec3{0, 1, 0})

	inView := mgl32.TransformCoordinate(mgl32.Vec3{0, 1, 5}, camera.View())
	approxVec3(t, "target in view space", inView, mgl32.Vec3{0, 0, 5})
}

func TestRendererViewports(t *testing.T) {
	r := NewRenderer()

	if len(r.Viewports()) != 0 || r.Viewport(0) != nil {
		t.Fatalf("expected no viewports")
	}

	vp := NewViewport(NewScene(), nil)
	r.SetViewport(1, vp)

	if r.Viewport(1) != vp || r.Viewport(0) != nil {
		t.Fatalf("unexpected viewport registration")
	}

	if len(r.Viewports()) != 1 {
		t.Fatalf("expected one viewport, got %d", len(r.Viewports()))
	}
}

func buildRoom(t *testing.T) (*Scene, *Camera, *StaticModel) {
	t.Helper()

	s := NewScene()
	CreateComponent(s.Node, NewOctree())

	resources := NewResourceCache()
	sphere, err := resources.GetModel(PathSphere)
	if err != nil {
		t.Fatalf("get sphere: %s", err)
	}

	room := s.CreateChild("room")
	room.SetScale(2)

	model := CreateComponent(room, NewStaticModel())
	model.SetModel(sphere)

	material := NewMaterial()
	material.SetTechnique(TechniqueDiffUnlit)
	model.SetMaterial(material)

	light := s.CreateChild("light")
	light.SetDirection(mgl32.Vec3{0, -1, 0})
	CreateComponent(light, NewLight())

	camera := CreateComponent(s.CreateChild("camera"), NewCamera())

	return s, camera, model
}

func TestRendererCollect(t *testing.T) {
	s, camera, model := buildRoom(t)

	zone := CreateComponent(s.CreateChild("zone"), NewZone())
	zone.SetBoundingBox(BoundingBoxOf(mgl32.Vec3{-300, -300, -300}, mgl32.Vec3{300, 300, 300}))
	zone.SetAmbientColor(ColorRGB(1, 1, 1))

	frame := NewRenderer().Collect(NewViewport(s, camera), 16.0/9.0)

	if len(frame.Batches) != 1 {
		t.Fatalf("expected one batch, got %d", len(frame.Batches))
	}

	batch := frame.Batches[0]
	if batch.Model != model.Model() || batch.Material != model.Material() {
		t.Fatalf("unexpected batch %+v", batch)
	}

	approxVec3(t, "world scale", mgl32.Vec3{batch.World[0], batch.World[5], batch.World[10]}, mgl32.Vec3{2, 2, 2})

	if frame.Ambient != ColorWhite {
		t.Fatalf("expected ambient of zone, got %v", frame.Ambient)
	}

	if len(frame.Lights) != 1 {
		t.Fatalf("expected one light, got %d", len(frame.Lights))
	}

	approxVec3(t, "light direction", frame.Lights[0].Direction, mgl32.Vec3{0, -1, 0})
}

func TestRendererCollectOutsideOfZone(t *testing.T) {
	s, camera, _ := buildRoom(t)

	zone := CreateComponent(s.CreateChild("zone"), NewZone())
	zone.SetAmbientColor(ColorRGB(1, 0, 0))
	zone.Node().SetPosition(mgl32.Vec3{100, 0, 0})

	frame := NewRenderer().Collect(NewViewport(s, camera), 1)

	if frame.Ambient != DefaultAmbientColor {
		t.Fatalf("expected default ambient, got %v", frame.Ambient)
	}
}

func TestRendererCollectWithoutCamera(t *testing.T) {
	s, _, _ := buildRoom(t)

	frame := NewRenderer().Collect(NewViewport(s, nil), 1)
	if len(frame.Batches) != 0 {
		t.Fatalf("expected empty frame")
	}
}
