package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxVec3(t *testing.T, name string, got, want mgl32.Vec3) {
	t.Helper()

	if got.Sub(want).Len() > 1e-5 {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
}

func TestNodeLookAt(t *testing.T) {
	s := NewScene()
	node := s.CreateChild("camera")

	if !node.LookAt(mgl32.Vec3{0, 1, 2}, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("LookAt failed")
	}

	approxVec3(t, "forward", node.Forward(), mgl32.Vec3{0, 1, 2}.Normalize())

	right := node.WorldRotation().Rotate(mgl32.Vec3{1, 0, 0})
	approxVec3(t, "right", right, mgl32.Vec3{1, 0, 0})

	if dot := node.Up().Dot(node.Forward()); mgl32.Abs(dot) > 1e-5 {
		t.Fatalf("up and forward are not orthogonal: %f", dot)
	}
}

func TestNodeLookAtDegenerate(t *testing.T) {
	s := NewScene()
	node := s.CreateChild("node")

	if node.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected LookAt at own position to fail")
	}

	if node.LookAt(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected LookAt parallel to up to fail")
	}

	if node.Rotation() != mgl32.QuatIdent() {
		t.Fatalf("rotation changed: %v", node.Rotation())
	}
}

func TestNodeLookAtWithRotatedParent(t *testing.T) {
	s := NewScene()
	parent := s.CreateChild("parent")
	parent.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))

	child := parent.CreateChild("child")
	child.LookAt(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 1, 0})

	approxVec3(t, "forward", child.Forward(), mgl32.Vec3{0, 0, 1})
}

func TestNodeSetDirection(t *testing.T) {
	s := NewScene()
	node := s.CreateChild("light")

	directions := []mgl32.Vec3{
		{0, -1, 0},
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, -1},
		{1, 1, 0},
	}

	for _, dir := range directions {
		node.SetDirection(dir)
		approxVec3(t, "forward", node.Forward(), dir.Normalize())
	}
}

func TestNodeSetDirectionZeroKeepsRotation(t *testing.T) {
	s := NewScene()
	node := s.CreateChild("light")

	node.SetDirection(mgl32.Vec3{0, 0, 0})

	if node.Rotation() != mgl32.QuatIdent() {
		t.Fatalf("expected identity rotation, got %v", node.Rotation())
	}

	approxVec3(t, "forward", node.Forward(), mgl32.Vec3{0, 0, 1})
}

func TestNodeWorldTransform(t *testing.T) {
	s := NewScene()

	parent := s.CreateChild("parent")
	parent.SetPosition(mgl32.Vec3{1, 0, 0})
	parent.SetScale(2)

	child := parent.CreateChild("child")
	child.SetPosition(mgl32.Vec3{0, 1, 0})

	approxVec3(t, "world position", child.WorldPosition(), mgl32.Vec3{1, 2, 0})

	if child.Scene() != s {
		t.Fatalf("child does not belong to the scene")
	}

	if len(parent.Children()) != 1 || child.Parent() != parent {
		t.Fatalf("unexpected hierarchy")
	}
}

func TestComponentOf(t *testing.T) {
	s := NewScene()
	node := s.CreateChild("camera")

	camera := CreateComponent(node, NewCamera())

	if camera.Node() != node {
		t.Fatalf("component not attached")
	}

	got, ok := ComponentOf[*Camera](node)
	if !ok || got != camera {
		t.Fatalf("camera not found")
	}

	if _, ok := ComponentOf[*Light](node); ok {
		t.Fatalf("unexpected light")
	}
}
