package scene

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	vecForward = mgl32.Vec3{0, 0, 1}
	vecUp      = mgl32.Vec3{0, 1, 0}
)

// Node is an element of the scene graph. The coordinate system is left handed,
// +Y points up and +Z points forward.
type Node struct {
	name string

	scene  *Scene
	parent *Node

	children   []*Node
	components []Component

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
}

func newNode(name string, scene *Scene, parent *Node) *Node {
	return &Node{
		name:     name,
		scene:    scene,
		parent:   parent,
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (n *Node) Name() string {
	return n.name
}

// Scene returns the scene this node belongs to.
func (n *Node) Scene() *Scene {
	return n.scene
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// CreateChild creates a new child node with an identity transform.
func (n *Node) CreateChild(name string) *Node {
	child := newNode(name, n.scene, n)
	n.children = append(n.children, child)
	return child
}

// CreateComponent attaches the component to this node and returns it.
func CreateComponent[C Component](n *Node, component C) C {
	n.AddComponent(component)
	return component
}

// AddComponent attaches a component to this node. Drawables are registered with the
// octree of the scene, if the scene has one.
func (n *Node) AddComponent(component Component) {
	component.attach(n)
	n.components = append(n.components, component)

	switch c := component.(type) {
	case *Octree:
		c.collect(n.scene)

	case Drawable:
		if octree := n.scene.Octree(); octree != nil {
			octree.Insert(c)
		}
	}
}

func (n *Node) Components() []Component {
	return n.components
}

// ComponentOf returns the first component of the given type attached to the node.
func ComponentOf[C Component](n *Node) (C, bool) {
	for _, component := range n.components {
		if c, ok := component.(C); ok {
			return c, true
		}
	}

	var zero C
	return zero, false
}

func (n *Node) Position() mgl32.Vec3 {
	return n.position
}

func (n *Node) SetPosition(position mgl32.Vec3) {
	n.position = position
}

func (n *Node) Rotation() mgl32.Quat {
	return n.rotation
}

func (n *Node) SetRotation(rotation mgl32.Quat) {
	n.rotation = rotation.Normalize()
}

func (n *Node) Scale() mgl32.Vec3 {
	return n.scale
}

func (n *Node) SetScale(scale float32) {
	n.scale = mgl32.Vec3{scale, scale, scale}
}

func (n *Node) SetScale3D(scale mgl32.Vec3) {
	n.scale = scale
}

// SetDirection rotates the node so that its forward axis points into the given
// direction. A zero direction leaves the rotation unchanged.
func (n *Node) SetDirection(direction mgl32.Vec3) {
	if direction.Len() == 0 {
		slog.Warn(
			"Ignore zero direction, node keeps its rotation",
			slog.String("node", n.name),
			slog.Any("rotation", n.rotation),
		)

		return
	}

	n.SetRotation(mgl32.QuatBetweenVectors(vecForward, direction.Normalize()))
}

// LookAt rotates the node so that its forward axis points at the target, given in
// world space. Returns false if the rotation could not be computed, e.g. if the
// target equals the nodes position or the look direction is parallel to up.
func (n *Node) LookAt(target, up mgl32.Vec3) bool {
	forward := target.Sub(n.WorldPosition())
	if forward.Len() == 0 {
		return false
	}

	forward = forward.Normalize()

	right := up.Cross(forward)
	if right.Len() < 1e-6 {
		return false
	}

	right = right.Normalize()
	up = forward.Cross(right)

	world := mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, up, forward).Mat4())

	if n.parent != nil {
		world = n.parent.WorldRotation().Inverse().Mul(world)
	}

	n.SetRotation(world)

	return true
}

// Transform returns the local transformation matrix of this node.
func (n *Node) Transform() mgl32.Mat4 {
	translate := mgl32.Translate3D(n.position[0], n.position[1], n.position[2])
	scale := mgl32.Scale3D(n.scale[0], n.scale[1], n.scale[2])
	return translate.Mul4(n.rotation.Mat4()).Mul4(scale)
}

func (n *Node) WorldTransform() mgl32.Mat4 {
	if n.parent == nil {
		return n.Transform()
	}

	return n.parent.WorldTransform().Mul4(n.Transform())
}

func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldTransform().Col(3).Vec3()
}

func (n *Node) WorldRotation() mgl32.Quat {
	if n.parent == nil {
		return n.rotation
	}

	return n.parent.WorldRotation().Mul(n.rotation)
}

// Forward returns the forward axis of the node in world space.
func (n *Node) Forward() mgl32.Vec3 {
	return n.WorldRotation().Rotate(vecForward)
}

func (n *Node) Up() mgl32.Vec3 {
	return n.WorldRotation().Rotate(vecUp)
}

// walk calls fn for this node and all of its descendants in depth first order.
func (n *Node) walk(fn func(node *Node)) {
	fn(n)

	for _, child := range n.children {
		child.walk(fn)
	}
}
