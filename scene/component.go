package scene

// Component is attached to a Node and provides its behaviour.
type Component interface {
	Node() *Node
	attach(node *Node)
}

type component struct {
	node *Node
}

// Node returns the node the component is attached to, or nil.
func (c *component) Node() *Node {
	return c.node
}

func (c *component) attach(node *Node) {
	c.node = node
}

// Drawable is a component that can be rendered.
type Drawable interface {
	Component
	WorldBoundingBox() BoundingBox
}
