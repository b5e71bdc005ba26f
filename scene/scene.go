package scene

// Scene is the root node of a scene graph.
type Scene struct {
	*Node
}

func NewScene() *Scene {
	s := &Scene{}
	s.Node = newNode("scene", s, nil)
	return s
}

// Octree returns the octree attached to the root node or nil.
func (s *Scene) Octree() *Octree {
	octree, _ := ComponentOf[*Octree](s.Node)
	return octree
}

// Walk calls fn for every node of the scene, including the root node.
func (s *Scene) Walk(fn func(node *Node)) {
	s.Node.walk(fn)
}

// ComponentsOf returns all components of the given type in the scene.
func ComponentsOf[C Component](s *Scene) []C {
	var result []C

	s.Walk(func(node *Node) {
		for _, component := range node.components {
			if c, ok := component.(C); ok {
				result = append(result, c)
			}
		}
	})

	return result
}
