package scene

import "slices"

// Octree indexes the drawables of a scene for bounding box queries. It must be
// attached to the root node of the scene. Drawables are kept in a flat list and
// Query tests each of them, the viewer only ever holds a handful.
type Octree struct {
	component

	drawables []Drawable
}

func NewOctree() *Octree {
	return &Octree{}
}

// collect registers all drawables that were attached before the octree itself.
func (o *Octree) collect(s *Scene) {
	for _, d := range ComponentsOf[Drawable](s) {
		o.Insert(d)
	}
}

func (o *Octree) Insert(d Drawable) {
	if slices.Contains(o.drawables, d) {
		return
	}

	o.drawables = append(o.drawables, d)
}

func (o *Octree) Remove(d Drawable) {
	o.drawables = slices.DeleteFunc(o.drawables, func(other Drawable) bool {
		return other == d
	})
}

func (o *Octree) Len() int {
	return len(o.drawables)
}

// Query returns all drawables whose world bounding box intersects the given box.
func (o *Octree) Query(box BoundingBox) []Drawable {
	var result []Drawable

	for _, d := range o.drawables {
		if d.WorldBoundingBox().Intersects(box) {
			result = append(result, d)
		}
	}

	return result
}
