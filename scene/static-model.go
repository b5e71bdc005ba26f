package scene

// StaticModel draws a model with a material at the transform of its node.
type StaticModel struct {
	component

	model    *Model
	material *Material
}

func NewStaticModel() *StaticModel {
	return &StaticModel{}
}

func (s *StaticModel) SetModel(model *Model) {
	s.model = model
}

func (s *StaticModel) Model() *Model {
	return s.model
}

func (s *StaticModel) SetMaterial(material *Material) {
	s.material = material
}

func (s *StaticModel) Material() *Material {
	return s.material
}

// WorldBoundingBox returns the bounding box of the model in world space. The box is
// empty, if no model is set or the component is not attached.
func (s *StaticModel) WorldBoundingBox() BoundingBox {
	if s.model == nil || s.node == nil {
		return EmptyBoundingBox()
	}

	return s.model.BoundingBox.Transformed(s.node.WorldTransform())
}
