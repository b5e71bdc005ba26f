package scene

type Technique int

const (
	TechniqueNoTexture Technique = iota
	TechniqueDiff
	TechniqueDiffNormal
	TechniqueDiffUnlit
)

// Lit returns true if surfaces using this technique receive ambient and light.
func (t Technique) Lit() bool {
	return t != TechniqueDiffUnlit
}

// UsesDiffuse returns true if the technique samples the diffuse texture.
func (t Technique) UsesDiffuse() bool {
	return t != TechniqueNoTexture
}

// CullMode selects which faces are culled, by their winding as seen by the camera.
type CullMode int

const (
	CullModeCCW CullMode = iota
	CullModeCW
	CullModeNone
)

type TextureUnit int

const (
	TextureUnitDiffuse TextureUnit = iota
	TextureUnitNormal
)

// Material describes the surface of a drawable. The zero value is not usable,
// use NewMaterial.
type Material struct {
	textures map[TextureUnit]*Texture2D

	Technique Technique
	CullMode  CullMode
}

func NewMaterial() *Material {
	return &Material{
		textures:  map[TextureUnit]*Texture2D{},
		Technique: TechniqueNoTexture,
		CullMode:  CullModeCCW,
	}
}

func (m *Material) SetTexture(unit TextureUnit, texture *Texture2D) {
	if texture == nil {
		delete(m.textures, unit)
		return
	}

	m.textures[unit] = texture
}

// Texture returns the texture bound to the unit or nil.
func (m *Material) Texture(unit TextureUnit) *Texture2D {
	return m.textures[unit]
}

func (m *Material) SetTechnique(technique Technique) {
	m.Technique = technique
}

func (m *Material) SetCullMode(mode CullMode) {
	m.CullMode = mode
}
