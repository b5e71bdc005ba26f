package scene

import "github.com/go-gl/mathgl/mgl32"

type LightType int

const (
	LightDirectional LightType = iota
)

// Light illuminates lit materials. A directional light shines along the forward
// axis of its node.
type Light struct {
	component

	Type       LightType
	Color      Color
	Brightness float32
}

func NewLight() *Light {
	return &Light{
		Type:       LightDirectional,
		Color:      ColorWhite,
		Brightness: 1,
	}
}

func (l *Light) SetLightType(lightType LightType) {
	l.Type = lightType
}

// Direction returns the direction of the light in world space.
func (l *Light) Direction() mgl32.Vec3 {
	if l.node == nil {
		return vecForward
	}

	return l.node.Forward()
}

// EffectiveColor returns the color scaled by the brightness.
func (l *Light) EffectiveColor() Color {
	return Color{
		R: l.Color.R * l.Brightness,
		G: l.Color.G * l.Brightness,
		B: l.Color.B * l.Brightness,
		A: l.Color.A,
	}
}
