package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport binds a scene and a camera to the full screen.
type Viewport struct {
	Scene  *Scene
	Camera *Camera
}

func NewViewport(scene *Scene, camera *Camera) *Viewport {
	return &Viewport{Scene: scene, Camera: camera}
}

// Renderer holds the registered viewports and collects what to draw for them.
type Renderer struct {
	viewports []*Viewport
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetViewport registers the viewport at the given index.
func (r *Renderer) SetViewport(idx int, viewport *Viewport) {
	if idx < 0 {
		return
	}

	for len(r.viewports) <= idx {
		r.viewports = append(r.viewports, nil)
	}

	r.viewports[idx] = viewport
}

// Viewport returns the viewport at the given index or nil.
func (r *Renderer) Viewport(idx int) *Viewport {
	if idx < 0 || idx >= len(r.viewports) {
		return nil
	}

	return r.viewports[idx]
}

// Viewports returns all registered viewports in order.
func (r *Renderer) Viewports() []*Viewport {
	var result []*Viewport

	for _, vp := range r.viewports {
		if vp != nil {
			result = append(result, vp)
		}
	}

	return result
}

type Batch struct {
	Model    *Model
	Material *Material
	World    mgl32.Mat4
}

type FrameLight struct {
	// Direction the light travels in world space
	Direction mgl32.Vec3
	Color     Color
}

// Frame contains everything needed to draw one viewport.
type Frame struct {
	ViewProjection mgl32.Mat4
	Ambient        Color
	Lights         []FrameLight
	Batches        []Batch
}

// Collect gathers the visible batches, the ambient color of the zone containing the
// camera and all lights of the scene.
func (r *Renderer) Collect(vp *Viewport, aspect float32) Frame {
	if vp == nil || vp.Scene == nil || vp.Camera == nil || vp.Camera.Node() == nil {
		return Frame{}
	}

	camera := vp.Camera
	cameraPos := camera.Node().WorldPosition()

	frame := Frame{
		ViewProjection: camera.ViewProjection(aspect),
		Ambient:        DefaultAmbientColor,
	}

	for _, zone := range ComponentsOf[*Zone](vp.Scene) {
		if zone.WorldBoundingBox().Contains(cameraPos) {
			frame.Ambient = zone.AmbientColor
			break
		}
	}

	for _, light := range ComponentsOf[*Light](vp.Scene) {
		frame.Lights = append(frame.Lights, FrameLight{
			Direction: light.Direction(),
			Color:     light.EffectiveColor(),
		})
	}

	octree := vp.Scene.Octree()
	if octree == nil {
		return frame
	}

	far := camera.FarClip
	visible := BoundingBoxOf(
		cameraPos.Sub(mgl32.Vec3{far, far, far}),
		cameraPos.Add(mgl32.Vec3{far, far, far}),
	)

	for _, drawable := range octree.Query(visible) {
		sm, ok := drawable.(*StaticModel)
		if !ok || sm.Model() == nil || sm.Material() == nil {
			continue
		}

		frame.Batches = append(frame.Batches, Batch{
			Model:    sm.Model(),
			Material: sm.Material(),
			World:    sm.Node().WorldTransform(),
		})
	}

	return frame
}
