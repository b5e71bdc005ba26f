package orion

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/panorama/glm"
	"github.com/oliverbestmann/panorama/pulse"
	"github.com/oliverbestmann/panorama/pulse/commands"
	"github.com/oliverbestmann/panorama/scene"
	"github.com/oliverbestmann/webgpu/wgpu"
)

type cachedTexture struct {
	texture *pulse.Texture
	version uint64
}

// viewportCache holds the gpu resources of scene models and textures.
// Resources are released when evicted from the cache.
type viewportCache struct {
	ctx *pulse.Context

	meshes   *lru.Cache[*scene.Model, *commands.Mesh3d]
	textures *lru.Cache[*scene.Texture2D, cachedTexture]
}

func newViewportCache(ctx *pulse.Context) *viewportCache {
	meshes, _ := lru.NewWithEvict(64, func(model *scene.Model, mesh *commands.Mesh3d) {
		slog.Debug("Release mesh", slog.String("model", model.Name))
		mesh.Release()
	})

	textures, _ := lru.NewWithEvict(64, func(texture *scene.Texture2D, cached cachedTexture) {
		slog.Debug("Release texture", slog.String("texture", texture.Name))
		cached.texture.Release()
	})

	return &viewportCache{
		ctx:      ctx,
		meshes:   meshes,
		textures: textures,
	}
}

func (c *viewportCache) mesh(model *scene.Model) (*commands.Mesh3d, error) {
	if mesh, ok := c.meshes.Get(model); ok {
		return mesh, nil
	}

	vertices := make([]commands.Vertex3d, len(model.Vertices))
	for idx, v := range model.Vertices {
		vertices[idx] = commands.Vertex3d{
			Position: glm.Vec3f(v.Position),
			Normal:   glm.Vec3f(v.Normal),
			UV:       glm.Vec2f(v.UV),
		}
	}

	mesh, err := commands.NewMesh3d(c.ctx, vertices, model.Indices)
	if err != nil {
		return nil, fmt.Errorf("upload model %q: %w", model.Name, err)
	}

	c.meshes.Add(model, RegisterWithGC(mesh))

	return mesh, nil
}

// texture returns the gpu texture for the given scene texture, or nil if
// the texture has no pixel data yet.
func (c *viewportCache) texture(texture *scene.Texture2D) (*pulse.Texture, error) {
	if texture == nil || texture.Image() == nil {
		return nil, nil
	}

	cached, ok := c.textures.Get(texture)
	if ok && cached.version == texture.Version() {
		return cached.texture, nil
	}

	if ok {
		// pixel data changed, evicting releases the old texture
		c.textures.Remove(texture)
	}

	slog.Info(
		"Upload texture",
		slog.String("texture", texture.Name),
		slog.Int("width", texture.Width()),
		slog.Int("height", texture.Height()),
	)

	gpuTexture, err := pulse.NewTextureFromImage(c.ctx, texture.Image(), texture.Name)
	if err != nil {
		return nil, fmt.Errorf("upload texture %q: %w", texture.Name, err)
	}

	c.textures.Add(texture, cachedTexture{
		texture: RegisterWithGC(gpuTexture),
		version: texture.Version(),
	})

	return gpuTexture, nil
}

func (c *viewportCache) Purge() {
	c.meshes.Purge()
	c.textures.Purge()
}

// DrawViewports renders all viewports registered with the renderer onto the screen.
func DrawViewports(screen *Image, renderer *scene.Renderer) error {
	cache := viewportRenderer.Get()
	mesh3d := mesh3dCommand.Get()

	for _, vp := range renderer.Viewports() {
		frame := renderer.Collect(vp, screen.AspectRatio())

		if err := drawFrame(cache, mesh3d, screen, frame); err != nil {
			return err
		}
	}

	return nil
}

func drawFrame(cache *viewportCache, mesh3d *commands.Mesh3dCommand, screen *Image, frame scene.Frame) error {
	uniforms := commands.Mesh3dUniforms{
		Ambient: glm.Vec4f(frame.Ambient.Vec4()),
	}

	if len(frame.Lights) > 0 {
		light := frame.Lights[0]
		uniforms.LightDirection = glm.Vec4f(light.Direction.Vec4(1))
		uniforms.LightColor = glm.Vec4f(light.Color.Vec4())
	}

	for _, batch := range frame.Batches {
		mesh, err := cache.mesh(batch.Model)
		if err != nil {
			return err
		}

		material := batch.Material

		var texture *pulse.Texture
		if material.Technique.UsesDiffuse() {
			texture, err = cache.texture(material.Texture(scene.TextureUnitDiffuse))
			if err != nil {
				return err
			}
		}

		uniforms.MVP = frame.ViewProjection.Mul4(batch.World)
		uniforms.Model = batch.World
		uniforms.Params = glm.Vec4f{}

		if material.Technique.Lit() {
			uniforms.Params[0] = 1
		}

		err = mesh3d.Draw(screen.texture, commands.DrawMesh3dOptions{
			Mesh:     mesh,
			Texture:  texture,
			Uniforms: uniforms,
			CullMode: toWGPUCullMode(material.CullMode),
		})
		if err != nil {
			return fmt.Errorf("draw model %q: %w", batch.Model.Name, err)
		}
	}

	return nil
}

// toWGPUCullMode maps the cull mode of a material to wgpu. Pipelines use clockwise
// front faces, culling counter clockwise faces culls the back faces.
func toWGPUCullMode(mode scene.CullMode) wgpu.CullMode {
	switch mode {
	case scene.CullModeCCW:
		return wgpu.CullModeBack
	case scene.CullModeCW:
		return wgpu.CullModeFront
	default:
		return wgpu.CullModeNone
	}
}
