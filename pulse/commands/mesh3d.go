package commands

import (
	_ "embed"
	"fmt"
	"log/slog"
	"structs"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/panorama/glm"
	"github.com/oliverbestmann/panorama/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed mesh3d.wgsl
var mesh3dShaderCode string

const depthFormat = wgpu.TextureFormatDepth32Float

type Vertex3d struct {
	_ structs.HostLayout

	Position glm.Vec3f
	Normal   glm.Vec3f
	UV       glm.Vec2f
}

// Mesh3d holds the vertex and index buffers of an indexed triangle list on the gpu.
type Mesh3d struct {
	vertices   *wgpu.Buffer
	indices    *wgpu.Buffer
	indexCount uint32
}

func NewMesh3d(ctx *pulse.Context, vertices []Vertex3d, indices []uint32) (*Mesh3d, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("mesh has no geometry")
	}

	bufVertices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Mesh3d.Vertices",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	bufIndices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Mesh3d.Indices",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		bufVertices.Release()
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	slog.Info(
		"Allocate mesh",
		slog.Int("vertexCount", len(vertices)),
		slog.Int("indexCount", len(indices)),
	)

	mesh := &Mesh3d{
		vertices:   bufVertices,
		indices:    bufIndices,
		indexCount: uint32(len(indices)),
	}

	return mesh, nil
}

// Release frees the gpu buffers. Calling it more than once is a no-op.
func (m *Mesh3d) Release() {
	if m.vertices != nil {
		m.vertices.Release()
		m.vertices = nil
	}

	if m.indices != nil {
		m.indices.Release()
		m.indices = nil
	}
}

type Mesh3dUniforms struct {
	_ structs.HostLayout

	MVP   mgl32.Mat4
	Model mgl32.Mat4

	Ambient glm.Vec4f

	// LightDirection in world space, the w component is 1 if the light is enabled
	LightDirection glm.Vec4f
	LightColor     glm.Vec4f

	// Params.x is 1 if the material is lit
	Params glm.Vec4f
}

type DrawMesh3dOptions struct {
	Mesh *Mesh3d

	// Texture to sample from. Uses a white texture if nil.
	Texture *pulse.Texture

	Uniforms Mesh3dUniforms

	CullMode wgpu.CullMode
}

// Mesh3dCommand draws textured and optionally lit meshes with depth testing.
type Mesh3dCommand struct {
	ctx *pulse.Context

	pipelineCache *pulse.PipelineCache[mesh3dRenderPipeline]

	bufUniforms *wgpu.Buffer

	depth *pulse.Texture
	white *pulse.Texture
}

func NewMesh3dCommand(ctx *pulse.Context) (*Mesh3dCommand, error) {
	bufUniforms, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Mesh3d.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(Mesh3dUniforms{})),
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	white, err := pulse.NewTexture(ctx, pulse.NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  1,
		Height: 1,
		Usage:  wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Label:  "Mesh3d.White",
	})
	if err != nil {
		bufUniforms.Release()
		return nil, fmt.Errorf("create fallback texture: %w", err)
	}

	if err := white.WritePixels(ctx, []byte{0xff, 0xff, 0xff, 0xff}); err != nil {
		white.Release()
		bufUniforms.Release()
		return nil, fmt.Errorf("upload fallback texture: %w", err)
	}

	p := &Mesh3dCommand{
		ctx:         ctx,
		bufUniforms: bufUniforms,
		white:       white,
	}

	p.pipelineCache = pulse.NewPipelineCache[mesh3dRenderPipeline](ctx)

	return p, nil
}

// Clear clears the color of the target and resets the depth buffer.
func (p *Mesh3dCommand) Clear(target *pulse.Texture, color pulse.Color) error {
	return p.renderPass(target, wgpu.LoadOpClear, color, func(pass *wgpu.RenderPassEncoder) error {
		return nil
	})
}

func (p *Mesh3dCommand) Draw(target *pulse.Texture, opts DrawMesh3dOptions) error {
	if opts.Mesh == nil {
		return fmt.Errorf("no mesh to draw")
	}

	texture := opts.Texture
	if texture == nil {
		texture = p.white
	}

	pipelineConfig := mesh3dRenderPipeline{
		TargetFormat: target.Format(),
		CullMode:     opts.CullMode,
	}

	pc, err := p.pipelineCache.Get(pipelineConfig)
	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	sampler, err := pulse.CachedSampler(p.ctx.Device, wgpu.SamplerDescriptor{
		Label:         "Mesh3d.Sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("get sampler: %w", err)
	}

	uniforms := opts.Uniforms
	err = p.ctx.WriteBuffer(p.bufUniforms, 0, pulse.AsByteSlice(&uniforms))
	if err != nil {
		return fmt.Errorf("update uniform buffer: %w", err)
	}

	bindGroup, err := p.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Mesh3d.BindGroup",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  p.bufUniforms,
				Size:    wgpu.WholeSize,
			},
			{
				Binding:     1,
				TextureView: texture.View(),
			},
			{
				Binding: 2,
				Sampler: sampler,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	return p.renderPass(target, wgpu.LoadOpLoad, pulse.ColorBlack, func(pass *wgpu.RenderPassEncoder) error {
		pass.SetPipeline(pc.Pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.SetVertexBuffer(0, opts.Mesh.vertices, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(opts.Mesh.indices, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(opts.Mesh.indexCount, 1, 0, 0, 0)
		return nil
	})
}

func (p *Mesh3dCommand) renderPass(target *pulse.Texture, loadOp wgpu.LoadOp, clearColor pulse.Color, record func(pass *wgpu.RenderPassEncoder) error) error {
	depth, err := p.depthTexture(target.Size())
	if err != nil {
		return err
	}

	encoder, err := p.ctx.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassMesh3d",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View(),
				LoadOp:     loadOp,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor.ToWGPU(),
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            depth.View(),
			DepthLoadOp:     loadOp,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	defer func() {
		if pass != nil {
			pass.Release()
		}
	}()

	if err := record(pass); err != nil {
		return err
	}

	if err := pass.End(); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	pass.Release()
	pass = nil

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	p.ctx.Submit(cmdBuffer)

	return nil
}

// depthTexture returns a depth texture matching the given size,
// recreating it when the target was resized.
func (p *Mesh3dCommand) depthTexture(size glm.Vec2u) (*pulse.Texture, error) {
	if p.depth != nil && p.depth.Size() == size {
		return p.depth, nil
	}

	if p.depth != nil {
		p.depth.Release()
		p.depth = nil
	}

	slog.Debug("Allocate depth texture", slog.Any("size", size))

	depth, err := pulse.NewTexture(p.ctx, pulse.NewTextureOptions{
		Format: depthFormat,
		Width:  size[0],
		Height: size[1],
		Usage:  wgpu.TextureUsageRenderAttachment,
		Label:  "Mesh3d.Depth",
	})
	if err != nil {
		return nil, fmt.Errorf("create depth texture: %w", err)
	}

	p.depth = depth

	return depth, nil
}

func (p *Mesh3dCommand) Release() {
	p.pipelineCache.Purge()

	if p.depth != nil {
		p.depth.Release()
		p.depth = nil
	}

	p.white.Release()
	p.bufUniforms.Release()
}

type mesh3dRenderPipeline struct {
	TargetFormat wgpu.TextureFormat
	CullMode     wgpu.CullMode
}

func (conf mesh3dRenderPipeline) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for mesh3d",
		slog.Any("format", conf.TargetFormat),
		slog.Any("cullMode", conf.CullMode),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Mesh3d.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: mesh3dShaderCode},
	})
	if err != nil {
		return nil, fmt.Errorf("compile mesh3d shader: %w", err)
	}

	defer shader.Release()

	stencilKeep := wgpu.StencilFaceState{
		Compare:     wgpu.CompareFunctionAlways,
		FailOp:      wgpu.StencilOperationKeep,
		DepthFailOp: wgpu.StencilOperationKeep,
		PassOp:      wgpu.StencilOperationKeep,
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Mesh3d.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(Vertex3d{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex3d{}.Position)),
							ShaderLocation: 0,
						},
						{
							// normal
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(Vertex3d{}.Normal)),
							ShaderLocation: 1,
						},
						{
							// uv
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Vertex3d{}.UV)),
							ShaderLocation: 2,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,

			// meshes are wound clockwise in a left handed coordinate system
			FrontFace: wgpu.FrontFaceCW,
			CullMode:  conf.CullMode,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      stencilKeep,
			StencilBack:       stencilKeep,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build mesh3d pipeline: %w", err)
	}

	return pipeline, nil
}
