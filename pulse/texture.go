package pulse

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/oliverbestmann/panorama/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	region Rectangle2u

	// true if this texture owns the wgpu resources
	owned bool
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32

	// Usage defaults to binding, render attachment and copy
	Usage wgpu.TextureUsage

	Label string
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	usage := opts.Usage
	if usage == 0 {
		// allow to do almost everything with this texture
		usage = wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageRenderAttachment |
			wgpu.TextureUsageCopyDst |
			wgpu.TextureUsageCopySrc
	}

	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,
		Dimension:     wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},
		Usage: usage,
	}

	return NewTextureFromDesc(ctx, desc)
}

// NewTextureFromDesc gives you full control and creates a texture directly from
// a texture descriptor
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", desc.Label, err)
	}

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, fmt.Errorf("create texture view %q: %w", desc.Label, err)
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
		format:      desc.Format,
		owned:       true,
		region: RectangleFromSize(
			glm.Vec2u{},
			glm.Vec2u{desc.Size.Width, desc.Size.Height},
		),
	}

	return t, nil
}

// WrapTexture creates a texture from an existing wgpu.Texture and wgpu.TextureView.
// The returned Texture does not take ownership of the wgpu resources.
func WrapTexture(texture *wgpu.Texture, textureView *wgpu.TextureView) *Texture {
	return &Texture{
		texture:     texture,
		textureView: textureView,
		format:      texture.GetFormat(),
		region: RectangleFromSize(
			glm.Vec2u{},
			glm.Vec2u{texture.GetWidth(), texture.GetHeight()},
		),
	}
}

func (t *Texture) Width() uint32 {
	return t.region.Width()
}

func (t *Texture) Height() uint32 {
	return t.region.Height()
}

func (t *Texture) Size() glm.Vec2u {
	return t.region.Size()
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

// Release releases the texture and its view. This is a no-op for wrapped textures.
// You must be sure to not use the texture after calling release.
func (t *Texture) Release() {
	if t.owned {
		t.textureView.Release()
		t.texture.Release()
		t.owned = false
	}
}

func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	rect := RectangleFromXYWH(0, 0, t.Width(), t.Height())

	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: rect,
	})
}

type WritePixelsOptions struct {
	Pixels   []byte
	Region   Rectangle2u
	Stride   uint32
	MipLevel uint32
}

func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	// fail if not in rect
	if !t.region.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, t.region)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: opts.MipLevel,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	// send data to the gpu
	err := ctx.WriteTexture(dest, opts.Pixels, layout, size)
	if err != nil {
		return fmt.Errorf("copy image data to texture: %w", err)
	}

	return nil
}

// ToRGBA converts the image to tightly packed rgba pixels,
// ready to be uploaded with WritePixels.
func ToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}

	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, iw, ih))

	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	return rgba
}

func NewTextureFromImage(ctx *Context, src image.Image, label string) (*Texture, error) {
	rgba := ToRGBA(src)

	t, err := NewTexture(ctx, NewTextureOptions{
		// TODO handle srgb import
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  uint32(rgba.Rect.Dx()),
		Height: uint32(rgba.Rect.Dy()),
		Usage:  wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Label:  label,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	err = t.WritePixels(ctx, rgba.Pix)
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	return t, nil
}
