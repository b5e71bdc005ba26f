package scene

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/bits"
	"sync/atomic"
)

// MaxTextureSize is the largest supported width or height of a texture.
const MaxTextureSize = 8192

var (
	ErrTextureEmpty    = errors.New("texture image is empty")
	ErrTextureTooLarge = errors.New("texture image too large")
)

var textureVersion atomic.Uint64

// Texture2D holds the pixel data of a two dimensional texture on the cpu side.
// The renderer uploads it on first use and again after every call to SetData.
type Texture2D struct {
	Name string

	image   image.Image
	version uint64
}

func NewTexture2D(name string) *Texture2D {
	return &Texture2D{Name: name}
}

// SetData replaces the pixel data of the texture.
func (t *Texture2D) SetData(img image.Image) error {
	size := img.Bounds().Size()

	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("set data of %q: %w", t.Name, ErrTextureEmpty)
	}

	if size.X > MaxTextureSize || size.Y > MaxTextureSize {
		return fmt.Errorf("set data of %q, size %dx%d: %w", t.Name, size.X, size.Y, ErrTextureTooLarge)
	}

	if !isPowerOfTwo(size.X) || !isPowerOfTwo(size.Y) {
		slog.Warn(
			"Texture size is not a power of two",
			slog.String("texture", t.Name),
			slog.Int("width", size.X),
			slog.Int("height", size.Y),
		)
	}

	t.image = img
	t.version = textureVersion.Add(1)

	return nil
}

// Image returns the pixel data or nil, if SetData was not called yet.
func (t *Texture2D) Image() image.Image {
	return t.image
}

// Version changes every time the pixel data changes. Zero means no data.
func (t *Texture2D) Version() uint64 {
	return t.version
}

func (t *Texture2D) Width() int {
	if t.image == nil {
		return 0
	}

	return t.image.Bounds().Dx()
}

func (t *Texture2D) Height() int {
	if t.image == nil {
		return 0
	}

	return t.image.Bounds().Dy()
}

func isPowerOfTwo(value int) bool {
	return value > 0 && bits.OnesCount(uint(value)) == 1
}
