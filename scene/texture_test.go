package scene

import (
	"errors"
	"image"
	"testing"
)

func TestTexture2DSetData(t *testing.T) {
	texture := NewTexture2D("panorama")

	if texture.Version() != 0 || texture.Image() != nil {
		t.Fatalf("new texture must not have data")
	}

	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	if err := texture.SetData(img); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if texture.Width() != 64 || texture.Height() != 32 {
		t.Fatalf("unexpected size %dx%d", texture.Width(), texture.Height())
	}

	version := texture.Version()
	if version == 0 {
		t.Fatalf("version not updated")
	}

	// not a power of two, only logs a warning
	if err := texture.SetData(image.NewRGBA(image.Rect(0, 0, 30, 20))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if texture.Version() == version {
		t.Fatalf("version not updated")
	}
}

func TestTexture2DSetDataRejectsInvalidImages(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		want error
	}{
		{"empty", image.NewRGBA(image.Rectangle{}), ErrTextureEmpty},
		{"too wide", image.NewGray(image.Rect(0, 0, MaxTextureSize+1, 1)), ErrTextureTooLarge},
		{"too high", image.NewGray(image.Rect(0, 0, 1, MaxTextureSize*2)), ErrTextureTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			texture := NewTexture2D(tc.name)

			err := texture.SetData(tc.img)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}

			if texture.Image() != nil {
				t.Fatalf("failed SetData must not keep the image")
			}
		})
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for value, want := range map[int]bool{0: false, 1: true, 2: true, 3: false, 1024: true, 2048: true, 2047: false, -2: false} {
		if got := isPowerOfTwo(value); got != want {
			t.Fatalf("isPowerOfTwo(%d) = %v", value, got)
		}
	}
}
