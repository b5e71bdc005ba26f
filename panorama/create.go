package panorama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/panorama/scene"
)

// ImageURL points to the equirectangular panorama shown by the viewer.
// Both dimensions of the image must be a power of two.
const ImageURL = "https://video.360cities.net/littleplanet-360-imagery/360Level43Lounge-8K-stable-noaudio-2048x1024.jpg"

var (
	ErrImageDecode  = errors.New("decode image")
	ErrTextureBuild = errors.New("build texture")
)

const (
	roomScale = 2
	zoneSize  = 300
	cameraFov = 50
)

// LoadedScene is the result of CreateScene.
type LoadedScene struct {
	Scene *scene.Scene

	Room    *scene.StaticModel
	Texture *scene.Texture2D

	CameraNode *scene.Node
	Camera     *scene.Camera
}

// CreateScene builds the panorama scene: a sphere textured with the image
// downloaded from url, an ambient zone, a light and a camera in the center.
// The download is canceled with ctx.
func CreateScene(ctx context.Context, resources *scene.ResourceCache, client *http.Client, url string) (*LoadedScene, error) {
	s := scene.NewScene()
	scene.CreateComponent(s.Node, scene.NewOctree())

	room := s.CreateChild("room")
	room.SetPosition(mgl32.Vec3{0, 0, 0})
	room.SetRotation(mgl32.QuatIdent())
	room.SetScale(roomScale)

	sphere, err := resources.GetModel(scene.PathSphere)
	if err != nil {
		return nil, fmt.Errorf("load sphere: %w", err)
	}

	roomModel := scene.CreateComponent(room, scene.NewStaticModel())
	roomModel.SetModel(sphere)

	zone := scene.CreateComponent(s.CreateChild("zone"), scene.NewZone())
	zone.SetBoundingBox(scene.BoundingBoxOf(
		mgl32.Vec3{-zoneSize, -zoneSize, -zoneSize},
		mgl32.Vec3{zoneSize, zoneSize, zoneSize},
	))
	zone.SetAmbientColor(scene.ColorRGB(1, 1, 1))

	buf, err := download(ctx, client, url)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	slog.Info(
		"Decoded image",
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)

	texture := scene.NewTexture2D(url)
	if err := texture.SetData(img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureBuild, err)
	}

	material := scene.NewMaterial()
	material.SetTexture(scene.TextureUnitDiffuse, texture)
	material.SetTechnique(scene.TechniqueDiffNormal)
	material.SetCullMode(scene.CullModeCW)
	roomModel.SetMaterial(material)

	light := s.CreateChild("light")
	light.SetDirection(mgl32.Vec3{0, 0, 0})
	scene.CreateComponent(light, scene.NewLight()).SetLightType(scene.LightDirectional)

	cameraNode := s.CreateChild("camera")
	cameraNode.LookAt(mgl32.Vec3{0, 1, 2}, mgl32.Vec3{0, 1, 0})

	camera := scene.CreateComponent(cameraNode, scene.NewCamera())
	camera.SetFov(cameraFov)

	loaded := &LoadedScene{
		Scene:      s,
		Room:       roomModel,
		Texture:    texture,
		CameraNode: cameraNode,
		Camera:     camera,
	}

	return loaded, nil
}
