package panorama

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/panorama/scene"
)

const (
	// Sensitivity converts touch movement into degrees
	Sensitivity float32 = 0.05

	MaxPitch float32 = 90
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// CameraOrientation holds the accumulated camera angles in degrees.
// Pitch stays within [-MaxPitch, MaxPitch], Roll is always zero after Apply.
type CameraOrientation struct {
	Yaw   float32
	Pitch float32
	Roll  float32
}

// Apply accumulates a touch movement.
func (o *CameraOrientation) Apply(dx, dy float32) {
	// the explicit float32 conversions round the product and prevent a fused multiply add
	o.Yaw += float32(Sensitivity * dx)
	o.Pitch = mgl32.Clamp(o.Pitch+float32(Sensitivity*dy), -MaxPitch, MaxPitch)
	o.Roll = 0
}

// Rotation builds the camera rotation from the euler angles (-Pitch, -Yaw, Roll),
// applying roll first, then pitch, then yaw.
func (o CameraOrientation) Rotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(-o.Yaw), axisY)
	pitch := mgl32.QuatRotate(mgl32.DegToRad(-o.Pitch), axisX)
	roll := mgl32.QuatRotate(mgl32.DegToRad(o.Roll), axisZ)

	return yaw.Mul(pitch).Mul(roll)
}

// UpdateCamera applies the touch movement to the orientation and rotates the camera node.
func UpdateCamera(orientation *CameraOrientation, camera *scene.Node, dx, dy float32) {
	orientation.Apply(dx, dy)
	camera.SetRotation(orientation.Rotation())
}
