// Package camera provides the free-fly and orbit cameras used by the planet viewers.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cubeplanet/pkg/math"
)

// Step is the fixed simulation step the fly camera integrates with.
const Step float32 = 1.0 / 60.0

// Projection defaults.
const (
	DefaultFOV  float32 = 45
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 2000
)

// Projection returns a perspective matrix for a vertical fov in degrees.
func Projection(fovDeg, aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(fovDeg*gomath.Pi/180, aspect, DefaultNear, DefaultFar)
}

// FlyCamera is a free camera moved in its own frame and turned by yaw and pitch.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32 // radians around world Y
	Pitch    float32 // radians, clamped to [-pi/2, pi/2]

	MovementSpeed float32
	RotationSpeed float32
	InvertY       bool
}

// NewFlyCamera places a camera at position looking at target.
func NewFlyCamera(position, target math.Vec3, movementSpeed, rotationSpeed float32) *FlyCamera {
	c := &FlyCamera{
		Position:      position,
		MovementSpeed: movementSpeed,
		RotationSpeed: rotationSpeed,
	}
	c.LookAt(target)
	return c
}

// LookAt turns the camera toward target without moving it.
func (c *FlyCamera) LookAt(target math.Vec3) {
	dir := target.Sub(c.Position).Normalize()
	if dir == (math.Vec3{}) {
		return
	}
	c.Yaw = float32(gomath.Atan2(float64(-dir.X), float64(-dir.Z)))
	c.Pitch = clampPitch(float32(gomath.Asin(float64(dir.Y))))
}

// Rotation returns the camera orientation: yaw about Y, then pitch about X.
func (c *FlyCamera) Rotation() math.Quat {
	yaw := math.QuatFromAxisAngle(math.UnitY, c.Yaw)
	pitch := math.QuatFromAxisAngle(math.UnitX, c.Pitch)
	return yaw.Mul(pitch).Normalize()
}

// Forward is the view direction (local -Z).
func (c *FlyCamera) Forward() math.Vec3 {
	return c.Rotation().Rotate(math.Vec3{Z: -1})
}

// Right is local +X.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Rotation().Rotate(math.UnitX)
}

// Up is local +Y.
func (c *FlyCamera) Up() math.Vec3 {
	return c.Rotation().Rotate(math.UnitY)
}

// Move advances one step. forward and right are in the camera frame, up is
// world Y; each is -1, 0 or 1 from held keys.
func (c *FlyCamera) Move(forward, right, up float32) {
	d := c.MovementSpeed * Step
	c.Position = c.Position.
		Add(c.Forward().Scale(forward * d)).
		Add(c.Right().Scale(right * d)).
		Add(math.UnitY.Scale(up * d))
}

// Turn applies one step of relative mouse motion in pixels.
func (c *FlyCamera) Turn(dx, dy float32) {
	if c.InvertY {
		dy = -dy
	}
	k := 0.5 * Step * c.RotationSpeed
	c.Yaw -= dx * k
	c.Pitch = clampPitch(c.Pitch - dy*k)
}

// ViewMatrix returns the world-to-view transform.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), c.Up())
}

func clampPitch(p float32) float32 {
	const limit = gomath.Pi / 2
	return max(-limit, min(limit, p))
}

// OrbitCamera circles a center point. The inspector preview uses it.
type OrbitCamera struct {
	Center math.Vec3

	Distance float32
	Pitch    float32 // radians above the equator
	Yaw      float32 // radians around Y

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera with default limits.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        80.0,
		Pitch:           0.4,
		MinDistance:     1.0,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	offset := math.Vec3{
		X: c.Distance * cp * float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * cp * float32(gomath.Cos(float64(c.Yaw))),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.UnitY)
}

// HandleDrag rotates by a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = max(c.MinPitch, min(c.MaxPitch, c.Pitch+deltaY*c.DragSensitivity))
}

// HandleZoom scales distance by a wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = max(c.MinDistance, min(c.MaxDistance, c.Distance))
}

// FitToBounds centers on a box and backs off until its bounding sphere fills
// a vertical fov given in degrees.
func (c *OrbitCamera) FitToBounds(minB, maxB [3]float32, fovDeg float32) {
	lo := math.Vec3FromArray(minB)
	hi := math.Vec3FromArray(maxB)
	c.Center = lo.Add(hi).Scale(0.5)

	radius := hi.Sub(lo).Length() / 2
	half := float64(fovDeg) * gomath.Pi / 360
	c.Distance = radius / float32(gomath.Sin(half)) * 1.1
	c.Distance = max(c.MinDistance, min(c.MaxDistance, c.Distance))
}
