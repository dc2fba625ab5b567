package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/cubeplanet/pkg/math"
)

func near(a, b math.Vec3, eps float32) bool {
	return a.Distance(b) <= eps
}

func TestFlyCameraLookAt(t *testing.T) {
	tests := []struct {
		name   string
		pos    math.Vec3
		target math.Vec3
	}{
		{"down the -Z axis", math.Vec3{}, math.Vec3{Z: -10}},
		{"along +X", math.Vec3{}, math.Vec3{X: 5}},
		{"original start", math.Vec3{Y: 20, Z: 10}, math.Vec3{}},
		{"toward planet", math.Vec3{Y: 20, Z: 10}, math.Vec3{Y: 10, Z: -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFlyCamera(tt.pos, tt.target, 2, 1.7)
			want := tt.target.Sub(tt.pos).Normalize()
			if got := c.Forward(); !near(got, want, 1e-4) {
				t.Errorf("Forward() = %v, want %v", got, want)
			}
		})
	}
}

func TestFlyCameraMove(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{Z: -1}, 2, 1.7)
	step := 2 * Step

	c.Move(1, 0, 0)
	if !near(c.Position, math.Vec3{Z: -step}, 1e-6) {
		t.Errorf("forward: position = %v", c.Position)
	}

	c.Position = math.Vec3{}
	c.Move(0, 1, 0)
	if !near(c.Position, math.Vec3{X: step}, 1e-6) {
		t.Errorf("strafe right: position = %v", c.Position)
	}

	c.Position = math.Vec3{}
	c.Move(0, 0, -1)
	if !near(c.Position, math.Vec3{Y: -step}, 1e-6) {
		t.Errorf("down: position = %v", c.Position)
	}
}

func TestFlyCameraUpIsWorldY(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{X: 1, Y: -1}, 2, 1.7)
	c.Move(0, 0, 1)
	if !near(c.Position, math.Vec3{Y: 2 * Step}, 1e-6) {
		t.Errorf("up while pitched: position = %v", c.Position)
	}
}

func TestFlyCameraPitchClamp(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{Z: -1}, 2, 1.7)

	for i := 0; i < 1000; i++ {
		c.Turn(0, -100)
	}
	if c.Pitch > gomath.Pi/2+1e-6 {
		t.Errorf("pitch = %v exceeds pi/2", c.Pitch)
	}
	if c.Pitch < 1.5 {
		t.Errorf("pitch = %v, expected near pi/2 after looking up", c.Pitch)
	}

	for i := 0; i < 1000; i++ {
		c.Turn(0, 100)
	}
	if c.Pitch < -gomath.Pi/2-1e-6 {
		t.Errorf("pitch = %v below -pi/2", c.Pitch)
	}
}

func TestFlyCameraTurnYaw(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{Z: -1}, 2, 1.7)
	c.Turn(10, 0)

	want := -10 * 0.5 * Step * 1.7
	if gomath.Abs(float64(c.Yaw-want)) > 1e-6 {
		t.Errorf("yaw = %v, want %v", c.Yaw, want)
	}
	// Mouse right turns the view right.
	if c.Forward().X <= 0 {
		t.Errorf("forward after turning right = %v", c.Forward())
	}
}

func TestFlyCameraViewMatrix(t *testing.T) {
	c := NewFlyCamera(math.Vec3{Y: 20, Z: 10}, math.Vec3{}, 2, 1.7)
	view := c.ViewMatrix()

	got := view.TransformVec3(c.Position)
	if !near(got, math.Vec3{}, 1e-4) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	ahead := view.TransformVec3(c.Position.Add(c.Forward().Scale(5)))
	if !near(ahead, math.Vec3{Z: -5}, 1e-3) {
		t.Errorf("point ahead in view space = %v, want (0, 0, -5)", ahead)
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}
	c.Distance = 10
	c.Pitch = 0
	c.Yaw = 0

	if got := c.Position(); !near(got, math.Vec3{X: 1, Y: 2, Z: 13}, 1e-5) {
		t.Errorf("Position() = %v", got)
	}

	c.Pitch = 0.7
	c.Yaw = 2.1
	if d := c.Position().Distance(c.Center); gomath.Abs(float64(d-10)) > 1e-4 {
		t.Errorf("distance from center = %v, want 10", d)
	}
}

func TestOrbitCameraLimits(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, c.MinPitch)
	}

	for i := 0; i < 200; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MinDistance)
	}
}

func TestOrbitCameraFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds([3]float32{-20, -10, -70}, [3]float32{20, 30, -30}, 45)

	if !near(c.Center, math.Vec3{Y: 10, Z: -50}, 1e-5) {
		t.Errorf("center = %v", c.Center)
	}
	radius := float32(gomath.Sqrt(3 * 40 * 40 / 4.0))
	if c.Distance <= radius {
		t.Errorf("distance %v does not clear bounding radius %v", c.Distance, radius)
	}
}
