// internal/app/camera_test.go
package app

import (
	"math"
	"testing"

	"go-aim-trainer/internal/config"
)

func TestCameraLooksForwardByDefault(t *testing.T) {
	c := NewCameraController()
	f := c.Forward()
	if math.Abs(f.X) > 1e-9 || math.Abs(f.Y) > 1e-9 || math.Abs(f.Z+1) > 1e-9 {
		t.Errorf("default forward = %v, want (0,0,-1)", f)
	}
	if pos := c.Position(); pos.Y != config.CameraEyeHeight {
		t.Errorf("eye height = %v, want %v", pos.Y, config.CameraEyeHeight)
	}
}

func TestCameraPitchClamped(t *testing.T) {
	c := NewCameraController()
	// Резко задираем взгляд вверх
	c.Update(0.016, 0, -100000)
	if c.Pitch > config.MaxPitch+1e-9 {
		t.Errorf("pitch = %v exceeds clamp %v", c.Pitch, config.MaxPitch)
	}
	c.Update(0.016, 0, 200000)
	if c.Pitch < -config.MaxPitch-1e-9 {
		t.Errorf("pitch = %v below clamp %v", c.Pitch, -config.MaxPitch)
	}
}

func TestRecoilDecays(t *testing.T) {
	c := NewCameraController()
	c.Kick()
	kicked := c.Forward().Y
	if kicked <= 0 {
		t.Fatalf("recoil did not lift the view: forward.Y = %v", kicked)
	}

	for i := 0; i < 120; i++ {
		c.Update(1.0/60, 0, 0)
	}
	settled := c.Forward().Y
	if math.Abs(settled) >= math.Abs(kicked)/10 {
		t.Errorf("recoil did not settle: forward.Y = %v", settled)
	}
}

func TestAimRayIsUnit(t *testing.T) {
	c := NewCameraController()
	c.Update(0.016, 300, -80)
	ray := c.Ray()
	if math.Abs(ray.Dir.Length()-1) > 1e-9 {
		t.Errorf("ray direction length = %v, want 1", ray.Dir.Length())
	}
	if ray.Origin != c.Position() {
		t.Errorf("ray origin = %v, want eye position", ray.Origin)
	}
}

func TestMuzzleOffsetFromEye(t *testing.T) {
	c := NewCameraController()
	m := c.Muzzle()
	if m == c.Position() {
		t.Error("muzzle coincides with the eye")
	}
	// Дуло смещено вперёд по взгляду
	if m.Z >= c.Position().Z {
		t.Errorf("muzzle Z = %v, want in front of eye %v", m.Z, c.Position().Z)
	}
}
