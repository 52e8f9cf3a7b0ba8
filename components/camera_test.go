package components

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func nearVec(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestCameraBasis(t *testing.T) {
	tests := []struct {
		yaw     float64
		forward mgl64.Vec3
		right   mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{90, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{180, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		cam := CameraData{Yaw: tt.yaw, Pitch: 45}
		if got := cam.ForwardBasis(); !nearVec(got, tt.forward) {
			t.Errorf("yaw %v: forward = %v, want %v", tt.yaw, got, tt.forward)
		}
		if got := cam.RightBasis(); !nearVec(got, tt.right) {
			t.Errorf("yaw %v: right = %v, want %v", tt.yaw, got, tt.right)
		}
	}
}

func TestScreenRoundTrip(t *testing.T) {
	const w, h = 960.0, 540.0
	cam := CameraData{
		FieldOfView: 60,
		Position:    mgl64.Vec3{0, 5, -8},
		Rotation:    mgl64.QuatRotate(mgl64.DegToRad(25), mgl64.Vec3{1, 0, 0}),
	}

	origin, dir := cam.ScreenPointToRay(w/2, h/2, w, h)
	if origin != cam.Position {
		t.Errorf("ray origin = %v, want camera position", origin)
	}
	want := mgl64.Vec3{0, -math.Sin(mgl64.DegToRad(25)), math.Cos(mgl64.DegToRad(25))}
	if !nearVec(dir, want) {
		t.Errorf("centre ray = %v, want %v", dir, want)
	}

	p := mgl64.Vec3{2, 0.5, 4}
	x, y, ok := cam.WorldToScreen(p, w, h)
	if !ok {
		t.Fatal("point in front of the camera reported off screen")
	}
	_, dir = cam.ScreenPointToRay(x, y, w, h)
	if got := p.Sub(cam.Position).Normalize(); !nearVec(dir, got) {
		t.Errorf("ray through projected point = %v, want %v", dir, got)
	}

	if _, _, ok := cam.WorldToScreen(mgl64.Vec3{0, 5, -20}, w, h); ok {
		t.Error("point behind the camera reported on screen")
	}
}
