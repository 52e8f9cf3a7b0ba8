package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxVec(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestLookRotationFacesDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl64.Vec3
	}{
		{"forward", mgl64.Vec3{0, 0, 1}},
		{"right", mgl64.Vec3{1, 0, 0}},
		{"back", mgl64.Vec3{0, 0, -1}},
		{"diagonal", mgl64.Vec3{-1, 0, 1}.Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := LookRotation(tt.dir)
			if got := Forward(q); !approxVec(got, tt.dir) {
				t.Errorf("Forward() = %v, want %v", got, tt.dir)
			}
		})
	}
}

func TestRightIsClockwiseOfForward(t *testing.T) {
	q := LookRotation(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{0, 0, -1}
	if got := Right(q); !approxVec(got, want) {
		t.Errorf("Right() = %v, want %v", got, want)
	}
}

func TestSlerpShortestTakesShortArc(t *testing.T) {
	a := YawRotation(mgl64.DegToRad(170))
	b := YawRotation(mgl64.DegToRad(-170))

	mid := SlerpShortest(a, b, 0.5)
	yaw := YawOf(Forward(mid))
	if math.Abs(math.Abs(yaw)-math.Pi) > 1e-6 {
		t.Errorf("midpoint yaw = %v, want ±π", yaw)
	}
}

func TestSlerpShortestClampsFactor(t *testing.T) {
	a := YawRotation(0)
	b := YawRotation(math.Pi / 2)

	got := Forward(SlerpShortest(a, b, 7))
	if !approxVec(got, Forward(b)) {
		t.Errorf("overshoot slerp = %v, want %v", got, Forward(b))
	}
}

func TestSafeNormalizeZero(t *testing.T) {
	if got := SafeNormalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("SafeNormalize(0) = %v, want zero", got)
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(10, 0, 0.25); got != 7.5 {
		t.Errorf("Approach = %v, want 7.5", got)
	}
	if got := Approach(10, 0, 2); got != 0 {
		t.Errorf("Approach clamp = %v, want 0", got)
	}
}
