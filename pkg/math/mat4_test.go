package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	if want := (Vec3{11, 22, 33}); got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointScale(t *testing.T) {
	got := Scale(2, 2, 2).TransformPoint(Vec3{1, 2, 3})
	if want := (Vec3{2, 4, 6}); got != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	got := Translate(5, 5, 5).TransformDirection(Vec3{1, 0, 0})
	if want := (Vec3{1, 0, 0}); got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestRotateZ90(t *testing.T) {
	got := RotateZ(math.Pi / 2).TransformPoint(Vec3{1, 0, 0})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 || math.Abs(got.Z) > 1e-12 {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", got)
	}
}

func TestRotateY90(t *testing.T) {
	got := RotateY(math.Pi / 2).TransformPoint(Vec3{1, 0, 0})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 || math.Abs(got.Z+1) > 1e-12 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateX90(t *testing.T) {
	got := RotateX(math.Pi / 2).TransformPoint(Vec3{0, 1, 0})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 || math.Abs(got.Z-1) > 1e-12 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(math.Pi/4, 1, 0.1, 100)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestOrthoMapsVolumeToNDC(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 0.5, 10)
	got := m.TransformPoint(Vec3{2, 1, -0.5})
	if math.Abs(got.X-1) > 1e-12 || math.Abs(got.Y-1) > 1e-12 || math.Abs(got.Z+1) > 1e-12 {
		t.Errorf("Ortho corner: got %v, want (1, 1, -1)", got)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	if got := m.TransformPoint(eye); got.Length() > 1e-12 {
		t.Errorf("LookAt(eye) = %v, want origin", got)
	}
	// The target lies straight ahead on -Z.
	got := m.TransformPoint(Vec3{})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 || math.Abs(got.Z+5) > 1e-12 {
		t.Errorf("LookAt(center) = %v, want (0, 0, -5)", got)
	}
}
