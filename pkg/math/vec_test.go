package math

import (
	"math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if l := n.Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("Vec2.Normalize().Length() = %v, want 1", l)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero Vec2 normalize = %v, want zero", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got, want := x.Cross(y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3MulNeg(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got, want := v.Mul(Vec3{2, 2, 2}), (Vec3{2, -4, 6}); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
	if got, want := v.Neg(), (Vec3{-1, 2, -3}); got != want {
		t.Errorf("Neg = %v, want %v", got, want)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec3{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
		n           int
		want        []float64
	}{
		{"empty", 0, 1, 0, nil},
		{"single", 2, 5, 1, []float64{2}},
		{"five", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"descending", 1, -1, 3, []float64{1, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.start, tt.stop, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinspaceEndpoint(t *testing.T) {
	got := Linspace(0, 2*math.Pi, 80)
	if got[79] != 2*math.Pi {
		t.Errorf("last sample = %v, want exactly 2π", got[79])
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned a value outside the range or altered an in-range value")
	}
}

func TestStrideIndices(t *testing.T) {
	got := StrideIndices(80, 4)
	if len(got) != 21 || got[0] != 0 || got[19] != 76 || got[20] != 79 {
		t.Errorf("StrideIndices(80, 4) = %v", got)
	}
	tests := []struct {
		n, stride int
		want      []int
	}{
		{3, 1, []int{0, 1, 2}},
		{3, 5, []int{0, 2}},
		{2, 0, []int{0, 1}},
		{5, 4, []int{0, 4}},
	}
	for _, tt := range tests {
		got := StrideIndices(tt.n, tt.stride)
		if len(got) != len(tt.want) {
			t.Errorf("StrideIndices(%d, %d) = %v, want %v", tt.n, tt.stride, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("StrideIndices(%d, %d) = %v, want %v", tt.n, tt.stride, got, tt.want)
				break
			}
		}
	}
	if StrideIndices(0, 4) != nil {
		t.Error("StrideIndices(0, 4) should be nil")
	}
}
