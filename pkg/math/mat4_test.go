package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecApprox(a, b Vec3) bool {
	const eps = 1e-5
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestIdentity(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Identity().MulPoint(v); got != v {
		t.Errorf("Identity().MulPoint(%v) = %v", v, got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(1, 2, 3)

	if got, want := m.MulPoint(Vec3{1, 1, 1}), (Vec3{2, 3, 4}); got != want {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}

	// Directions ignore translation
	if got, want := m.MulDir(Vec3{1, 1, 1}), (Vec3{1, 1, 1}); got != want {
		t.Errorf("MulDir = %v, want %v", got, want)
	}
}

func TestRotateY(t *testing.T) {
	m := RotateY(math32.Pi / 2)

	if got, want := m.MulDir(Vec3{1, 0, 0}), (Vec3{0, 0, -1}); !vecApprox(got, want) {
		t.Errorf("RotateY(90).MulDir(+x) = %v, want %v", got, want)
	}
	if got, want := m.MulDir(Vec3{0, 0, 1}), (Vec3{1, 0, 0}); !vecApprox(got, want) {
		t.Errorf("RotateY(90).MulDir(+z) = %v, want %v", got, want)
	}
	if got, want := m.MulDir(Vec3{0, 1, 0}), (Vec3{0, 1, 0}); !vecApprox(got, want) {
		t.Errorf("RotateY(90).MulDir(+y) = %v, want %v", got, want)
	}
}

func TestMul(t *testing.T) {
	// Rotate then translate vs translate then rotate
	r := RotateY(math32.Pi / 2)
	tr := Translate(1, 0, 0)

	p := Vec3{0, 0, 1}
	if got, want := tr.Mul(r).MulPoint(p), (Vec3{2, 0, 0}); !vecApprox(got, want) {
		t.Errorf("(T*R)p = %v, want %v", got, want)
	}
	if got, want := r.Mul(tr).MulPoint(p), (Vec3{1, 0, -1}); !vecApprox(got, want) {
		t.Errorf("(R*T)p = %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(math32.Pi/4, 4.0/3.0, 0.1, 500)

	// A point on the -Z axis stays centered
	if got := m.MulPoint(Vec3{0, 0, -10}); math32.Abs(got.X) > 1e-6 || math32.Abs(got.Y) > 1e-6 {
		t.Errorf("centered point projects to (%v, %v), want axis", got.X, got.Y)
	}

	for i, v := range m {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("element %d is %v", i, v)
		}
	}
}
