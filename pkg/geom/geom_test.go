// pkg/geom/geom_test.go
package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestVecOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -2, 1}

	if got := a.Add(b); got != (Vec3{5, 0, 4}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 4, 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 3 {
		t.Errorf("Dot = %v, want 3", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("x cross y = %v, want +z", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}

	// Нулевой вектор не должен давать NaN
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("zero normalize = %v", zero)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Vec3{0, 0, 0}, Vec3{3, 4, 0}); !almostEqual(d, 5) {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestDirectionFromAngles(t *testing.T) {
	// yaw 0, pitch 0 смотрит вдоль -Z
	f := DirectionFromAngles(0, 0)
	if !almostEqual(f.X, 0) || !almostEqual(f.Y, 0) || !almostEqual(f.Z, -1) {
		t.Errorf("forward = %v, want (0,0,-1)", f)
	}

	// Прямо вверх
	up := DirectionFromAngles(0, math.Pi/2)
	if !almostEqual(up.Y, 1) {
		t.Errorf("up.Y = %v, want 1", up.Y)
	}

	if !almostEqual(DirectionFromAngles(1.2, -0.7).Length(), 1) {
		t.Error("direction is not unit length")
	}
}

func TestIntersectSphere(t *testing.T) {
	ray := NewRay(Vec3{}, Vec3{Z: -1})

	// Сфера радиуса 0.5 в пяти единицах по лучу
	d, ok := ray.IntersectSphere(Vec3{Z: -5}, 0.5)
	if !ok {
		t.Fatal("expected hit")
	}
	if !almostEqual(d, 4.5) {
		t.Errorf("distance = %v, want 4.5", d)
	}

	// Сфера в стороне от луча
	if _, ok := ray.IntersectSphere(Vec3{X: 3, Z: -5}, 0.5); ok {
		t.Error("expected miss for offset sphere")
	}

	// Сфера позади начала луча
	if _, ok := ray.IntersectSphere(Vec3{Z: 5}, 0.5); ok {
		t.Error("expected miss for sphere behind origin")
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	ray := NewRay(Vec3{}, Vec3{Z: -1})
	d, ok := ray.IntersectSphere(Vec3{}, 2)
	if !ok {
		t.Fatal("expected exit hit from inside the sphere")
	}
	if !almostEqual(d, 2) {
		t.Errorf("distance = %v, want 2", d)
	}
}

func TestIntersectPlane(t *testing.T) {
	// Луч из (0, 2, 0) вниз в пол y=0
	ray := NewRay(Vec3{Y: 2}, Vec3{Y: -1})
	d, ok := ray.IntersectPlane(Vec3{}, Vec3{Y: 1})
	if !ok {
		t.Fatal("expected hit")
	}
	if !almostEqual(d, 2) {
		t.Errorf("distance = %v, want 2", d)
	}

	// Параллельный лучу
	ray = NewRay(Vec3{Y: 2}, Vec3{X: 1})
	if _, ok := ray.IntersectPlane(Vec3{}, Vec3{Y: 1}); ok {
		t.Error("expected miss for parallel ray")
	}

	// Плоскость позади
	ray = NewRay(Vec3{Y: 2}, Vec3{Y: 1})
	if _, ok := ray.IntersectPlane(Vec3{}, Vec3{Y: 1}); ok {
		t.Error("expected miss for plane behind origin")
	}
}

func TestRayPoint(t *testing.T) {
	ray := NewRay(Vec3{1, 0, 0}, Vec3{0, 0, -2}) // направление нормализуется
	p := ray.Point(3)
	if !almostEqual(p.X, 1) || !almostEqual(p.Z, -3) {
		t.Errorf("Point(3) = %v", p)
	}
}
