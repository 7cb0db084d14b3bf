// pkg/geom/ray.go
package geom

import "math"

// Ray — луч с началом и единичным направлением.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay создаёт луч, нормализуя направление.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// Point возвращает точку на луче на расстоянии t от начала.
func (r Ray) Point(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectSphere возвращает расстояние до ближайшего пересечения луча
// со сферой. Пересечения позади начала луча не учитываются.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		// Начало луча внутри сферы
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane возвращает расстояние до пересечения луча с бесконечной
// плоскостью, заданной точкой и нормалью. Плоскость двусторонняя.
func (r Ray) IntersectPlane(point, normal Vec3) (float64, bool) {
	denom := r.Dir.Dot(normal)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
