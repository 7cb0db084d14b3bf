// pkg/geom/vec.go
package geom

import "math"

// Vec3 — точка или направление в трёхмерном пространстве.
type Vec3 struct {
	X, Y, Z float64
}

// Add возвращает сумму двух векторов.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub возвращает разность двух векторов.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale возвращает вектор, умноженный на скаляр.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot возвращает скалярное произведение.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross возвращает векторное произведение.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length возвращает длину вектора.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор возвращается как есть.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// DirectionFromAngles возвращает единичный вектор направления взгляда.
// yaw = 0 смотрит вдоль -Z, положительный pitch поднимает взгляд вверх.
func DirectionFromAngles(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * cp,
	}
}
