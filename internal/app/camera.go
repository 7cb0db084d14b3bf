// internal/app/camera.go
package app

import (
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/utils"
	"go-aim-trainer/pkg/geom"
)

// CameraController — вид от первого лица. Позиция фиксирована на уровне
// глаз, мышь крутит yaw/pitch, отдача даёт короткий пинок по pitch,
// который плавно возвращается к нулю.
type CameraController struct {
	Yaw   float64
	Pitch float64

	position geom.Vec3
	recoil   float64
}

func NewCameraController() *CameraController {
	return &CameraController{
		position: geom.Vec3{Y: config.CameraEyeHeight},
	}
}

// Update интегрирует дельты мыши и гасит отдачу.
func (c *CameraController) Update(deltaTime, mouseDX, mouseDY float64) {
	c.Yaw = utils.NormalizeAngle(c.Yaw + mouseDX*config.MouseSensitivity)
	c.Pitch = utils.Clamp(c.Pitch-mouseDY*config.MouseSensitivity, -config.MaxPitch, config.MaxPitch)

	t := utils.Clamp(deltaTime*config.RecoilRecovery, 0, 1)
	c.recoil = utils.Lerp(c.recoil, 0, t)
}

// Kick добавляет отдачу от выстрела.
func (c *CameraController) Kick() {
	c.recoil += config.RecoilKick
}

// Position возвращает позицию глаз.
func (c *CameraController) Position() geom.Vec3 {
	return c.position
}

// Forward возвращает направление взгляда с учётом отдачи.
func (c *CameraController) Forward() geom.Vec3 {
	return geom.DirectionFromAngles(c.Yaw, c.Pitch+c.recoil)
}

// Ray возвращает луч прицеливания: из глаз строго через центр экрана.
func (c *CameraController) Ray() geom.Ray {
	return geom.NewRay(c.position, c.Forward())
}

// Muzzle возвращает мировую позицию дула: чуть вперёд, вправо и вниз
// от глаз, чтобы трассер не вылетал прямо из прицела.
func (c *CameraController) Muzzle() geom.Vec3 {
	forward := c.Forward()
	up := geom.Vec3{Y: 1}
	right := forward.Cross(up).Normalize()
	return c.position.
		Add(forward.Scale(config.MuzzleForward)).
		Add(right.Scale(config.MuzzleRight)).
		Sub(up.Scale(config.MuzzleDown))
}
