// internal/ui/crosshair.go
package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-aim-trainer/internal/config"
)

// Crosshair — перекрестие в центре экрана с маркером попадания.
// Маркер вспыхивает при поражении мишени и гаснет с затуханием.
type Crosshair struct {
	flashTimer float64
}

func NewCrosshair() *Crosshair {
	return &Crosshair{}
}

// Update гасит таймер вспышки.
func (c *Crosshair) Update(deltaTime float64) {
	if c.flashTimer > 0 {
		c.flashTimer -= deltaTime
	}
}

// Flash запускает маркер попадания.
func (c *Crosshair) Flash() {
	c.flashTimer = config.HitMarkerDuration
}

// Draw рисует перекрестие; прицел всегда в геометрическом центре окна.
func (c *Crosshair) Draw() {
	cx := int32(config.ScreenWidth / 2)
	cy := int32(config.ScreenHeight / 2)
	gap := int32(config.CrosshairGap)
	size := int32(config.CrosshairSize)
	col := toRL(config.CrosshairColor)

	rl.DrawLine(cx-size, cy, cx-gap, cy, col)
	rl.DrawLine(cx+gap, cy, cx+size, cy, col)
	rl.DrawLine(cx, cy-size, cx, cy-gap, col)
	rl.DrawLine(cx, cy+gap, cx, cy+size, col)
	rl.DrawPixel(cx, cy, col)

	if c.flashTimer > 0 {
		// Диагональный крест, слегка раздувающийся в начале вспышки
		elapsed := config.HitMarkerDuration - c.flashTimer
		scale := 1.0 + 0.3*math.Exp(-elapsed*8)
		d := int32(float64(gap+6) * scale)
		markerCol := toRL(config.HitMarkerColor)
		rl.DrawLine(cx-d, cy-d, cx-gap, cy-gap, markerCol)
		rl.DrawLine(cx+gap, cy+gap, cx+d, cy+d, markerCol)
		rl.DrawLine(cx-d, cy+d, cx-gap, cy+gap, markerCol)
		rl.DrawLine(cx+gap, cy-gap, cx+d, cy-d, markerCol)
	}
}
