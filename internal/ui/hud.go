// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/stats"
)

// HUD — панель со счётом и статистикой текущего забега.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

// Draw рисует панель в левом верхнем углу.
func (h *HUD) Draw(modeName string, score int, session *stats.Session) {
	pad := int32(config.HUDPadding)
	fs := int32(config.HUDFontSize)
	lineH := fs + 6

	rl.DrawRectangle(pad-6, pad-6, 240, lineH*4+12, toRL(config.PanelColor))

	rl.DrawText(modeName, pad, pad, fs, toRL(config.TextLightColor))
	rl.DrawText(fmt.Sprintf("Score: %d", score), pad, pad+lineH, fs, toRL(config.TextLightColor))
	rl.DrawText(fmt.Sprintf("Shots: %d", session.Shots), pad, pad+lineH*2, fs, toRL(config.TextDimColor))
	rl.DrawText(fmt.Sprintf("Accuracy: %.0f%%", session.Accuracy()*100), pad, pad+lineH*3, fs, toRL(config.TextDimColor))
}

// toRL преобразует стандартный color.RGBA в rl.Color
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
