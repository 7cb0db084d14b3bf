// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	FontSize   int32
}

// NewButton создает новую кнопку со стандартной палитрой.
func NewButton(rect rl.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.RayWhite,
		BgColor:    rl.NewColor(40, 44, 58, 255),
		HoverColor: rl.NewColor(64, 72, 94, 255),
		FontSize:   22,
	}
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	textX := int32(b.Rect.X) + (int32(b.Rect.Width)-textWidth)/2
	textY := int32(b.Rect.Y) + (int32(b.Rect.Height)-b.FontSize)/2

	rl.DrawText(b.Text, textX, textY, b.FontSize, b.TextColor)
}
