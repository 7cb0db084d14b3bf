// internal/state/menu_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-aim-trainer/internal/app"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/defs"
	"go-aim-trainer/internal/ui"
)

// MenuState — выбор режима тренировки.
type MenuState struct {
	sm      *StateMachine
	game    *app.Game
	buttons []*ui.Button
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	m := &MenuState{sm: sm, game: game}

	const btnWidth, btnHeight, btnGap = 280, 52, 16
	x := float32(config.ScreenWidth-btnWidth) / 2
	y := float32(config.ScreenHeight)/2 - float32(len(defs.ModeOrder)*(btnHeight+btnGap))/2

	for i, id := range defs.ModeOrder {
		def := defs.ModeDefs[id]
		rect := rl.NewRectangle(x, y+float32(i*(btnHeight+btnGap)), btnWidth, btnHeight)
		m.buttons = append(m.buttons, ui.NewButton(rect, def.Name))
	}
	return m
}

func (m *MenuState) Enter() {
	rl.EnableCursor()
}

func (m *MenuState) Update(deltaTime float64) {
	mousePos := rl.GetMousePosition()

	for i, b := range m.buttons {
		if b.IsClicked(mousePos) {
			m.startMode(defs.ModeOrder[i])
			return
		}
	}

	// Клавиши 1-4 дублируют кнопки, Space запускает текущий режим
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour} {
		if rl.IsKeyPressed(key) {
			m.startMode(defs.ModeOrder[i])
			return
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		m.startMode(m.game.Mode())
	}
}

func (m *MenuState) startMode(mode defs.ModeID) {
	// Первое взаимодействие пользователя — момент для запуска аудио
	m.game.Audio.Start()
	m.game.Audio.PlayClick()
	m.game.SetMode(mode)
	m.sm.SetState(NewPlayState(m.sm, m.game))
}

func (m *MenuState) Draw() {
	title := "AIM TRAINER"
	titleSize := int32(48)
	titleWidth := rl.MeasureText(title, titleSize)
	rl.DrawText(title, (config.ScreenWidth-titleWidth)/2, 120, titleSize, rl.RayWhite)

	mousePos := rl.GetMousePosition()
	for _, b := range m.buttons {
		b.Draw(mousePos)
	}

	hint := "1-4 / click to choose mode, Tab in game returns here"
	hintWidth := rl.MeasureText(hint, 18)
	rl.DrawText(hint, (config.ScreenWidth-hintWidth)/2, config.ScreenHeight-80, 18, rl.Gray)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
