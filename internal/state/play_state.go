// internal/state/play_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-aim-trainer/internal/app"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/defs"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/ui"
)

// PlayState — сама тренировка: захваченный курсор, обзор мышью,
// выстрел по левой кнопке.
type PlayState struct {
	sm        *StateMachine
	game      *app.Game
	crosshair *ui.Crosshair
	hud       *ui.HUD
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	p := &PlayState{
		sm:        sm,
		game:      game,
		crosshair: ui.NewCrosshair(),
		hud:       ui.NewHUD(),
	}
	game.EventDispatcher.Subscribe(event.TargetHit, p)
	return p
}

// OnEvent реализует интерфейс event.Listener: вспышка маркера попадания.
func (p *PlayState) OnEvent(e event.Event) {
	if e.Type == event.TargetHit {
		p.crosshair.Flash()
	}
}

func (p *PlayState) Enter() {
	rl.DisableCursor()
}

func (p *PlayState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyTab) {
		p.sm.SetState(NewMenuState(p.sm, p.game))
		return
	}

	// Клавиши 1-4 переключают режим прямо в забеге
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour} {
		if rl.IsKeyPressed(key) {
			p.game.SetMode(defs.ModeOrder[i])
		}
	}

	md := rl.GetMouseDelta()
	p.game.Camera.Update(deltaTime, float64(md.X), float64(md.Y))

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		p.game.Fire()
	}

	p.game.Update(deltaTime)
	p.crosshair.Update(deltaTime)
}

func (p *PlayState) Draw() {
	p.game.RenderSystem.Draw(p.rlCamera())

	p.crosshair.Draw()
	def := defs.ModeDefs[p.game.Mode()]
	p.hud.Draw(def.Name, p.game.Score(), p.game.Session())
}

// rlCamera собирает rl.Camera3D из контроллера вида.
func (p *PlayState) rlCamera() rl.Camera3D {
	pos := p.game.Camera.Position()
	target := pos.Add(p.game.Camera.Forward())
	return rl.Camera3D{
		Position:   rl.NewVector3(float32(pos.X), float32(pos.Y), float32(pos.Z)),
		Target:     rl.NewVector3(float32(target.X), float32(target.Y), float32(target.Z)),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(config.CameraFOV),
		Projection: rl.CameraPerspective,
	}
}

func (p *PlayState) Exit() {
	p.game.EventDispatcher.Unsubscribe(event.TargetHit, p)
	rl.EnableCursor()
}
