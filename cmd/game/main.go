// cmd/game/main.go
package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-aim-trainer/internal/app"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/state"
)

func main() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Aim Trainer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	game := app.NewGame(0) // случайный сид
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game))

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(
			config.BackgroundColor.R,
			config.BackgroundColor.G,
			config.BackgroundColor.B,
			config.BackgroundColor.A,
		))
		sm.Draw()
		rl.EndDrawing()
	}
}
