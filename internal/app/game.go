// internal/app/game.go
package app

import (
	"go-aim-trainer/internal/audio"
	"go-aim-trainer/internal/defs"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/stats"
	"go-aim-trainer/internal/system"
	"go-aim-trainer/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	SpawnSystem        *system.SpawnSystem
	BehaviorSystem     *system.BehaviorSystem
	ShootingSystem     *system.ShootingSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystemRL
	EventDispatcher    *event.Dispatcher
	Camera             *CameraController
	Audio              *audio.Engine
	Rng                *utils.PRNGService

	session  *stats.Session
	score    int
	gameTime float64
}

// NewGame initializes a new game instance. Сид 0 означает случайный.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:                ecs,
		SpawnSystem:        system.NewSpawnSystem(ecs, eventDispatcher, rng),
		BehaviorSystem:     system.NewBehaviorSystem(ecs, eventDispatcher),
		ShootingSystem:     system.NewShootingSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		RenderSystem:       system.NewRenderSystemRL(ecs),
		EventDispatcher:    eventDispatcher,
		Camera:             NewCameraController(),
		Audio:              audio.NewEngine(),
		Rng:                rng,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.TargetHit, listener)
	eventDispatcher.Subscribe(event.TargetExpired, listener)
	eventDispatcher.Subscribe(event.ShotFired, listener)

	g.SetMode(defs.ModeNormal)
	return g
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.SpawnSystem.Update(deltaTime)
	g.BehaviorSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// Fire производит один выстрел через центр экрана.
func (g *Game) Fire() system.ShotResult {
	g.Camera.Kick()
	return g.ShootingSystem.Fire(g.Camera.Ray(), g.Camera.Muzzle())
}

// SetMode переключает режим тренировки: счёт и сессия начинаются заново.
func (g *Game) SetMode(mode defs.ModeID) {
	g.score = 0
	g.session = stats.NewSession(mode)
	g.SpawnSystem.SetMode(mode)
}

// Mode возвращает текущий режим тренировки.
func (g *Game) Mode() defs.ModeID {
	return g.SpawnSystem.Mode()
}

// Score возвращает текущий счёт (таймауты очков не дают).
func (g *Game) Score() int {
	return g.score
}

// Session возвращает статистику текущего забега.
func (g *Game) Session() *stats.Session {
	return g.session
}

// GameEventListener обрабатывает события, важные для счёта и звука.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetHit:
		l.game.score++
		l.game.session.RecordHit()
		l.game.Audio.PlayHit()
	case event.TargetExpired:
		l.game.Audio.PlayExpired()
	case event.ShotFired:
		l.game.session.RecordShot()
		l.game.Audio.PlayShot()
	}
}
