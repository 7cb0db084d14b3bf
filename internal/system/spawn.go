// internal/system/spawn.go
package system

import (
	"log"

	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/defs"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/types"
	"go-aim-trainer/internal/utils"
	"go-aim-trainer/pkg/geom"
)

// SpawnSystem владеет набором живых мишеней: спавнит их при смене режима,
// убирает по попаданию или таймауту и тут же спавнит замену, чтобы
// количество мишеней всегда возвращалось к норме режима.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService

	mode defs.ModeID

	// Отложенный спавн для staggered-режимов
	pendingSpawns int
	spawnTimer    float64
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	s := &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		mode:            defs.ModeNormal,
	}
	eventDispatcher.Subscribe(event.TargetHit, s)
	eventDispatcher.Subscribe(event.TargetExpired, s)
	return s
}

// Mode возвращает текущий режим тренировки.
func (s *SpawnSystem) Mode() defs.ModeID {
	return s.mode
}

// LiveCount возвращает количество живых мишеней.
func (s *SpawnSystem) LiveCount() int {
	return len(s.ecs.Targets)
}

// SetMode очищает набор мишеней и пересоздаёт его под новый режим.
// Для staggered-режимов первая мишень появляется сразу, остальные —
// по одной через фиксированный интервал.
func (s *SpawnSystem) SetMode(mode defs.ModeID) {
	def, ok := defs.ModeDefs[mode]
	if !ok {
		log.Printf("Error: mode definition not found for ID: %s", mode)
		return
	}

	s.clearTargets()
	s.mode = mode
	s.spawnTimer = 0
	s.pendingSpawns = 0

	if def.Staggered {
		s.spawnTarget()
		s.pendingSpawns = def.TargetCount - 1
	} else {
		// Пакетный спавн: каждый кандидат проверяет дистанцию только
		// до уже размещённых в этом же пакете мишеней
		for i := 0; i < def.TargetCount; i++ {
			s.spawnTarget()
		}
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: mode})
}

// Update продвигает отложенный спавн staggered-режимов.
func (s *SpawnSystem) Update(deltaTime float64) {
	if s.pendingSpawns <= 0 {
		return
	}
	s.spawnTimer += deltaTime
	for s.spawnTimer >= config.PulseSpawnInterval && s.pendingSpawns > 0 {
		s.spawnTimer -= config.PulseSpawnInterval
		s.spawnTarget()
		s.pendingSpawns--
	}
}

// OnEvent реализует интерфейс event.Listener: попадание и таймаут
// обрабатываются одинаково — удаление плюс немедленная замена.
func (s *SpawnSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetHit, event.TargetExpired:
		id, ok := e.Data.(types.EntityID)
		if !ok {
			return
		}
		s.replaceTarget(id)
	}
}

// replaceTarget удаляет мишень и спавнит замену против уже обновлённого
// набора. Повторный вызов для удалённого id — no-op: это страхует от
// двойной обработки, когда попадание и таймаут совпали в одном кадре.
func (s *SpawnSystem) replaceTarget(id types.EntityID) {
	if _, ok := s.ecs.Targets[id]; !ok {
		return
	}
	s.removeTarget(id)
	s.spawnTarget()
}

func (s *SpawnSystem) removeTarget(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Renderables, id)
	delete(s.ecs.Targets, id)
}

func (s *SpawnSystem) clearTargets() {
	for id := range s.ecs.Targets {
		s.removeTarget(id)
	}
	s.pendingSpawns = 0
}

// spawnTarget создаёт одну мишень текущего режима. Все случайные
// параметры фиксируются здесь и больше не перерисовываются.
func (s *SpawnSystem) spawnTarget() types.EntityID {
	def := defs.ModeDefs[s.mode]
	pos := s.generatePosition(s.livePositions())

	id := s.ecs.NewEntity()
	target := &component.Target{
		Mode:  s.mode,
		BaseX: pos.X,
		Scale: 1.0,
	}

	switch s.mode {
	case defs.ModeRandomSize:
		target.Scale = s.rng.FloatRange(def.MinScale, def.MaxScale)
	case defs.ModeStrafing:
		target.StrafeSpeed = s.rng.FloatRange(def.MinStrafeSpeed, def.MaxStrafeSpeed)
		target.StrafeAmplitude = s.rng.FloatRange(def.MinStrafeAmplitude, def.MaxStrafeAmplitude)
		target.StrafePhase = s.rng.Angle()
	case defs.ModePulse:
		target.PulseSpeed = s.rng.FloatRange(def.MinPulseSpeed, def.MaxPulseSpeed)
		target.Scale = 0 // sin(0) * 1.5
	}

	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y, Z: pos.Z}
	s.ecs.Targets[id] = target
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.TargetColors[s.rng.Intn(len(config.TargetColors))],
		Radius: config.TargetRadius * target.Scale,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: id})
	return id
}

// livePositions собирает позиции живых мишеней для проверки дистанции.
func (s *SpawnSystem) livePositions() []geom.Vec3 {
	existing := make([]geom.Vec3, 0, len(s.ecs.Targets))
	for id := range s.ecs.Targets {
		if pos, ok := s.ecs.Positions[id]; ok {
			existing = append(existing, geom.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z})
		}
	}
	return existing
}

// generatePosition подбирает координату rejection sampling-ом: берём
// случайного кандидата и проверяем минимальную дистанцию до всех
// переданных мишеней. Если за SpawnAttempts попыток валидного кандидата
// не нашлось, принимаем последнего как есть — при переполненной зоне
// лучше нарушить дистанцию, чем крутить цикл бесконечно.
func (s *SpawnSystem) generatePosition(existing []geom.Vec3) geom.Vec3 {
	var candidate geom.Vec3
	for attempt := 0; attempt < config.SpawnAttempts; attempt++ {
		candidate = geom.Vec3{
			X: s.rng.FloatRange(config.SpawnMinX, config.SpawnMaxX),
			Y: s.rng.FloatRange(config.SpawnMinY, config.SpawnMaxY),
			Z: config.SpawnDepth,
		}
		valid := true
		for _, p := range existing {
			if geom.Distance(candidate, p) < config.MinTargetDistance {
				valid = false
				break
			}
		}
		if valid {
			return candidate
		}
	}
	return candidate
}
