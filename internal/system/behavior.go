// internal/system/behavior.go
package system

import (
	"math"

	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/defs"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/types"
)

// BehaviorSystem анимирует мишени по их режиму: стрейф по синусоиде,
// пульсация масштаба и отправка таймаута для погасших pulse-мишеней.
// Мишени друг от друга не зависят, порядок обхода не важен.
type BehaviorSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewBehaviorSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BehaviorSystem {
	return &BehaviorSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *BehaviorSystem) Update(deltaTime float64) {
	var expired []types.EntityID

	for id, target := range s.ecs.Targets {
		target.Age += deltaTime

		switch target.Mode {
		case defs.ModeStrafing:
			pos, ok := s.ecs.Positions[id]
			if !ok {
				continue
			}
			pos.X = target.BaseX + math.Sin(target.Age*target.StrafeSpeed+target.StrafePhase)*target.StrafeAmplitude

		case defs.ModePulse:
			target.LifeClock += deltaTime * target.PulseSpeed
			target.Scale = math.Sin(target.LifeClock) * config.PulseScaleFactor
			if target.Scale < 0 {
				target.Scale = 0
			}
			if renderable, ok := s.ecs.Renderables[id]; ok {
				renderable.Radius = config.TargetRadius * target.Scale
			}
			if target.LifeClock > config.PulseTimeoutPhase && !target.Expired {
				target.Expired = true
				expired = append(expired, id)
			}
		}
	}

	// События шлём после обхода: подписчики мутируют набор мишеней
	for _, id := range expired {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetExpired, Data: id})
	}
}
