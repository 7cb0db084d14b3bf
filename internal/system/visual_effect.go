// internal/system/visual_effect.go
package system

import (
	"go-aim-trainer/internal/entity"
)

// VisualEffectSystem управляет временными визуальными эффектами,
// сейчас это трассеры выстрелов.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет таймеры эффектов и удаляет погасшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, tracer := range s.ecs.Tracers {
		tracer.Timer += deltaTime
		if tracer.Timer >= tracer.Duration {
			delete(s.ecs.Tracers, id)
		}
	}
}
