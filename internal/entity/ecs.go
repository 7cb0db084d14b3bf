// internal/entity/ecs.go
package entity

import (
	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/types"
)

// ECS хранит все компоненты по идентификаторам сущностей.
// Единственный владелец набора живых мишеней — SpawnSystem;
// остальные системы читают реестры или сигналят через события.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Targets     map[types.EntityID]*component.Target
	Renderables map[types.EntityID]*component.Renderable
	Tracers     map[types.EntityID]*component.Tracer
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Targets:     make(map[types.EntityID]*component.Target),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Tracers:     make(map[types.EntityID]*component.Tracer),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
