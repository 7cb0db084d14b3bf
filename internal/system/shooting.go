// internal/system/shooting.go
package system

import (
	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/types"
	"go-aim-trainer/pkg/geom"
)

// ShotKind — исход выстрела.
type ShotKind int

const (
	ShotMiss ShotKind = iota
	ShotEnvironment
	ShotTarget
)

// ShotResult — результат разрешения одного выстрела.
type ShotResult struct {
	Kind     ShotKind
	TargetID types.EntityID
	Surface  string    // имя поверхности окружения при ShotEnvironment
	Point    geom.Vec3 // точка попадания либо фоллбэк на MaxRayDistance
	Distance float64
}

// surface — именованная плоскость окружения (пол, стены).
type surface struct {
	name   string
	origin geom.Vec3
	normal geom.Vec3
	within func(p geom.Vec3) bool
}

// ShootingSystem разрешает выстрелы: пускает луч из камеры через центр
// экрана, находит ближайшее пересечение среди мишеней и поверхностей
// арены и оставляет за собой трассер. Мишень всегда побеждает более
// дальнюю поверхность; сами поверхности дают именованный промах.
type ShootingSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	surfaces        []surface
}

func NewShootingSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ShootingSystem {
	return &ShootingSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		surfaces:        arenaSurfaces(),
	}
}

// arenaSurfaces описывает пол и три стены арены.
func arenaSurfaces() []surface {
	inFloor := func(p geom.Vec3) bool {
		return p.X >= -config.ArenaHalfWidth && p.X <= config.ArenaHalfWidth &&
			p.Z >= config.ArenaBackZ && p.Z <= config.ArenaFrontZ
	}
	inBackWall := func(p geom.Vec3) bool {
		return p.X >= -config.ArenaHalfWidth && p.X <= config.ArenaHalfWidth &&
			p.Y >= 0 && p.Y <= config.WallHeight
	}
	inSideWall := func(p geom.Vec3) bool {
		return p.Z >= config.ArenaBackZ && p.Z <= config.ArenaFrontZ &&
			p.Y >= 0 && p.Y <= config.WallHeight
	}
	return []surface{
		{
			name:   "floor",
			origin: geom.Vec3{},
			normal: geom.Vec3{Y: 1},
			within: inFloor,
		},
		{
			name:   "wall_back",
			origin: geom.Vec3{Z: config.ArenaBackZ},
			normal: geom.Vec3{Z: 1},
			within: inBackWall,
		},
		{
			name:   "wall_left",
			origin: geom.Vec3{X: -config.ArenaHalfWidth},
			normal: geom.Vec3{X: 1},
			within: inSideWall,
		},
		{
			name:   "wall_right",
			origin: geom.Vec3{X: config.ArenaHalfWidth},
			normal: geom.Vec3{X: -1},
			within: inSideWall,
		},
	}
}

// Fire разрешает выстрел, оставляет трассер от дула до точки попадания
// и рассылает события. Возвращает результат для вызывающего кода.
func (s *ShootingSystem) Fire(ray geom.Ray, muzzle geom.Vec3) ShotResult {
	result := s.Resolve(ray)

	id := s.ecs.NewEntity()
	s.ecs.Tracers[id] = &component.Tracer{
		From:     muzzle,
		To:       result.Point,
		Duration: config.TracerDuration,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired})
	switch result.Kind {
	case ShotTarget:
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: result.TargetID})
	default:
		s.eventDispatcher.Dispatch(event.Event{Type: event.ShotMissed, Data: result})
	}
	return result
}

// Resolve находит ближайшее пересечение луча со сценой без побочных
// эффектов. Если луч ни во что не попал, точкой становится фоллбэк на
// MaxRayDistance вдоль направления.
func (s *ShootingSystem) Resolve(ray geom.Ray) ShotResult {
	best := ShotResult{
		Kind:     ShotMiss,
		Point:    ray.Point(config.MaxRayDistance),
		Distance: config.MaxRayDistance,
	}

	for id := range s.ecs.Targets {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		renderable, ok := s.ecs.Renderables[id]
		if !ok || renderable.Radius <= 0 {
			// Pulse-мишень в нулевом масштабе неосязаема
			continue
		}
		center := geom.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
		if t, hit := ray.IntersectSphere(center, renderable.Radius); hit && t < best.Distance {
			best = ShotResult{
				Kind:     ShotTarget,
				TargetID: id,
				Point:    ray.Point(t),
				Distance: t,
			}
		}
	}

	for _, sf := range s.surfaces {
		t, hit := ray.IntersectPlane(sf.origin, sf.normal)
		if !hit || t >= best.Distance {
			continue
		}
		p := ray.Point(t)
		if sf.within(p) {
			best = ShotResult{
				Kind:     ShotEnvironment,
				Surface:  sf.name,
				Point:    p,
				Distance: t,
			}
		}
	}

	return best
}
