// internal/system/behavior_test.go
package system

import (
	"math"
	"testing"

	"go-aim-trainer/internal/component"
	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/defs"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/internal/event"
	"go-aim-trainer/internal/types"
)

// eventRecorder копит полученные события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func addTarget(ecs *entity.ECS, target *component.Target, pos component.Position) types.EntityID {
	id := ecs.NewEntity()
	ecs.Targets[id] = target
	ecs.Positions[id] = &pos
	ecs.Renderables[id] = &component.Renderable{Radius: config.TargetRadius * target.Scale}
	return id
}

func TestNormalTargetIsStatic(t *testing.T) {
	ecs := entity.NewECS()
	s := NewBehaviorSystem(ecs, event.NewDispatcher())

	id := addTarget(ecs, &component.Target{Mode: defs.ModeNormal, Scale: 1}, component.Position{X: 1, Y: 2, Z: -10})
	for i := 0; i < 10; i++ {
		s.Update(0.016)
	}

	pos := ecs.Positions[id]
	if pos.X != 1 || pos.Y != 2 || pos.Z != -10 {
		t.Errorf("normal target moved to (%v, %v, %v)", pos.X, pos.Y, pos.Z)
	}
	if ecs.Targets[id].Scale != 1 {
		t.Errorf("normal target scale changed to %v", ecs.Targets[id].Scale)
	}
}

func TestStrafingFollowsSine(t *testing.T) {
	ecs := entity.NewECS()
	s := NewBehaviorSystem(ecs, event.NewDispatcher())

	target := &component.Target{
		Mode:            defs.ModeStrafing,
		Scale:           1,
		BaseX:           1.5,
		StrafeSpeed:     0.8,
		StrafeAmplitude: 3,
		StrafePhase:     0.4,
	}
	id := addTarget(ecs, target, component.Position{X: 1.5, Y: 2, Z: -10})

	s.Update(0.25)
	s.Update(0.25)

	want := 1.5 + math.Sin(0.5*0.8+0.4)*3
	got := ecs.Positions[id].X
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("strafing X = %v, want %v", got, want)
	}
	if y := ecs.Positions[id].Y; y != 2 {
		t.Errorf("strafing target changed Y to %v", y)
	}
}

func TestPulseScaleEnvelope(t *testing.T) {
	ecs := entity.NewECS()
	s := NewBehaviorSystem(ecs, event.NewDispatcher())

	target := &component.Target{Mode: defs.ModePulse, PulseSpeed: 1}
	id := addTarget(ecs, target, component.Position{Y: 2, Z: -10})

	// lifeClock = π/2 — пик огибающей
	s.Update(math.Pi / 2)
	if math.Abs(target.Scale-config.PulseScaleFactor) > 1e-9 {
		t.Errorf("scale at peak = %v, want %v", target.Scale, config.PulseScaleFactor)
	}
	wantRadius := config.TargetRadius * config.PulseScaleFactor
	if r := ecs.Renderables[id].Radius; math.Abs(r-wantRadius) > 1e-9 {
		t.Errorf("radius at peak = %v, want %v", r, wantRadius)
	}

	// Ближе к π огибающая возвращается к нулю
	s.Update(math.Pi/2 - 0.1)
	if target.Scale > 0.2 {
		t.Errorf("scale near end of life = %v, want close to 0", target.Scale)
	}
}

func TestPulseTimeoutFiresExactlyOnce(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := NewBehaviorSystem(ecs, dispatcher)
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.TargetExpired, recorder)

	target := &component.Target{Mode: defs.ModePulse, PulseSpeed: 1}
	addTarget(ecs, target, component.Position{Y: 2, Z: -10})

	s.Update(math.Pi - 0.05)
	if got := recorder.count(event.TargetExpired); got != 0 {
		t.Fatalf("timeout fired before lifeClock reached π: %d events", got)
	}

	// Пересекаем π: ровно одно событие, дальше тишина
	s.Update(0.1)
	if got := recorder.count(event.TargetExpired); got != 1 {
		t.Fatalf("timeout events after crossing π: %d, want 1", got)
	}
	s.Update(0.5)
	s.Update(0.5)
	if got := recorder.count(event.TargetExpired); got != 1 {
		t.Errorf("timeout events after extra updates: %d, want 1", got)
	}
}

func TestPulseScaleNeverNegative(t *testing.T) {
	ecs := entity.NewECS()
	s := NewBehaviorSystem(ecs, event.NewDispatcher())

	target := &component.Target{Mode: defs.ModePulse, PulseSpeed: 1}
	id := addTarget(ecs, target, component.Position{Y: 2, Z: -10})

	// Далеко за π, подписчиков нет — мишень остаётся и не должна
	// получить отрицательный радиус
	s.Update(4.0)
	if target.Scale < 0 {
		t.Errorf("scale went negative: %v", target.Scale)
	}
	if r := ecs.Renderables[id].Radius; r < 0 {
		t.Errorf("radius went negative: %v", r)
	}
}
