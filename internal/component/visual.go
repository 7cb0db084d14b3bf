// internal/component/visual.go
package component

import "go-aim-trainer/pkg/geom"

// Tracer представляет собой визуальный след выстрела от дула до точки
// попадания. Игрового состояния не несёт и гаснет сам по себе.
type Tracer struct {
	From     geom.Vec3
	To       geom.Vec3
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}
