// internal/event/types.go
package event

const (
	TargetSpawned EventType = "TargetSpawned" // Мишень добавлена в набор
	TargetHit     EventType = "TargetHit"     // Мишень поражена выстрелом
	TargetExpired EventType = "TargetExpired" // Pulse-мишень погасла по таймауту
	ShotFired     EventType = "ShotFired"     // Выстрел произведён
	ShotMissed    EventType = "ShotMissed"    // Выстрел ушёл в молоко или в стену
	ModeChanged   EventType = "ModeChanged"   // Режим тренировки переключён
)
