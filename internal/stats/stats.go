// internal/stats/stats.go
package stats

import (
	"time"

	"github.com/google/uuid"

	"go-aim-trainer/internal/defs"
)

// Session — статистика одного тренировочного забега. Новая сессия
// начинается при каждой смене режима.
type Session struct {
	ID        uuid.UUID
	Mode      defs.ModeID
	StartedAt time.Time
	Shots     int
	Hits      int
}

func NewSession(mode defs.ModeID) *Session {
	return &Session{
		ID:        uuid.New(),
		Mode:      mode,
		StartedAt: time.Now(),
	}
}

func (s *Session) RecordShot() {
	s.Shots++
}

func (s *Session) RecordHit() {
	s.Hits++
}

// Accuracy возвращает точность в диапазоне [0, 1].
func (s *Session) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}
