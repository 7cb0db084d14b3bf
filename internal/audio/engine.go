// internal/audio/engine.go
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	sampleRateHz = 44100.0
)

// Engine — процедурный звуковой движок. Все эффекты синтезируются
// на лету и подмешиваются в общий микшер. Если аудиоустройство
// недоступно, движок молча переходит в беззвучный режим.
type Engine struct {
	mixer   *beep.Mixer
	started bool
	enabled bool
}

func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Start инициализирует аудиоустройство. Вызывается один раз при первом
// взаимодействии пользователя; повторные вызовы — no-op.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		log.Printf("audio: устройство недоступно, играем без звука: %v", err)
		return
	}
	speaker.Play(e.mixer)
	e.enabled = true
}

// Enabled сообщает, вышел ли движок из беззвучного режима.
func (e *Engine) Enabled() bool {
	return e.enabled
}

func (e *Engine) play(s beep.Streamer) {
	if !e.enabled {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayShot — щелчок выстрела.
func (e *Engine) PlayShot() {
	e.play(newTone(waveSquare, 220, 0.07, 0.35))
}

// PlayHit — подтверждение попадания.
func (e *Engine) PlayHit() {
	e.play(newTone(waveSine, 880, 0.12, 0.5))
}

// PlayExpired — низкий гудок погасшей pulse-мишени.
func (e *Engine) PlayExpired() {
	e.play(newTone(waveSaw, 140, 0.18, 0.4))
}

// PlayClick — отклик кнопки меню.
func (e *Engine) PlayClick() {
	e.play(newTone(waveSine, 660, 0.04, 0.3))
}
