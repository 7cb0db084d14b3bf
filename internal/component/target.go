// internal/component/target.go
package component

import "go-aim-trainer/internal/defs"

// Target представляет тренировочную мишень. Все случайные параметры
// (масштаб, фаза и амплитуда стрейфа, скорость пульсации) фиксируются
// один раз при спавне и дальше не меняются.
type Target struct {
	Mode defs.ModeID
	Age  float64 // накопленное время жизни мишени

	// BaseX — исходная X-координата; для strafing позиция считается от неё
	BaseX float64

	// Scale: 1.0 для normal и strafing, фиксированный для random_size,
	// анимированный по синусоиде для pulse
	Scale float64

	// strafing
	StrafeSpeed     float64
	StrafeAmplitude float64
	StrafePhase     float64

	// pulse
	PulseSpeed float64
	LifeClock  float64 // аккумулятор фазы: Δt * PulseSpeed
	Expired    bool    // таймаут уже отправлен, второй раз не шлём
}
