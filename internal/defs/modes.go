// internal/defs/modes.go
package defs

// ModeID identifies a training mode.
type ModeID string

const (
	ModeNormal     ModeID = "normal"
	ModeRandomSize ModeID = "random_size"
	ModeStrafing   ModeID = "strafing"
	ModePulse      ModeID = "pulse"
)

// ModeDefinition holds all the static data for a training mode.
// Per-target random parameters are drawn from the [Min, Max] ranges
// once at spawn time and never re-rolled.
type ModeDefinition struct {
	ID          ModeID
	Name        string
	TargetCount int
	Staggered   bool // мишени появляются по одной с интервалом, а не пакетом

	// random_size
	MinScale float64
	MaxScale float64

	// strafing
	MinStrafeSpeed     float64
	MaxStrafeSpeed     float64
	MinStrafeAmplitude float64
	MaxStrafeAmplitude float64

	// pulse
	MinPulseSpeed float64
	MaxPulseSpeed float64
}

// ModeDefs — библиотека режимов тренировки.
var ModeDefs = map[ModeID]ModeDefinition{
	ModeNormal: {
		ID:          ModeNormal,
		Name:        "Classic",
		TargetCount: 3,
	},
	ModeRandomSize: {
		ID:          ModeRandomSize,
		Name:        "Random Size",
		TargetCount: 5,
		MinScale:    0.5,
		MaxScale:    1.5,
	},
	ModeStrafing: {
		ID:                 ModeStrafing,
		Name:               "Strafing",
		TargetCount:        3,
		MinStrafeSpeed:     0.5,
		MaxStrafeSpeed:     1.0,
		MinStrafeAmplitude: 2.0,
		MaxStrafeAmplitude: 5.0,
	},
	ModePulse: {
		ID:            ModePulse,
		Name:          "Pulse",
		TargetCount:   5,
		Staggered:     true,
		MinPulseSpeed: 0.3,
		MaxPulseSpeed: 0.5,
	},
}

// ModeOrder задаёт порядок режимов в меню и на клавишах 1-4.
var ModeOrder = []ModeID{ModeNormal, ModeRandomSize, ModeStrafing, ModePulse}
