// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Камера от первого лица
	CameraEyeHeight  = 1.7
	CameraFOV        = 60.0
	MouseSensitivity = 0.0028
	MaxPitch         = 1.45 // радианы, чуть меньше π/2
	RecoilKick       = 0.035
	RecoilRecovery   = 9.0

	// Зона спавна мишеней
	SpawnMinX         = -3.0
	SpawnMaxX         = 3.0
	SpawnMinY         = 1.5
	SpawnMaxY         = 4.5
	SpawnDepth        = -10.0
	MinTargetDistance = 2.5 // минимальная дистанция между мишенями
	SpawnAttempts     = 20  // лимит попыток rejection sampling

	TargetRadius = 0.5

	// Pulse-режим
	PulseSpawnInterval = 0.5 // секунды между отложенными спавнами
	PulseTimeoutPhase  = math.Pi
	PulseScaleFactor   = 1.5

	// Стрельба
	MaxRayDistance    = 100.0
	TracerDuration    = 0.12
	MuzzleForward     = 0.8
	MuzzleRight       = 0.25
	MuzzleDown        = 0.2
	HitMarkerDuration = 0.22

	// Геометрия арены
	ArenaHalfWidth = 8.0
	ArenaBackZ     = -12.0
	ArenaFrontZ    = 4.0
	WallHeight     = 6.0

	// HUD
	HUDPadding  = 14
	HUDFontSize = 20

	CrosshairGap  = 6
	CrosshairSize = 14
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FloorColor      = color.RGBA{44, 48, 58, 255}
	WallColor       = color.RGBA{58, 66, 84, 255}
	BackWallColor   = color.RGBA{50, 56, 72, 255}
	TracerColor     = color.RGBA{255, 230, 120, 255}
	CrosshairColor  = color.RGBA{240, 240, 240, 255}
	HitMarkerColor  = color.RGBA{255, 90, 90, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 155, 170, 255}
	PanelColor      = color.RGBA{20, 20, 30, 200}

	// Палитра мишеней; цвет выбирается случайно при спавне
	TargetColors = []color.RGBA{
		{255, 80, 80, 255},   // Red
		{80, 200, 255, 255},  // Cyan
		{255, 170, 50, 255},  // Orange
		{170, 120, 255, 255}, // Violet
		{90, 230, 130, 255},  // Green
	}
)
