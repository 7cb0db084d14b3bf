// internal/system/render.go
package system

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-aim-trainer/internal/config"
	"go-aim-trainer/internal/entity"
	"go-aim-trainer/pkg/geom"
)

// RenderSystemRL отрисовывает 3D-сцену через raylib: арену, мишени
// и трассеры. Система только читает ECS и ничего в нём не меняет.
type RenderSystemRL struct {
	ecs *entity.ECS
}

func NewRenderSystemRL(ecs *entity.ECS) *RenderSystemRL {
	return &RenderSystemRL{ecs: ecs}
}

// Draw рисует сцену внутри BeginMode3D/EndMode3D.
func (s *RenderSystemRL) Draw(camera rl.Camera3D) {
	rl.BeginMode3D(camera)

	s.drawArena()
	s.drawTargets()
	s.drawTracers()

	rl.EndMode3D()
}

func (s *RenderSystemRL) drawArena() {
	floorCenterZ := float32(config.ArenaBackZ+config.ArenaFrontZ) / 2
	floorDepth := float32(config.ArenaFrontZ - config.ArenaBackZ)
	wallCenterY := float32(config.WallHeight) / 2

	rl.DrawPlane(
		rl.NewVector3(0, 0, floorCenterZ),
		rl.NewVector2(float32(config.ArenaHalfWidth*2), floorDepth),
		toRL(config.FloorColor),
	)
	rl.DrawGrid(16, 1.0)

	// Задняя стена и две боковые; тонкие кубы вместо плоскостей,
	// чтобы стены были видны с обеих сторон
	rl.DrawCube(
		rl.NewVector3(0, wallCenterY, float32(config.ArenaBackZ)),
		float32(config.ArenaHalfWidth*2), float32(config.WallHeight), 0.1,
		toRL(config.BackWallColor),
	)
	rl.DrawCube(
		rl.NewVector3(float32(-config.ArenaHalfWidth), wallCenterY, floorCenterZ),
		0.1, float32(config.WallHeight), floorDepth,
		toRL(config.WallColor),
	)
	rl.DrawCube(
		rl.NewVector3(float32(config.ArenaHalfWidth), wallCenterY, floorCenterZ),
		0.1, float32(config.WallHeight), floorDepth,
		toRL(config.WallColor),
	)
}

func (s *RenderSystemRL) drawTargets() {
	for id, renderable := range s.ecs.Renderables {
		if _, isTarget := s.ecs.Targets[id]; !isTarget {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok || renderable.Radius <= 0 {
			continue
		}
		center := rl.NewVector3(float32(pos.X), float32(pos.Y), float32(pos.Z))
		rl.DrawSphere(center, float32(renderable.Radius), toRL(renderable.Color))
		rl.DrawSphereWires(center, float32(renderable.Radius)*1.01, 8, 8, rl.Fade(rl.White, 0.25))
	}
}

func (s *RenderSystemRL) drawTracers() {
	for _, tracer := range s.ecs.Tracers {
		// Трассер гаснет линейно по оставшемуся времени
		alpha := float32(1.0 - tracer.Timer/tracer.Duration)
		rl.DrawLine3D(toRLVec(tracer.From), toRLVec(tracer.To), rl.Fade(toRL(config.TracerColor), alpha))
	}
}

// toRL преобразует стандартный color.RGBA в rl.Color
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toRLVec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
