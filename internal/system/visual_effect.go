// internal/system/visual_effect.go
package system

import (
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/entity"
)

// VisualEffectSystem decays screen-wide effects such as camera shake.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Shake raises the camera shake to at least intensity.
func (s *VisualEffectSystem) Shake(intensity float64) {
	if intensity > s.ecs.Camera.Shake {
		s.ecs.Camera.Shake = intensity
	}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	cam := s.ecs.Camera
	if cam.Shake > 0 {
		cam.Shake -= config.ShakeDecay * deltaTime
		if cam.Shake < 0 {
			cam.Shake = 0
		}
	}
}
