// internal/system/laser.go
package system

import (
	"math"

	"go-radial-arena/internal/component"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/entity"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/types"
)

// LaserSystem runs the telegraph -> firing -> done beam hazards.
type LaserSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewLaserSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LaserSystem {
	return &LaserSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Create starts a beam at the source pointing through the arena center.
func (s *LaserSystem) Create(sourceX, sourceY, angle, telegraph, duration float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Lasers[id] = &component.Laser{
		SourceX:           sourceX,
		SourceY:           sourceY,
		Angle:             angle,
		Length:            math.Hypot(sourceX, sourceY) + config.LaserOvershoot,
		Width:             config.LaserBeamWidth,
		State:             component.LaserTelegraph,
		TelegraphDuration: telegraph,
		FireDuration:      duration,
	}
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.LaserFired, Data: id})
	}
	return id
}

func (s *LaserSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.LaserIDs() {
		l := s.ecs.Lasers[id]
		l.Timer += deltaTime
		switch l.State {
		case component.LaserTelegraph:
			if l.Timer >= l.TelegraphDuration {
				l.State = component.LaserFiring
				l.Timer = 0
			}
		case component.LaserFiring:
			if l.Timer >= l.FireDuration {
				l.State = component.LaserDone
			}
		}
		if l.State == component.LaserDone {
			delete(s.ecs.Lasers, id)
		}
	}
}

// Segment returns the beam's end points.
func Segment(l *component.Laser) (ax, ay, bx, by float64) {
	dx, dy := -math.Cos(l.Angle), -math.Sin(l.Angle)
	return l.SourceX, l.SourceY, l.SourceX + dx*l.Length, l.SourceY + dy*l.Length
}

// HitsCircle reports whether any firing beam touches the circle.
func (s *LaserSystem) HitsCircle(x, y, r float64) bool {
	for _, id := range s.ecs.LaserIDs() {
		l := s.ecs.Lasers[id]
		if l.State != component.LaserFiring {
			continue
		}
		ax, ay, bx, by := Segment(l)
		if segmentDistance(x, y, ax, ay, bx, by) < l.Width/2+r {
			return true
		}
	}
	return false
}

func (s *LaserSystem) Clear() {
	clear(s.ecs.Lasers)
}
