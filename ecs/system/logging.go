package system

import (
	"log"
	"time"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// LoggingSystem periodically dumps player and pursuer state. It only reads
// the world.
type LoggingSystem struct {
	Config common.Config
	Clock  common.Clock
	Logger *log.Logger

	last    time.Duration
	started bool
}

func NewLoggingSystem(cfg common.Config, clock common.Clock) *LoggingSystem {
	return &LoggingSystem{Config: cfg, Clock: clock}
}

func (s *LoggingSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Clock == nil {
		return
	}
	now := s.Clock.Now()
	if !s.started {
		s.started = true
		s.last = now
		return
	}
	if now-s.last < s.Config.LogInterval() {
		return
	}
	s.last = now
	s.dump(w)
}

func (s *LoggingSystem) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (s *LoggingSystem) dump(w *ecs.World) {
	s.logf("state: frame=%d entities=%d", w.Frame(), len(ecs.Entities(w)))

	ecs.ForEach4(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), component.FootprintComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform, fp *component.Footprint, h *component.Health) {
		s.logf("player: id=%v pos=(%d,%d) cell=%v hp=%d/%d", e, t.X, t.Y, fp.Cell, h.Current, h.Max)
		if det, ok := ecs.Get(w, e, component.CollisionDetectorComponent.Kind()); ok {
			for _, other := range det.Touched {
				s.logf("player: touching %v", ecs.Entity(other))
			}
		}
	})

	ecs.ForEach3(w, component.PathfindingComponent.Kind(), component.FootprintComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, pf *component.Pathfinding, fp *component.Footprint, h *component.Health) {
		s.logf("pursuer: id=%v cell=%v path=%d searches=%d expanded=%d hp=%d/%d", e, fp.Cell, len(pf.Path), pf.Searches, pf.Expanded, h.Current, h.Max)
		for _, n := range pf.Path {
			s.logf("pursuer: node %v f=%d", n.Cell, n.F())
		}
	})
}
