package system

import (
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// CollisionSystem vetoes the velocity axes that would carry a detector into
// another collidable. It tests the proposed box against each occupant's
// current box in the cells around the detector, records visible occupants
// as touched and emits a TouchEvent for each. Positions are never written
// here.
type CollisionSystem struct {
	Config common.Config
}

func NewCollisionSystem(cfg common.Config) *CollisionSystem {
	return &CollisionSystem{Config: cfg}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	idx := w.SpatialIndex()
	radius := s.Config.CollisionRadius

	ecs.ForEach3(w, component.CollisionDetectorComponent.Kind(), component.TransformComponent.Kind(), component.FootprintComponent.Kind(), func(e ecs.Entity, det *component.CollisionDetector, t *component.Transform, fp *component.Footprint) {
		det.Touched = det.Touched[:0]

		proposed := fp.Bounds.Moved(t.X+t.VX, t.Y+t.VY)
		onlyX := fp.Bounds.Moved(t.X+t.VX, t.Y)
		onlyY := fp.Bounds.Moved(t.X, t.Y+t.VY)
		diagonal := t.VX != 0 && t.VY != 0

		blockX, blockY := false, false
		idx.Neighborhood(fp.Cell, radius, func(_ common.Cell, other ecs.Entity) {
			if other == e {
				return
			}
			ofp, ok := ecs.Get(w, other, component.FootprintComponent.Kind())
			if !ok || !proposed.Intersects(ofp.Bounds) {
				return
			}

			if ofp.Visible {
				det.Touched = append(det.Touched, uint64(other))
				ecs.Emit(w, component.TouchEvent{Entity: uint64(e), Other: uint64(other)})
			}

			if col, ok := ecs.Get(w, other, component.CollidableComponent.Kind()); ok && col.Ghost {
				return
			}

			switch {
			case diagonal:
				x := onlyX.Intersects(ofp.Bounds)
				y := onlyY.Intersects(ofp.Bounds)
				if !x && !y {
					// Corner contact: neither axis alone collides, so
					// stop both rather than clip the corner.
					x, y = true, true
				}
				blockX = blockX || x
				blockY = blockY || y
			case t.VX != 0:
				blockX = true
			case t.VY != 0:
				blockY = true
			}
		})

		if blockX {
			t.VX = 0
		}
		if blockY {
			t.VY = 0
		}
	})
}
