package ecs

import (
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs/component"
)

// SpatialIndex buckets collidable entities by grid cell. The static half is
// built once per level; the dynamic half is cleared and rebuilt every frame
// before anything reads it. The index stores handles only, bounds stay on
// the entities.
type SpatialIndex struct {
	static  map[common.Cell][]Entity
	dynamic map[common.Cell][]Entity
	// solid counts non-ghost occupants per cell across both halves.
	staticSolid  map[common.Cell]int
	dynamicSolid map[common.Cell]int
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		static:       make(map[common.Cell][]Entity),
		dynamic:      make(map[common.Cell][]Entity),
		staticSolid:  make(map[common.Cell]int),
		dynamicSolid: make(map[common.Cell]int),
	}
}

// BuildStatic replaces the static half with every static collidable.
func (s *SpatialIndex) BuildStatic(w *World) {
	if s == nil {
		return
	}
	clear(s.static)
	clear(s.staticSolid)
	ForEach2(w, component.FootprintComponent.Kind(), component.CollidableComponent.Kind(), func(e Entity, fp *component.Footprint, col *component.Collidable) {
		if !col.Static {
			return
		}
		s.static[fp.Cell] = append(s.static[fp.Cell], e)
		if !col.Ghost {
			s.staticSolid[fp.Cell]++
		}
	})
}

// RebuildDynamic clears the dynamic half and reinserts every non-static
// collidable at its current cell.
func (s *SpatialIndex) RebuildDynamic(w *World) {
	if s == nil {
		return
	}
	for cell, bucket := range s.dynamic {
		s.dynamic[cell] = bucket[:0]
	}
	clear(s.dynamicSolid)
	ForEach2(w, component.FootprintComponent.Kind(), component.CollidableComponent.Kind(), func(e Entity, fp *component.Footprint, col *component.Collidable) {
		if col.Static {
			return
		}
		s.dynamic[fp.Cell] = append(s.dynamic[fp.Cell], e)
		if !col.Ghost {
			s.dynamicSolid[fp.Cell]++
		}
	})
	for cell, bucket := range s.dynamic {
		if len(bucket) == 0 {
			delete(s.dynamic, cell)
		}
	}
}

// Occupants returns static occupants of the cell followed by dynamic ones.
func (s *SpatialIndex) Occupants(cell common.Cell) []Entity {
	if s == nil {
		return nil
	}
	st, dy := s.static[cell], s.dynamic[cell]
	if len(st)+len(dy) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(st)+len(dy))
	out = append(out, st...)
	return append(out, dy...)
}

// Neighborhood calls fn for every occupant of the cells within radius of
// center in both axes, without allocating.
func (s *SpatialIndex) Neighborhood(center common.Cell, radius int, fn func(common.Cell, Entity)) {
	if s == nil || fn == nil {
		return
	}
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			cell := center.Add(dx, dy)
			for _, e := range s.static[cell] {
				fn(cell, e)
			}
			for _, e := range s.dynamic[cell] {
				fn(cell, e)
			}
		}
	}
}

// Blocked reports whether any non-ghost collidable occupies the cell.
func (s *SpatialIndex) Blocked(cell common.Cell) bool {
	if s == nil {
		return false
	}
	return s.staticSolid[cell] > 0 || s.dynamicSolid[cell] > 0
}

// StaticCells returns the cells holding static occupants.
func (s *SpatialIndex) StaticCells() []common.Cell {
	if s == nil {
		return nil
	}
	out := make([]common.Cell, 0, len(s.static))
	for cell := range s.static {
		out = append(out, cell)
	}
	return out
}

// DynamicSnapshot copies the dynamic half, mainly for diagnostics.
func (s *SpatialIndex) DynamicSnapshot() map[common.Cell][]Entity {
	if s == nil {
		return nil
	}
	out := make(map[common.Cell][]Entity, len(s.dynamic))
	for cell, bucket := range s.dynamic {
		out[cell] = append([]Entity(nil), bucket...)
	}
	return out
}
