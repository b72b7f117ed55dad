package system

import "github.com/milk9111/tilechase/ecs"

// SpatialIndexSystem rebuilds the dynamic half of the world's spatial index.
// A world without an index gets one with its static half built on first
// use.
type SpatialIndexSystem struct{}

func NewSpatialIndexSystem() *SpatialIndexSystem {
	return &SpatialIndexSystem{}
}

func (s *SpatialIndexSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	idx := w.SpatialIndex()
	if idx == nil {
		idx = ecs.NewSpatialIndex()
		idx.BuildStatic(w)
		w.SetSpatialIndex(idx)
	}
	idx.RebuildDynamic(w)
}
