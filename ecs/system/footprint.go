package system

import (
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// FootprintSystem moves bounding boxes to the committed positions and
// recomputes grid cells.
type FootprintSystem struct {
	Config common.Config
}

func NewFootprintSystem(cfg common.Config) *FootprintSystem {
	return &FootprintSystem{Config: cfg}
}

func (s *FootprintSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.FootprintComponent.Kind(), func(_ ecs.Entity, t *component.Transform, fp *component.Footprint) {
		fp.Bounds = fp.Bounds.Moved(t.X, t.Y)
		fp.Cell = s.Config.CellOf(t.X, t.Y)
	})
}
