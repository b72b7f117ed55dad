package render

import (
	"sort"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// Layer orders shapes back to front.
type Layer int

const (
	LayerTerrain Layer = iota
	LayerActor
	LayerWeapon
	LayerOverlay
)

// Shape is one filled box to draw. Bars carry a fill fraction in [0,1]
// and are drawn over a dark background of the full box.
type Shape struct {
	Layer  Layer
	Entity ecs.Entity
	Box    common.Rect
	Label  string
	Bar    bool
	Fill   float64
}

const barHeight = 4

// Collect walks the world and returns everything that would be drawn this
// frame, sorted by layer then entity. Path cells are included when
// withPaths is set.
func Collect(w *ecs.World, cfg common.Config, withPaths bool) []Shape {
	if w == nil {
		return nil
	}
	var shapes []Shape

	ecs.ForEach(w, component.FootprintComponent.Kind(), func(e ecs.Entity, fp *component.Footprint) {
		if !fp.Visible {
			return
		}
		layer := LayerActor
		switch {
		case ecs.Has(w, e, component.TerrainTagComponent.Kind()):
			layer = LayerTerrain
		case ecs.Has(w, e, component.WeaponComponent.Kind()):
			layer = LayerWeapon
		}
		shapes = append(shapes, Shape{Layer: layer, Entity: e, Box: fp.Bounds, Label: fp.Label})

		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			bar := common.Rect{X: fp.Bounds.X, Y: fp.Bounds.Y - 2*barHeight, Width: fp.Bounds.Width, Height: barHeight}
			shapes = append(shapes, Shape{Layer: LayerOverlay, Entity: e, Box: bar, Label: "health", Bar: true, Fill: h.Fraction()})
		}
		if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok && c.StrikeCooldown > 0 {
			bar := common.Rect{X: fp.Bounds.X, Y: fp.Bounds.Y - barHeight, Width: fp.Bounds.Width, Height: barHeight}
			shapes = append(shapes, Shape{Layer: LayerOverlay, Entity: e, Box: bar, Label: "cooldown", Bar: true, Fill: clamp01(float64(c.SinceStrike) / float64(c.StrikeCooldown))})
		}
	})

	if withPaths {
		ecs.ForEach(w, component.PathfindingComponent.Kind(), func(e ecs.Entity, p *component.Pathfinding) {
			for _, n := range p.Path {
				x, y := cfg.CellOrigin(n.Cell)
				box := common.Rect{X: x + cfg.CellWidth/4, Y: y + cfg.CellHeight/4, Width: cfg.CellWidth / 2, Height: cfg.CellHeight / 2}
				shapes = append(shapes, Shape{Layer: LayerOverlay, Entity: e, Box: box, Label: "path"})
			}
		})
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		if shapes[i].Layer != shapes[j].Layer {
			return shapes[i].Layer < shapes[j].Layer
		}
		return uint64(shapes[i].Entity) < uint64(shapes[j].Entity)
	})
	return shapes
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
