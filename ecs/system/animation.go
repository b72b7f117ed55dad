package system

import (
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// AnimationSystem picks the sprite frame: the sheet row is the facing, and
// the column cycles through the stun frames while stunned, the run frames
// while moving, or rests on frame zero.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.SpriteAnimationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.SpriteAnimation, t *component.Transform) {
		a.Row = int(t.Facing)

		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Stunned {
			a.Selection = cycle(a.StunFirst, a.StunLast, a.FrameCount)
			a.FrameCount++
			return
		}
		if t.VX != 0 || t.VY != 0 {
			a.Selection = cycle(a.RunFirst, a.RunLast, a.FrameCount)
			a.FrameCount++
			return
		}
		a.Selection = 0
		a.FrameCount = 0
	})
}

func cycle(first, last, n int) int {
	if last < first {
		return first
	}
	return first + n%(last-first+1)
}
