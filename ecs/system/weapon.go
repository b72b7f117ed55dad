package system

import (
	"time"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// WeaponSystem keeps weapons on their owners and runs the swing cycle. A
// swing starts when the owner intends to attack and its strike cooldown has
// elapsed; for the next AttackFrames frames the weapon is visible, armed and
// pushed Reach pixels in the owner's facing direction.
type WeaponSystem struct {
	Config common.Config
	Clock  common.Clock
}

func NewWeaponSystem(cfg common.Config, clock common.Clock) *WeaponSystem {
	return &WeaponSystem{Config: cfg, Clock: clock}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var now time.Duration
	if s.Clock != nil {
		now = s.Clock.Now()
	}

	ecs.ForEach4(w, component.WeaponComponent.Kind(), component.TransformComponent.Kind(), component.FootprintComponent.Kind(), component.DamageDealerComponent.Kind(), func(_ ecs.Entity, wp *component.Weapon, t *component.Transform, fp *component.Footprint, dd *component.DamageDealer) {
		owner := ecs.Entity(wp.Owner)
		if !ecs.IsAlive(w, owner) {
			return
		}
		ot, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
		if !ok {
			return
		}

		if c, ok := ecs.Get(w, owner, component.CombatComponent.Kind()); ok {
			attacking := false
			if intent, ok := ecs.Get(w, owner, component.IntentComponent.Kind()); ok {
				attacking = intent.Attacking
			}
			since := now - c.LastStrike
			if !c.Struck || since >= c.StrikeCooldown {
				c.SinceStrike = c.StrikeCooldown
				if attacking {
					c.AttackRemaining = c.AttackFrames
					c.LastStrike = now
					c.Struck = true
					dd.Armed = true
				}
			} else {
				c.SinceStrike = since
			}

			if c.AttackRemaining > 0 {
				c.AttackRemaining--
				dx, dy := ot.Facing.Offset()
				t.Facing = ot.Facing
				s.place(t, fp, ot.X+dx*wp.Reach, ot.Y+dy*wp.Reach, true)
				return
			}
		}

		dd.Armed = false
		s.place(t, fp, ot.X, ot.Y, false)
	})
}

func (s *WeaponSystem) place(t *component.Transform, fp *component.Footprint, x, y int, visible bool) {
	t.X, t.Y = x, y
	t.VX, t.VY = 0, 0
	fp.Bounds = fp.Bounds.Moved(x, y)
	fp.Cell = s.Config.CellOf(x, y)
	fp.Visible = visible
}
