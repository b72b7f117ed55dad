package system

import (
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
)

// Pipeline holds the per-frame systems in the order they must run:
//
//	index, intent and targeting, path re-planning, steering and status,
//	weapons, index again for moved weapons, collision, combat, damage,
//	movement, footprints, animation, health, logging.
//
// Collision sees only last frame's committed positions because nothing
// moves until MovementSystem.
type Pipeline struct {
	Index       *SpatialIndexSystem
	Input       *InputSystem
	Scripts     *ScriptedIntentSystem
	Targeting   *TargetingSystem
	Pathfinding *PathfindingSystem
	Steering    *SteeringSystem
	Status      *StatusSystem
	Weapons     *WeaponSystem
	Collision   *CollisionSystem
	Combat      *CombatSystem
	Damage      *DamageSystem
	Movement    *MovementSystem
	Footprints  *FootprintSystem
	Animation   *AnimationSystem
	Health      *HealthSystem
	Logging     *LoggingSystem
}

func NewPipeline(cfg common.Config, clock common.Clock, input InputSource) *Pipeline {
	return &Pipeline{
		Index:       NewSpatialIndexSystem(),
		Input:       NewInputSystem(input),
		Scripts:     NewScriptedIntentSystem(),
		Targeting:   NewTargetingSystem(),
		Pathfinding: NewPathfindingSystem(cfg, clock),
		Steering:    NewSteeringSystem(),
		Status:      NewStatusSystem(),
		Weapons:     NewWeaponSystem(cfg, clock),
		Collision:   NewCollisionSystem(cfg),
		Combat:      NewCombatSystem(),
		Damage:      NewDamageSystem(),
		Movement:    NewMovementSystem(),
		Footprints:  NewFootprintSystem(cfg),
		Animation:   NewAnimationSystem(),
		Health:      NewHealthSystem(),
		Logging:     NewLoggingSystem(cfg, clock),
	}
}

func (p *Pipeline) Systems() []ecs.System {
	return []ecs.System{
		p.Index,
		p.Input,
		p.Scripts,
		p.Targeting,
		p.Pathfinding,
		p.Steering,
		p.Status,
		p.Weapons,
		p.Index,
		p.Collision,
		p.Combat,
		p.Damage,
		p.Movement,
		p.Footprints,
		p.Animation,
		p.Health,
		p.Logging,
	}
}

// Install appends the pipeline to w's scheduler.
func (p *Pipeline) Install(w *ecs.World) {
	for _, s := range p.Systems() {
		w.AddSystem(s)
	}
}
