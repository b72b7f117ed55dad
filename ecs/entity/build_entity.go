package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
	"github.com/milk9111/tilechase/prefabs"
)

type buildContext struct {
	PrefabPath string
	Config     common.Config
	X, Y       int
	// Armed is the weapon prefab to spawn once the entity is complete.
	Armed string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":         addPlayerTag,
	"pursuer_tag":        addPursuerTag,
	"wanderer_tag":       addWandererTag,
	"terrain_tag":        addTerrainTag,
	"footprint":          addFootprint,
	"collidable":         addCollidable,
	"collision_detector": addCollisionDetector,
	"mover":              addMover,
	"intent":             addIntent,
	"targeting":          addTargeting,
	"pathfinding":        addPathfinding,
	"health":             addHealth,
	"combat":             addCombat,
	"damage_dealer":      addDamageDealer,
	"weapon":             addWeapon,
	"armed":              addArmed,
	"sprite_animation":   addSpriteAnimation,
	"intent_script":      addIntentScript,
}

var componentBuildOrder = []string{
	"player_tag",
	"pursuer_tag",
	"wanderer_tag",
	"terrain_tag",
	"footprint",
	"collidable",
	"collision_detector",
	"mover",
	"intent",
	"targeting",
	"pathfinding",
	"health",
	"combat",
	"damage_dealer",
	"weapon",
	"sprite_animation",
	"intent_script",
	"armed",
}

// BuildEntity creates an entity at x, y from a component-map prefab. A
// Transform is always attached; everything else comes from the prefab.
func BuildEntity(w *ecs.World, cfg common.Config, prefabPath string, x, y int) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Config: cfg, X: x, Y: y}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: add transform: %w", prefabPath, err)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	if ctx.Armed != "" {
		if _, err := NewWeapon(w, cfg, ctx.Armed, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: %w", prefabPath, err)
		}
	}

	return e, nil
}

// ParseFaction accepts the single-letter codes or their names.
func ParseFaction(s string) (component.Faction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "neutral":
		return component.FactionNeutral, nil
	case "f", "friendly":
		return component.FactionFriendly, nil
	case "e", "enemy":
		return component.FactionEnemy, nil
	}
	return 0, fmt.Errorf("unknown faction %q", s)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPursuerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PursuerTagComponent.Kind(), &component.PursuerTag{})
}

func addWandererTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WandererTagComponent.Kind(), &component.WandererTag{})
}

func addTerrainTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TerrainTagComponent.Kind(), &component.TerrainTag{})
}

func addFootprint(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.FootprintComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode footprint spec: %w", err)
	}
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = ctx.Config.CellWidth
	}
	if height <= 0 {
		height = ctx.Config.CellHeight
	}
	return ecs.Add(w, e, component.FootprintComponent.Kind(), &component.Footprint{
		Bounds:  common.Rect{X: ctx.X, Y: ctx.Y, Width: width, Height: height},
		Cell:    ctx.Config.CellOf(ctx.X, ctx.Y),
		Visible: !spec.Hidden,
		Label:   spec.Label,
	})
}

func addCollidable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollidableComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collidable spec: %w", err)
	}
	return ecs.Add(w, e, component.CollidableComponent.Kind(), &component.Collidable{Static: spec.Static})
}

func addCollisionDetector(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollisionDetectorComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision_detector spec: %w", err)
	}
	faction, err := ParseFaction(spec.Faction)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CollisionDetectorComponent.Kind(), &component.CollisionDetector{Faction: faction})
}

func addMover(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MoverComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode mover spec: %w", err)
	}
	speed := spec.Speed
	if speed <= 0 {
		speed = 1
	}
	if ctx.Config.MaxSpeed > 0 && speed > ctx.Config.MaxSpeed {
		return fmt.Errorf("speed %d exceeds max_speed %d", speed, ctx.Config.MaxSpeed)
	}
	return ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Speed: speed})
}

func addIntent(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.IntentComponent.Kind(), &component.Intent{})
}

func addTargeting(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TargetingComponent.Kind(), &component.Targeting{})
}

func addPathfinding(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %d", spec.Max)
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
		Max:        spec.Max,
		Current:    spec.Max,
		StunFrames: spec.StunFrames,
	})
}

func addCombat(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CombatComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode combat spec: %w", err)
	}
	frames := spec.AttackFrames
	if frames <= 0 {
		frames = 1
	}
	return ecs.Add(w, e, component.CombatComponent.Kind(), &component.Combat{
		StrikeCooldown: time.Duration(spec.StrikeCooldownMS) * time.Millisecond,
		AttackFrames:   frames,
	})
}

func addDamageDealer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DamageDealerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode damage_dealer spec: %w", err)
	}
	faction, err := ParseFaction(spec.Faction)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.DamageDealerComponent.Kind(), &component.DamageDealer{
		Faction:      faction,
		DamagePerHit: spec.Damage,
		Stun:         spec.Stun,
	})
}

// addWeapon leaves Owner unset; NewWeapon fills it in.
func addWeapon(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WeaponComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon spec: %w", err)
	}
	if col, ok := ecs.Get(w, e, component.CollidableComponent.Kind()); ok {
		col.Ghost = true
	}
	return ecs.Add(w, e, component.WeaponComponent.Kind(), &component.Weapon{Reach: spec.Reach})
}

func addArmed(_ *ecs.World, _ ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ArmedComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode armed spec: %w", err)
	}
	ctx.Armed = spec.Prefab
	return nil
}

func addSpriteAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteAnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite_animation spec: %w", err)
	}
	if spec.RunLast < spec.RunFirst {
		return fmt.Errorf("run frames %d..%d are reversed", spec.RunFirst, spec.RunLast)
	}
	return ecs.Add(w, e, component.SpriteAnimationComponent.Kind(), &component.SpriteAnimation{
		RunFirst:  spec.RunFirst,
		RunLast:   spec.RunLast,
		StunFirst: spec.StunFirst,
		StunLast:  spec.StunLast,
	})
}

func addIntentScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.IntentScriptComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode intent_script spec: %w", err)
	}
	if spec.Path == "" {
		return fmt.Errorf("intent_script path is empty")
	}
	return ecs.Add(w, e, component.IntentScriptComponent.Kind(), &component.IntentScript{
		Path:  spec.Path,
		State: map[string]any{},
	})
}
