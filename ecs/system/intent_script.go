package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
	"github.com/milk9111/tilechase/prefabs"
)

// ScriptLoader returns the source of an intent script.
type ScriptLoader func(path string) ([]byte, error)

// ScriptedIntentSystem runs a tengo script per entity to fill its Intent.
// Scripts see frame, x, y and state, and may set move_x, move_y, attack and
// state. State survives between frames on the IntentScript component.
type ScriptedIntentSystem struct {
	Load ScriptLoader

	cache  map[string]*tengo.Compiled
	failed map[string]bool
}

func NewScriptedIntentSystem() *ScriptedIntentSystem {
	return &ScriptedIntentSystem{Load: prefabs.LoadScript}
}

// Invalidate drops a compiled script so the next frame reloads it.
func (s *ScriptedIntentSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	delete(s.cache, path)
	delete(s.failed, path)
}

// InvalidateAll drops every compiled script.
func (s *ScriptedIntentSystem) InvalidateAll() {
	if s == nil {
		return
	}
	clear(s.cache)
	clear(s.failed)
}

func (s *ScriptedIntentSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	frame := int64(w.Frame())
	ecs.ForEach3(w, component.IntentScriptComponent.Kind(), component.IntentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.IntentScript, intent *component.Intent, t *component.Transform) {
		compiled, err := s.compiled(sc.Path)
		if err != nil {
			return
		}
		if err := s.run(compiled, sc, intent, t, frame); err != nil {
			log.Printf("script: entity=%v %s: %v", e, sc.Path, err)
		}
	})
}

func (s *ScriptedIntentSystem) compiled(path string) (*tengo.Compiled, error) {
	if c, ok := s.cache[path]; ok {
		return c, nil
	}
	if s.failed[path] {
		return nil, fmt.Errorf("script: %s previously failed", path)
	}

	c, err := s.compile(path)
	if err != nil {
		if s.failed == nil {
			s.failed = map[string]bool{}
		}
		s.failed[path] = true
		log.Printf("script: %v", err)
		return nil, err
	}
	if s.cache == nil {
		s.cache = map[string]*tengo.Compiled{}
	}
	s.cache[path] = c
	return c, nil
}

func (s *ScriptedIntentSystem) compile(path string) (*tengo.Compiled, error) {
	load := s.Load
	if load == nil {
		load = prefabs.LoadScript
	}
	src, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("x", 0)
	_ = script.Add("y", 0)
	_ = script.Add("state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return compiled, nil
}

func (s *ScriptedIntentSystem) run(c *tengo.Compiled, sc *component.IntentScript, intent *component.Intent, t *component.Transform, frame int64) error {
	if sc.State == nil {
		sc.State = map[string]any{}
	}
	if err := c.Set("frame", frame); err != nil {
		return err
	}
	if err := c.Set("x", t.X); err != nil {
		return err
	}
	if err := c.Set("y", t.Y); err != nil {
		return err
	}
	if err := c.Set("state", sc.State); err != nil {
		return err
	}
	if err := c.Run(); err != nil {
		return err
	}

	intent.MoveX, intent.MoveY, intent.Attacking = 0, 0, false
	if c.IsDefined("move_x") {
		intent.MoveX = common.Sign(c.Get("move_x").Int())
	}
	if c.IsDefined("move_y") {
		intent.MoveY = common.Sign(c.Get("move_y").Int())
	}
	if c.IsDefined("attack") {
		intent.Attacking = c.Get("attack").Bool()
	}
	if state := c.Get("state").Map(); state != nil {
		sc.State = state
	}
	return nil
}
