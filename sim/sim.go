// Package sim owns one running level: the world, its frame pipeline and
// the reload path used when maps, prefabs or scripts change on disk.
package sim

import (
	"fmt"
	"log"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
	"github.com/milk9111/tilechase/ecs/entity"
	"github.com/milk9111/tilechase/ecs/system"
	"github.com/milk9111/tilechase/levels"
	"github.com/milk9111/tilechase/prefabs"
)

type Sim struct {
	Config    common.Config
	LevelName string
	Clock     common.Clock

	World    *ecs.World
	Pipeline *system.Pipeline
	Level    entity.Level
	Timer    system.FrameTimer

	input system.InputSource
}

// New loads levelName and builds a world ready to step.
func New(cfg common.Config, levelName string, clock common.Clock, input system.InputSource) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = common.NewSystemClock()
	}
	s := &Sim{Config: cfg, LevelName: levelName, Clock: clock, input: input}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the world from the level file and prefabs. The current
// world is kept when the rebuild fails.
func (s *Sim) Reload() error {
	m, err := levels.Load(s.LevelName)
	if err != nil {
		return fmt.Errorf("sim: reload: %w", err)
	}
	w := ecs.NewWorld()
	p := system.NewPipeline(s.Config, s.Clock, s.input)
	lvl, err := entity.BuildLevel(w, s.Config, m)
	if err != nil {
		return fmt.Errorf("sim: reload: %w", err)
	}
	if !lvl.Player.Valid() {
		log.Printf("sim: level %s has no player spawn", m.Name)
	}
	p.Install(w)

	s.World = w
	s.Pipeline = p
	s.Level = lvl
	log.Printf("sim: loaded %s: %d terrain, %d pursuers, %d wanderers, %d skipped",
		m.Name, lvl.Terrain, len(lvl.Pursuers), len(lvl.Wanderers), lvl.Skipped)
	return nil
}

// Step runs one frame and times it.
func (s *Sim) Step() {
	s.Timer.Start()
	s.World.Update()
	s.Timer.Stop()
}

// Apply reacts to an on-disk change. Script edits only drop the compiled
// scripts; spec and map edits rebuild the world.
func (s *Sim) Apply(ch prefabs.Change) error {
	switch ch.Kind {
	case prefabs.ChangeScript:
		s.Pipeline.Scripts.InvalidateAll()
		log.Printf("sim: script %s changed, recompiling", ch.Path)
		return nil
	default:
		log.Printf("sim: %s %s changed, reloading", ch.Kind, ch.Path)
		return s.Reload()
	}
}

// Stats is a snapshot for status lines and run summaries.
type Stats struct {
	Frame       uint64
	PlayerAlive bool
	PlayerHP    int
	Pursuers    int
	Wanderers   int
	Searches    int
}

func (s *Sim) Stats() Stats {
	st := Stats{Frame: s.World.Frame()}
	if h, ok := ecs.Get(s.World, s.Level.Player, component.HealthComponent.Kind()); ok && ecs.IsAlive(s.World, s.Level.Player) {
		st.PlayerAlive = true
		st.PlayerHP = h.Current
	}
	st.Pursuers = ecs.Count(s.World, component.PursuerTagComponent.Kind())
	st.Wanderers = ecs.Count(s.World, component.WandererTagComponent.Kind())
	ecs.ForEach(s.World, component.PathfindingComponent.Kind(), func(_ ecs.Entity, p *component.Pathfinding) {
		st.Searches += p.Searches
	})
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("frame=%d player_alive=%t hp=%d pursuers=%d wanderers=%d searches=%d",
		st.Frame, st.PlayerAlive, st.PlayerHP, st.Pursuers, st.Wanderers, st.Searches)
}
