package ecs

import "github.com/milk9111/tilechase/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the frame schedule and the
// spatial index shared by collision and pathfinding.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]componentStore
	scheduler *Scheduler
	events    eventQueues
	frame     uint64

	spatial *SpatialIndex
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]componentStore),
		scheduler: NewScheduler(),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It returns
// false when e is not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid and not destroyed.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in creation-slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(s)
}

// Scheduler exposes the ordered system list.
func (w *World) Scheduler() *Scheduler {
	if w == nil {
		return nil
	}
	return w.scheduler
}

// Update runs all systems once, then drops this frame's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
	w.frame++
}

// Frame returns the number of completed updates.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// SetSpatialIndex attaches the spatial index used by collision and
// pathfinding.
func (w *World) SetSpatialIndex(idx *SpatialIndex) {
	if w == nil {
		return
	}
	w.spatial = idx
}

// SpatialIndex returns the attached spatial index, if any.
func (w *World) SpatialIndex() *SpatialIndex {
	if w == nil {
		return nil
	}
	return w.spatial
}
