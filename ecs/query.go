package ecs

import "github.com/milk9111/tilechase/ecs/component"

// snapshot copies the dense id list of the smallest store so callbacks may
// add or remove components, or destroy entities, without disturbing the
// iteration in progress.
func snapshot(stores ...componentStore) []entityID {
	var smallest componentStore
	for _, s := range stores {
		if s == nil || s.len() == 0 {
			return nil
		}
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}
	if smallest == nil {
		return nil
	}
	ids := smallest.ids()
	out := make([]entityID, len(ids))
	copy(out, ids)
	return out
}

// ForEach calls fn for every live entity that has the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	a := storeFor(w, kind, false)
	if a == nil || fn == nil {
		return
	}
	for _, id := range snapshot(a) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, ok := a.get(id)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 calls fn for every live entity that has both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	a := storeFor(w, ka, false)
	b := storeFor(w, kb, false)
	if a == nil || b == nil || fn == nil {
		return
	}
	for _, id := range snapshot(a, b) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := a.get(id)
		vb, okB := b.get(id)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 calls fn for every live entity that has all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	a := storeFor(w, ka, false)
	b := storeFor(w, kb, false)
	c := storeFor(w, kc, false)
	if a == nil || b == nil || c == nil || fn == nil {
		return
	}
	for _, id := range snapshot(a, b, c) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := a.get(id)
		vb, okB := b.get(id)
		vc, okC := c.get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}

// ForEach4 calls fn for every live entity that has all four components.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	a := storeFor(w, ka, false)
	b := storeFor(w, kb, false)
	c := storeFor(w, kc, false)
	d := storeFor(w, kd, false)
	if a == nil || b == nil || c == nil || d == nil || fn == nil {
		return
	}
	for _, id := range snapshot(a, b, c, d) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := a.get(id)
		vb, okB := b.get(id)
		vc, okC := c.get(id)
		vd, okD := d.get(id)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, va, vb, vc, vd)
	}
}

// First returns the first live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	a := storeFor(w, kind, false)
	if a == nil {
		return 0, false
	}
	for _, id := range a.ids() {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities carry the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind, false).len()
}
