package ecs

import "reflect"

// eventQueue is a per-type FIFO living for one frame.
type eventQueue[T any] struct {
	items []T
}

func (q *eventQueue[T]) reset() {
	clear(q.items)
	q.items = q.items[:0]
}

type resettable interface {
	reset()
}

// eventQueues keys one queue per event type, the way an event bus keys its
// handler lists.
type eventQueues struct {
	byType map[reflect.Type]resettable
}

func queueFor[T any](q *eventQueues, create bool) *eventQueue[T] {
	t := reflect.TypeFor[T]()
	if existing, ok := q.byType[t]; ok {
		return existing.(*eventQueue[T])
	}
	if !create {
		return nil
	}
	if q.byType == nil {
		q.byType = make(map[reflect.Type]resettable)
	}
	nq := &eventQueue[T]{}
	q.byType[t] = nq
	return nq
}

func (q *eventQueues) flush() {
	for _, queue := range q.byType {
		queue.reset()
	}
}

// Emit appends an event visible to every system that runs later in the
// current frame.
func Emit[T any](w *World, evt T) {
	if w == nil {
		return
	}
	q := queueFor[T](&w.events, true)
	q.items = append(q.items, evt)
}

// Events returns the events of type T emitted so far this frame. The slice
// is capacity-clipped so a consumer appending to it cannot clobber the queue.
func Events[T any](w *World) []T {
	if w == nil {
		return nil
	}
	q := queueFor[T](&w.events, false)
	if q == nil || len(q.items) == 0 {
		return nil
	}
	return q.items[:len(q.items):len(q.items)]
}
