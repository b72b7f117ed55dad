// Package pathfind implements four-connected A* over a bounded cell grid.
package pathfind

import (
	"container/heap"

	"github.com/milk9111/tilechase/common"
)

// Node is one cell of a returned path with its cost annotations.
type Node struct {
	Cell common.Cell
	G    int
	H    int
}

func (n Node) F() int {
	return n.G + n.H
}

// BlockedFunc reports whether a cell is impassable.
type BlockedFunc func(common.Cell) bool

// Stats describes the most recent search.
type Stats struct {
	Expanded int
	Pushed   int
	Found    bool
}

// Finder runs searches on a fixed grid. A Finder keeps no state between
// searches other than the stats of the last one.
type Finder struct {
	Columns int
	Rows    int
	// GoalExempt lets the search end on a blocked goal cell, so a pursuer can
	// path onto the tile its target occupies.
	GoalExempt bool
	// MaxExpanded caps finalized nodes per search; zero means unbounded.
	MaxExpanded int

	stats Stats
}

func NewFinder(columns, rows int) *Finder {
	return &Finder{Columns: columns, Rows: rows, GoalExempt: true}
}

// Find is a convenience wrapper around a default Finder.
func Find(start, goal common.Cell, columns, rows int, blocked BlockedFunc) []Node {
	return NewFinder(columns, rows).Find(start, goal, blocked)
}

func (f *Finder) Stats() Stats {
	if f == nil {
		return Stats{}
	}
	return f.stats
}

var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// searchNode lives in the per-search arena. parent is an arena index, -1 for
// the start node.
type searchNode struct {
	cell    common.Cell
	g       int
	h       int
	parent  int32
	visited bool
}

type openEntry struct {
	node int32
	f    int
	seq  uint64
}

// openQueue orders by f, then by insertion so equal-f entries pop FIFO.
type openQueue []openEntry

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *openQueue) Push(x any)   { *q = append(*q, x.(openEntry)) }
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (f *Finder) inBounds(c common.Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < f.Columns && c.Y < f.Rows
}

// Find returns the shortest path from start to goal inclusive of both, or an
// empty non-nil slice when the goal cannot be reached. The start cell is never
// tested against blocked; the goal is only when GoalExempt is false.
func (f *Finder) Find(start, goal common.Cell, blocked BlockedFunc) []Node {
	f.stats = Stats{}
	if f.Columns <= 0 || f.Rows <= 0 || !f.inBounds(start) || !f.inBounds(goal) {
		return []Node{}
	}
	if blocked == nil {
		blocked = func(common.Cell) bool { return false }
	}

	// slot maps a cell index to arena index + 1; zero means not yet seen.
	slot := make([]int32, f.Columns*f.Rows)
	arena := make([]searchNode, 0, 64)
	open := make(openQueue, 0, 64)
	var seq uint64

	push := func(idx int32) {
		n := &arena[idx]
		heap.Push(&open, openEntry{node: idx, f: n.g + n.h, seq: seq})
		seq++
		f.stats.Pushed++
	}

	arena = append(arena, searchNode{cell: start, h: start.Manhattan(goal), parent: -1})
	slot[start.Y*f.Columns+start.X] = 1
	push(0)

	for open.Len() > 0 {
		entry := heap.Pop(&open).(openEntry)
		cur := &arena[entry.node]
		if cur.visited {
			continue
		}
		cur.visited = true
		f.stats.Expanded++

		if cur.cell == goal {
			f.stats.Found = true
			return f.extract(arena, entry.node)
		}
		if f.MaxExpanded > 0 && f.stats.Expanded >= f.MaxExpanded {
			break
		}

		curCell, curG := cur.cell, cur.g
		for _, d := range offsets {
			next := curCell.Add(d[0], d[1])
			if !f.inBounds(next) {
				continue
			}
			if blocked(next) && !(f.GoalExempt && next == goal) {
				continue
			}
			cellIdx := next.Y*f.Columns + next.X
			tentative := curG + 1
			if s := slot[cellIdx]; s != 0 {
				n := &arena[s-1]
				if n.visited || tentative >= n.g {
					continue
				}
				n.g = tentative
				n.parent = entry.node
				push(s - 1)
				continue
			}
			arena = append(arena, searchNode{
				cell:   next,
				g:      tentative,
				h:      next.Manhattan(goal),
				parent: entry.node,
			})
			idx := int32(len(arena) - 1)
			slot[cellIdx] = idx + 1
			push(idx)
		}
	}
	return []Node{}
}

func (f *Finder) extract(arena []searchNode, last int32) []Node {
	n := 0
	for i := last; i >= 0; i = arena[i].parent {
		n++
	}
	path := make([]Node, n)
	for i := last; i >= 0; i = arena[i].parent {
		n--
		path[n] = Node{Cell: arena[i].cell, G: arena[i].g, H: arena[i].h}
	}
	return path
}
