package component

import (
	"time"

	"github.com/milk9111/tilechase/pathfind"
)

// Pathfinding is the path-follow state of a pursuing entity. A nil Path with
// Initialized false means no search has run yet; an empty Path after
// initialization means the last search found no route.
type Pathfinding struct {
	Path          []pathfind.Node
	Initialized   bool
	LastRecompute time.Duration
	Searches      int
	// Expanded is the node count of the most recent search.
	Expanded int
}

// Waypoint returns the next cell to steer at. The path's first cell is the
// pursuer's own cell, so a usable waypoint needs at least minLen cells.
func (p *Pathfinding) Waypoint(minLen int) (pathfind.Node, bool) {
	if p == nil || minLen < 2 || len(p.Path) < minLen {
		return pathfind.Node{}, false
	}
	return p.Path[1], true
}

var PathfindingComponent = NewComponent[Pathfinding]()
