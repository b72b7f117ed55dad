package component

import "github.com/milk9111/tilechase/common"

// Footprint is the entity's bounding box and the grid cell it was last
// committed to. Cell must be refreshed from the committed position before
// collision or pathfinding read it.
type Footprint struct {
	Bounds  common.Rect
	Cell    common.Cell
	Visible bool
	Label   string
}

var FootprintComponent = NewComponent[Footprint]()
