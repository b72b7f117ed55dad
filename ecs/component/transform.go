package component

// Direction is the facing derived from the current velocity.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionLeft
	DirectionRight
	DirectionLeftDown
	DirectionLeftUp
	DirectionRightDown
	DirectionRightUp
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionLeftDown:
		return "left-down"
	case DirectionLeftUp:
		return "left-up"
	case DirectionRightDown:
		return "right-down"
	case DirectionRightUp:
		return "right-up"
	}
	return "down"
}

// Offset returns the unit step for the direction in screen space (y grows
// downward).
func (d Direction) Offset() (int, int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionLeftDown:
		return -1, 1
	case DirectionLeftUp:
		return -1, -1
	case DirectionRightDown:
		return 1, 1
	case DirectionRightUp:
		return 1, -1
	}
	return 0, 1
}

// Transform is an integer screen position plus the displacement proposed for
// this frame. VX and VY are rewritten every frame before collision runs.
type Transform struct {
	X      int
	Y      int
	VX     int
	VY     int
	Facing Direction
}

var TransformComponent = NewComponent[Transform]()
