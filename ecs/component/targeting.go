package component

// Targeting holds what a pursuer is chasing. RawX/RawY is where the pursued
// entity actually is and is used as the path destination; TargetX/TargetY is
// where steering heads this frame and may be a waypoint instead.
type Targeting struct {
	Target    uint64
	HasTarget bool
	RawX      int
	RawY      int
	TargetX   int
	TargetY   int
}

var TargetingComponent = NewComponent[Targeting]()
