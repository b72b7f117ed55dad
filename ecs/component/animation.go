package component

// SpriteAnimation selects a frame from a sheet laid out with one row per
// facing direction. Frames [0, RunFirst) are idle and [RunFirst, RunLast]
// are the run cycle.
type SpriteAnimation struct {
	Row        int
	FrameCount int
	Selection  int
	RunFirst   int
	RunLast    int
	StunFirst  int
	StunLast   int
}

var SpriteAnimationComponent = NewComponent[SpriteAnimation]()
