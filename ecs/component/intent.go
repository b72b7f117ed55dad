package component

// Intent is the desired movement direction and attack state for this frame,
// whether it came from a player's input or from a script.
type Intent struct {
	MoveX     int
	MoveY     int
	Attacking bool
}

var IntentComponent = NewComponent[Intent]()

// Mover scales an intent direction into a per-frame displacement.
type Mover struct {
	Speed int
}

var MoverComponent = NewComponent[Mover]()
