package component

// Faction groups entities that should not damage each other.
type Faction byte

const (
	FactionNeutral  Faction = 'N'
	FactionFriendly Faction = 'F'
	FactionEnemy    Faction = 'E'
)

// Collidable marks an occupant of the spatial index. Static occupants are
// indexed once per level; the rest are re-indexed every frame. Ghost
// occupants register touches but never block movement or paths.
type Collidable struct {
	Static bool
	Ghost  bool
}

var CollidableComponent = NewComponent[Collidable]()

// CollisionDetector marks an entity that performs collision checks. Touched
// holds the entities overlapped this frame and is rebuilt by every
// collision pass; nothing else writes it.
type CollisionDetector struct {
	Faction Faction
	Touched []uint64
}

var CollisionDetectorComponent = NewComponent[CollisionDetector]()

// TouchEvent is emitted for every visible occupant a detector overlaps.
// Entity and Other hold ecs.Entity values.
type TouchEvent struct {
	Entity uint64
	Other  uint64
}
