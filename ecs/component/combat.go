package component

import "time"

// Combat is the attacker side of melee: cooldown between strikes and the
// number of frames a swing stays out.
type Combat struct {
	StrikeCooldown  time.Duration
	LastStrike      time.Duration
	Struck          bool
	AttackFrames    int
	AttackRemaining int
	// SinceStrike feeds cooldown displays; it saturates at StrikeCooldown.
	SinceStrike time.Duration
}

var CombatComponent = NewComponent[Combat]()

// DamageDealer deals DamagePerHit to touched entities of another faction.
// Armed is set when a swing starts and cleared on the first hit.
type DamageDealer struct {
	Faction      Faction
	DamagePerHit int
	Armed        bool
	Stun         bool
}

var DamageDealerComponent = NewComponent[DamageDealer]()

// Weapon follows its owner and is pushed Reach pixels in the owner's facing
// direction while swinging.
type Weapon struct {
	Owner uint64
	Reach int
}

var WeaponComponent = NewComponent[Weapon]()
