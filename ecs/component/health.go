package component

// Health tracks hitpoints plus the stun status applied by some attacks.
type Health struct {
	Max         int
	Current     int
	DamageTaken int

	Stunned       bool
	StunFrames    int
	StunRemaining int
}

// Fraction returns remaining health in [0,1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var HealthComponent = NewComponent[Health]()
