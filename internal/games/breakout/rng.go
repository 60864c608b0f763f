package breakout

// Source is the random draw used by power-up spawning and particle respawn.
// The two never share a Source, so the cosmetic trail cannot change which
// power-ups drop. Tests substitute a scripted source to make outcomes
// reproducible.
type Source interface {
	Intn(n int) int
}

// SimpleRNG is a seeded linear congruential generator. Its state is a single
// word so it can be captured in a Snapshot.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a generator from seed. A zero seed is replaced by 1.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next advances the generator.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Upper bits are used since the low bits of an
// LCG cycle with short periods.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the raw generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores a state captured with State.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}
