package skyfall

// SimpleRNG is a deterministic pseudo-random number generator (LCG).
// The game threads one instance through all spawn draws so that a fixed
// seed reproduces an identical session, and snapshots can carry the
// generator state.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// IntRange returns a random int in [lo, hi). Returns lo when the range
// is empty.
func (r *SimpleRNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the internal generator state, for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores the internal generator state from a snapshot.
func (r *SimpleRNG) SetState(s uint64) {
	if s == 0 {
		s = 1
	}
	r.state = s
}
