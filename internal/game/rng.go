package game

// RNG is a small xorshift64 generator with snapshotable state.
// The simulation uses it instead of math/rand so that mid-attempt
// snapshots can capture and restore the generator exactly, keeping
// resumed runs identical to uninterrupted ones. It is injectable by
// seed, which keeps vulnerability selection reproducible under test.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from a seed. A zero seed is replaced with a
// fixed odd constant since xorshift cannot leave the zero state.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &RNG{state: s}
}

func (r *RNG) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a uniform value in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// State returns the current generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores the generator from a snapshot.
func (r *RNG) SetState(s uint64) {
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	r.state = s
}
