package ports

// Rand abstracts the random source driving initial spot states and drift
// simulation so tests can supply deterministic sequences. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
