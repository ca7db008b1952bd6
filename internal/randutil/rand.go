package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG generator whose two seed words are both derived from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Stream returns the n-th independent generator derived from seed. Simulation
// workers each take their own stream so results do not depend on scheduling.
func Stream(seed int64, n int) *rand.Rand {
	u := mix(uint64(seed)) + uint64(n+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(u^goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
