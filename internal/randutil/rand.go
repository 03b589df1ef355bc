// Package randutil derives reproducible math/rand/v2 sources from a single
// int64 seed, so deterministic shuffles only need one number on the command
// line or in a test.
package randutil

import rand "math/rand/v2"

const gamma = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG wants two 64-bit words; both are derived from the seed through a
// splitmix64 finalizer so that nearby seeds still produce unrelated
// streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+gamma)))
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
