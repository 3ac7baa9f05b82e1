package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New builds a PCG source from seed. Both PCG words come from mixing seed,
// so nearby seeds such as 1 and 2 still produce unrelated shuffles.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the index-th game of a batch started with base.
// Games seeded this way are independent of which worker plays them.
func Derive(base int64, index int) int64 {
	return int64(mix(uint64(base) + uint64(index+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
