package core

import "math/rand/v2"

// RNG seeds boards reproducibly from a single int64.
type RNG struct {
	src *rand.Rand
}

// NewRNG returns an RNG whose sequence depends only on seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBool sets every entry of buf to a fair coin flip, one bit of a
// 64-bit draw per entry.
func (r *RNG) FillBool(buf []bool) {
	var bits uint64
	for i := range buf {
		if i%64 == 0 {
			bits = r.src.Uint64()
		}
		buf[i] = bits&1 == 1
		bits >>= 1
	}
}
