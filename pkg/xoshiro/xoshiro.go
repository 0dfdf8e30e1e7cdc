// Package xoshiro implements the xoshiro256** generator with jump functions,
// used to give every worker an independent, non-overlapping random stream.
//
// A stream is carved out of a single seed by long-jumping a clone of the
// generator: stream i is the seed generator advanced by i*2^192 steps.
//
//	base := xoshiro.New(seed)
//	r := base.Stream(workerID)
//	victim := r.Intn(workers)
//
// Rand is not safe for concurrent use; each goroutine owns its own.
package xoshiro

import "math/bits"

var (
	jump     = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}
	longJump = [4]uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635}
)

type Rand struct {
	s [4]uint64
}

// New seeds a generator through splitmix64, so any seed (including zero)
// yields a valid non-zero state.
func New(seed uint64) *Rand {
	r := &Rand{}
	for i := range r.s {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		r.s[i] = z ^ (z >> 31)
	}
	return r
}

func (r *Rand) Uint64() uint64 {
	s := &r.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("xoshiro: invalid argument to Intn")
	}
	hi, _ := bits.Mul64(r.Uint64(), uint64(n))
	return int(hi)
}

// Jump advances the generator by 2^128 calls to Uint64.
func (r *Rand) Jump() { r.apply(&jump) }

// LongJump advances the generator by 2^192 calls to Uint64.
func (r *Rand) LongJump() { r.apply(&longJump) }

func (r *Rand) Clone() *Rand {
	c := *r
	return &c
}

// Stream returns a copy of r long-jumped i times. r is not modified.
func (r *Rand) Stream(i int) *Rand {
	c := r.Clone()
	for range i {
		c.LongJump()
	}
	return c
}

func (r *Rand) apply(poly *[4]uint64) {
	var s0, s1, s2, s3 uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(uint64(1)<<b) != 0 {
				s0 ^= r.s[0]
				s1 ^= r.s[1]
				s2 ^= r.s[2]
				s3 ^= r.s[3]
			}
			r.Uint64()
		}
	}
	r.s = [4]uint64{s0, s1, s2, s3}
}
