package rsqrt

// xorshift32 is a small deterministic generator for tests and benchmarks.
type xorshift32 struct {
	x uint32
}

func newXorshift32() *xorshift32 {
	return &xorshift32{x: 2463534242}
}

func (r *xorshift32) Uint32() uint32 {
	x := r.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.x = x
	return x
}
