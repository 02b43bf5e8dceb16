package rsqrt

// Ideal100 returns 100 * 2^16 / sqrt(x) rounded to the nearest integer.
// It is the exact reference [FastRsqrt] is measured against, scaled by
// 100 so that two decimal places survive.
//
// Special cases are:
//
//	Ideal100(0) = Inf
func Ideal100(x uint32) uint32 {
	if x == 0 {
		return Inf
	}

	// (100 * 2^16)^2 = 2^32 * 10^4
	const n = (1 << 32) * 10000

	// round(sqrt(q)) = (floor(sqrt(4q)) + 1) / 2
	q := n / uint64(x)
	return uint32((isqrt64(q<<2) + 1) >> 1)
}

// isqrt64 returns floor(sqrt(n)).
func isqrt64(n uint64) uint64 {
	// generate sqrt(n) bit by bit
	var q uint64 // q = sqrt(n)
	r := uint64(1 << 62)
	for r > n {
		r >>= 2
	}
	for r != 0 {
		t := q + r
		if t <= n {
			n -= t
			q = q>>1 + r
		} else {
			q >>= 1
		}
		r >>= 2
	}
	return q
}
