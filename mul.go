package rsqrt

// Mul64 returns the full 64-bit product of a and b.
func Mul64(a, b uint32) uint64 {
	hi, lo := mul32(a, b)
	return uint64(hi)<<32 | uint64(lo)
}

// mul32 returns the 64-bit product of a and b as two 32-bit halves.
// It uses shifts and additions on 32-bit words only, for targets
// without a wide multiplier.
func mul32(a, b uint32) (hi, lo uint32) {
	// (aHi, aLo) is a shifted left by i bits
	aLo, aHi := a, uint32(0)
	for i := 0; i < 32; i++ {
		if b&1 != 0 {
			old := lo
			lo += aLo
			if lo < old {
				// carry
				hi++
			}
			hi += aHi
		}
		aHi = aHi<<1 | aLo>>31
		aLo <<= 1
		b >>= 1
	}
	return
}
