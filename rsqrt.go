// Package rsqrt computes a fixed-point approximation of 1/sqrt(x) for
// 32-bit unsigned integers using only integer additions, subtractions,
// shifts and multiplications built from them.
//
// The result is scaled by 2^16, i.e. it is a [Q16] value.
package rsqrt

// Inf is returned by [FastRsqrt] for zero input.
const Inf = 0xFFFFFFFF

const (
	one16   = 1 << 16 // 1.0 in Q16
	three16 = 3 << 16 // 3.0 in Q16
)

// rsqrtTable[e] approximates 2^16 / sqrt(2^e), mostly rounded to nearest:
//
//	math.Round(65536 / math.Sqrt(math.Ldexp(1, e)))
//
// except entry 19, which is 90 rather than 91. Outputs depend on the exact
// entries, so keep them as they are.
//
// Entries are non-increasing; the interpolation relies on it.
var rsqrtTable = [32]uint32{
	65536, 46341, 32768, 23170, 16384,
	11585, 8192, 5793, 4096, 2896,
	2048, 1448, 1024, 724, 512,
	362, 256, 181, 128, 90,
	64, 45, 32, 23, 16,
	11, 8, 6, 4, 3,
	2, 1,
}

// Table returns a copy of the lookup table used for the initial estimate.
func Table() [32]uint32 {
	return rsqrtTable
}

// FastRsqrt returns an approximation of 2^16 / sqrt(x).
//
// Special cases are:
//
//	FastRsqrt(0) = Inf
//	FastRsqrt(1) = 65536
//
// The result is bit-exact: it depends only on x.
// FastRsqrt is safe for concurrent use.
func FastRsqrt(x uint32) uint32 {
	// special cases
	switch x {
	case 0:
		return Inf
	case 1:
		return one16
	}

	// initial estimate from the nearest lower power of two
	e := 31 - LeadingZeros32(x)
	base := uint32(1) << e
	y := rsqrtTable[e]

	if x != base {
		// interpolate linearly towards rsqrtTable[e+1]
		var next uint32
		if e < 31 {
			next = rsqrtTable[e+1]
		}
		delta := y - next
		frac := uint32((uint64(x-base) << 16) >> e) // in [0, 1) as Q16
		y -= uint32(Mul64(delta, frac) >> 16)
	}

	y = refine(x, y)
	y = refine(x, y)
	return y
}

// refine applies one Newton-Raphson step y = y * (3 - x*y^2) / 2 in Q16.
// Every truncation is part of the result; do not round here.
func refine(x, y uint32) uint32 {
	_, y2 := mul32(y, y)

	hi, lo := mul32(x, y2)
	xy2 := hi<<16 | lo>>16 // bits [47:16]

	corr := three16 - xy2 // wraps around

	hi, lo = mul32(y, corr)
	return hi<<15 | lo>>17 // bits [48:17]
}
