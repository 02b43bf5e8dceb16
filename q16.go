package rsqrt

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// Q16 is an unsigned fixed-point number with 16 fractional bits.
// The value v stands for the real number v / 65536.
type Q16 uint32

// Float64 returns the float64 representation of x.
// Every Q16 value is exactly representable.
func (x Q16) Float64() float64 {
	return float64(x) / one16
}

// IsInf reports whether x is the Inf sentinel returned by [FastRsqrt].
func (x Q16) IsInf() bool {
	return x == Inf
}

// String returns the shortest decimal representation of x that rounds back to x.
func (x Q16) String() string {
	return string(x.Append(make([]byte, 0, 16), -1))
}

// Text is like String, with prec fractional digits.
// The special precision -1 uses the smallest number of digits necessary
// so that the result rounds back to x.
func (x Q16) Text(prec int) string {
	return string(x.Append(make([]byte, 0, 16), prec))
}

// Append appends the decimal representation of x, as generated by
// x.Text(prec), to buf and returns the extended buffer.
func (x Q16) Append(buf []byte, prec int) []byte {
	if x.IsInf() {
		return append(buf, "+Inf"...)
	}
	return x.appendDec(buf, prec)
}

// x / 2^16 = 2x / 2^17 = 2x * 5^17 / 10^17
const (
	digits17 = 17
	five17   = 762939453125 // = 5^17
)

func (x Q16) appendDec(buf []byte, prec int) []byte {
	ten := int128.Uint128{L: 10}

	// exact = x / 2^16 * 10^17
	var exact int128.Uint128
	exact.H, exact.L = bits.Mul64(uint64(x)*2, five17)

	var n int // number of fractional digits
	var dec17 int128.Uint128
	if prec >= 0 {
		n = prec
		if n > digits17 {
			n = digits17
		}
		dec17 = roundUint128(exact, digits17-n)
	} else if x == 0 {
		dec17 = exact
	} else {
		// find the shortest decimal within half an ulp of x
		var lower, upper int128.Uint128
		lower.H, lower.L = bits.Mul64(uint64(x)*2-1, five17)
		upper.H, upper.L = bits.Mul64(uint64(x)*2+1, five17)
		for n = 0; n < digits17; n++ {
			dec17 = roundUint128(exact, digits17-n)
			if dec17.Cmp(lower) >= 0 && dec17.Cmp(upper) <= 0 {
				break
			}
		}
		if n == digits17 {
			dec17 = exact
		}
	}

	// convert to decimal
	var data [digits17]byte
	for i := 0; i < digits17; i++ {
		var mod int128.Uint128
		dec17, mod = dec17.DivMod(ten)
		data[i] = byte(mod.L)
	}

	// convert integer part
	switch {
	case dec17.L >= 10000:
		buf = append(buf, byte((dec17.L/10000)%10)+'0')
		fallthrough
	case dec17.L >= 1000:
		buf = append(buf, byte((dec17.L/1000)%10)+'0')
		fallthrough
	case dec17.L >= 100:
		buf = append(buf, byte((dec17.L/100)%10)+'0')
		fallthrough
	case dec17.L >= 10:
		buf = append(buf, byte((dec17.L/10)%10)+'0')
		fallthrough
	default:
		buf = append(buf, byte(dec17.L%10)+'0')
	}
	if n == 0 && prec <= 0 {
		return buf
	}
	if prec < 0 {
		// trailing zeros of the exact value
		for n > 0 && data[digits17-n] == 0 {
			n--
		}
		if n == 0 {
			return buf
		}
	}

	// convert fractional part
	buf = append(buf, '.')
	for i := digits17 - 1; i >= digits17-n; i-- {
		buf = append(buf, data[i]+'0')
	}
	for i := n; i < prec; i++ {
		buf = append(buf, '0')
	}
	return buf
}

// roundUint128 rounds x to a multiple of 10^n, with ties to even.
func roundUint128(x int128.Uint128, n int) int128.Uint128 {
	if n == 0 {
		return x
	}
	ten := int128.Uint128{L: 10}
	y := int128.Uint128{L: 1}
	for i := 0; i < n; i++ {
		y = y.Mul(ten)
	}
	y2 := y.Rsh(1)

	// round to nearest even
	div, mod := x.DivMod(y)
	x = x.Sub(mod)
	cmp := mod.Cmp(y2)
	if cmp > 0 {
		// round up
		return x.Add(y)
	}
	if cmp < 0 {
		// round down
		return x
	}

	// round to even
	if div.L&1 != 0 {
		return x.Add(y)
	}
	return x
}
