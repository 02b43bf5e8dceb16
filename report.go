package rsqrt

import "strconv"

// DefaultInputs is a mix of small and medium inputs, covering exact
// powers of two, perfect squares and values in between.
var DefaultInputs = []uint32{1, 3, 9, 25, 64, 123, 500}

// Result compares one [FastRsqrt] output with the ideal value.
// All fields are computed with integer arithmetic.
type Result struct {
	X        uint32 // input
	Y        uint32 // FastRsqrt(X)
	Ideal100 uint32 // Ideal100(X)

	// Percent is the relative error of Y in whole percent, rounded down.
	// Remainder/Ideal100 is the part lost by the integer division.
	Percent   uint32
	Remainder uint32
}

// Evaluate runs [FastRsqrt] on x and measures its error against [Ideal100].
func Evaluate(x uint32) Result {
	r := Result{
		X:        x,
		Y:        FastRsqrt(x),
		Ideal100: Ideal100(x),
	}
	if x == 0 {
		// both are Inf
		return r
	}

	approx := uint64(r.Y) * 100
	ideal := uint64(r.Ideal100)
	var diff uint64
	if approx > ideal {
		diff = approx - ideal
	} else {
		diff = ideal - approx
	}
	diff *= 100
	r.Percent = uint32(diff / ideal)
	r.Remainder = uint32(diff % ideal)
	return r
}

// Value returns Y as a fixed-point number.
func (r Result) Value() Q16 {
	return Q16(r.Y)
}

// String formats r as a single report line, e.g.
//
//	fast_rsqrt(3) = 37836  (ideal ≈ 37837.23), error ≈ 0% (rem = 12300/3783723)
func (r Result) String() string {
	return string(r.AppendText(make([]byte, 0, 80)))
}

// AppendText appends the report line of r to buf.
func (r Result) AppendText(buf []byte) []byte {
	buf = append(buf, "fast_rsqrt("...)
	buf = strconv.AppendUint(buf, uint64(r.X), 10)
	buf = append(buf, ") = "...)
	buf = strconv.AppendUint(buf, uint64(r.Y), 10)
	buf = append(buf, "  (ideal ≈ "...)
	buf = appendCenti(buf, r.Ideal100)
	buf = append(buf, "), error ≈ "...)
	buf = strconv.AppendUint(buf, uint64(r.Percent), 10)
	buf = append(buf, "% (rem = "...)
	buf = strconv.AppendUint(buf, uint64(r.Remainder), 10)
	buf = append(buf, '/')
	buf = strconv.AppendUint(buf, uint64(r.Ideal100), 10)
	buf = append(buf, ')')
	return buf
}

// appendCenti appends v / 100 with two decimal places.
func appendCenti(buf []byte, v uint32) []byte {
	if v == Inf {
		return append(buf, "+Inf"...)
	}
	buf = strconv.AppendUint(buf, uint64(v/100), 10)
	buf = append(buf, '.')
	return append(buf, byte(v/10%10)+'0', byte(v%10)+'0')
}
