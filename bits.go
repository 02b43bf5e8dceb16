package rsqrt

// LeadingZeros32 returns the number of leading zero bits in x; the result is 32 for x == 0.
//
// It narrows down the highest set bit with a binary search over masks,
// so it needs no hardware count-leading-zeros instruction.
func LeadingZeros32(x uint32) uint32 {
	if x == 0 {
		return 32
	}

	var n uint32
	if x&0xFFFF0000 == 0 {
		n += 16
		x <<= 16
	}
	if x&0xFF000000 == 0 {
		n += 8
		x <<= 8
	}
	if x&0xF0000000 == 0 {
		n += 4
		x <<= 4
	}
	if x&0xC0000000 == 0 {
		n += 2
		x <<= 2
	}
	if x&0x80000000 == 0 {
		n++
	}
	return n
}

// leadingZerosScan is the linear version of LeadingZeros32.
// It is smaller and slower, and gives the same result for every input.
func leadingZerosScan(x uint32) uint32 {
	if x == 0 {
		return 32
	}
	var n uint32
	for m := uint32(0x80000000); x&m == 0; m >>= 1 {
		n++
	}
	return n
}
