package rsqrt

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = Q16(0)

// Format implements [fmt.Formatter].
//
// The verbs f, F, s and v print the decimal value; d prints the raw
// fixed-point integer.
func (x Q16) Format(s fmt.State, verb rune) {
	var prefix []byte
	var data []byte

	// sign
	if !x.IsInf() || verb == 'd' {
		if s.Flag('+') {
			prefix = append(prefix, '+')
		} else if s.Flag(' ') {
			prefix = append(prefix, ' ')
		}
	}

	switch verb {
	case 'f', 'F':
		if prec, ok := s.Precision(); ok {
			data = x.Append(data, prec)
		} else {
			data = x.Append(data, 6)
		}
	case 's', 'v':
		if prec, ok := s.Precision(); ok {
			data = x.Append(data, prec)
		} else {
			data = x.Append(data, -1)
		}
	case 'd':
		data = strconv.AppendUint(data, uint64(x), 10)
	default:
		fmt.Fprintf(s, "%%!%c(rsqrt.Q16=%s)", verb, x.String())
		return
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		buf[0] = ' '
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			for i := len(prefix) + len(data); i < w; i++ {
				s.Write(buf[:1])
			}
		} else {
			for i := len(prefix) + len(data); i < w; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}
