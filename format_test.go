package rsqrt

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		x      Q16
		want   string
	}{
		{"%v", 0x8000, "0.5"},
		{"%s", 0x18000, "1.5"},
		{"%v", 0x93cc, "0.57733"},
		{"%v", Inf, "+Inf"},

		{"%f", 0x8000, "0.500000"},
		{"%.2f", 0x93cc, "0.58"},
		{"%.0f", 0x10000, "1"},
		{"%+.1f", 0x8000, "+0.5"},
		{"% .1f", 0x8000, " 0.5"},
		{"%8.2f", 0x8000, "    0.50"},
		{"%-8.2f", 0x8000, "0.50    "},
		{"%+8.2f", 0x8000, "   +0.50"},
		{"%+v", Inf, "+Inf"},

		{"%d", 0x10000, "65536"},
		{"%+d", 0x10000, "+65536"},
		{"%6d", 0x2000, "  8192"},
		{"%d", Inf, "4294967295"},

		{"%x", 0x8000, "%!x(rsqrt.Q16=0.5)"},
	}

	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.x)
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.format, tt.want, got)
		}
	}
}
