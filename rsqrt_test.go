package rsqrt

import (
	"context"
	"math"
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestFastRsqrt(t *testing.T) {
	tests := []struct {
		x uint32
		y uint32
	}{
		// special cases
		{0, Inf},
		{1, 65536},

		// powers of two
		{2, 46341},
		{4, 32768},
		{64, 8192},
		{128, 5792},
		{4096, 1024},
		{1 << 16, 256},
		{1 << 24, 16},
		{1 << 31, 1},

		// interpolated
		{3, 37836},
		{5, 29308},
		{7, 24770},
		{9, 21845},
		{10, 20724},
		{25, 13107},
		{100, 6553},
		{123, 5909},
		{127, 5815},
		{129, 5770},
		{500, 2930},
		{1000, 2072},
		{65535, 255},
		{65537, 255},
		{1000000, 65},
		{1<<24 - 1, 15},
		{math.MaxInt32, 1},
		{math.MaxUint32 - 1, 1},
		{math.MaxUint32, 1},
	}

	for _, tt := range tests {
		y := FastRsqrt(tt.x)
		if y != tt.y {
			t.Errorf("%d: expected %d, got %d", tt.x, tt.y, y)
		}
	}
}

func TestFastRsqrt_Accuracy(t *testing.T) {
	for _, x := range DefaultInputs {
		y := FastRsqrt(x)
		want := one16 / math.Sqrt(float64(x))
		if e := math.Abs(float64(y)-want) / want; e > 0.002 {
			t.Errorf("%d: got %d, want %.2f, relative error %g", x, y, want, e)
		}
	}
}

func TestFastRsqrt_PowerOfTwo(t *testing.T) {
	// only the Newton steps touch exact powers of two,
	// and they move these entries down by one.
	moved := map[uint32]bool{7: true, 23: true, 27: true, 29: true}

	for e := uint32(0); e < 32; e++ {
		x := uint32(1) << e
		y := FastRsqrt(x)

		want := rsqrtTable[e]
		if e > 0 {
			if got := refine(x, refine(x, rsqrtTable[e])); got != y {
				t.Errorf("2^%d: expected %d from refinement, got %d", e, got, y)
			}
		}
		if moved[e] {
			want--
		}
		if y != want {
			t.Errorf("2^%d: expected %d, got %d", e, want, y)
		}
	}
}

func TestFastRsqrt_Monotonic(t *testing.T) {
	// strictly non-increasing below 2^16
	prev := FastRsqrt(1)
	for x := uint32(2); x < 1<<16; x++ {
		y := FastRsqrt(x)
		if y > prev {
			t.Fatalf("%d: %d > FastRsqrt(%d) = %d", x, y, x-1, prev)
		}
		prev = y
	}

	// above 2^16 truncation may step up by one at a bucket boundary
	for e := uint32(16); e < 32; e++ {
		base := uint32(1) << e
		prev := FastRsqrt(base - 2000)
		for x := base - 1999; x <= base+2000; x++ {
			y := FastRsqrt(x)
			if y > prev+1 {
				t.Fatalf("%d: %d > FastRsqrt(%d) + 1 = %d", x, y, x-1, prev+1)
			}
			prev = y
		}
	}

	r := newXorshift32()
	for i := 0; i < 100000; i++ {
		a, b := r.Uint32(), r.Uint32()
		if a == 0 || b == 0 {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if ya, yb := FastRsqrt(a), FastRsqrt(b); ya+1 < yb {
			t.Errorf("FastRsqrt(%d) = %d < FastRsqrt(%d) = %d", a, ya, b, yb)
		}
	}
}

func TestFastRsqrt_Concurrent(t *testing.T) {
	r := newXorshift32()
	inputs := make([]uint32, 1024)
	want := make([]uint32, len(inputs))
	for i := range inputs {
		inputs[i] = r.Uint32()
		want[i] = FastRsqrt(inputs[i])
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, x := range inputs {
				if y := FastRsqrt(x); y != want[i] {
					t.Errorf("%d: expected %d, got %d", x, want[i], y)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestTable(t *testing.T) {
	table := Table()
	for e := range table {
		want := one16 / math.Sqrt(math.Ldexp(1, e))
		if math.Abs(float64(table[e])-want) > 1 {
			t.Errorf("table[%d]: expected %.2f, got %d", e, want, table[e])
		}
		if e > 0 && table[e-1] < table[e] {
			t.Errorf("table[%d] = %d < table[%d] = %d", e-1, table[e-1], e, table[e])
		}
	}

	// callers get a copy
	table[0] = 0
	if rsqrtTable[0] != one16 {
		t.Errorf("table was modified")
	}
}

func FuzzFastRsqrt(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(3))
	f.Add(uint32(math.MaxUint32))

	f.Fuzz(func(t *testing.T, x uint32) {
		y := FastRsqrt(x)
		if x == 0 {
			if y != Inf {
				t.Errorf("expected Inf, got %d", y)
			}
			return
		}
		// never above the entry of the lower power of two
		e := 31 - LeadingZeros32(x)
		if y > rsqrtTable[e] {
			t.Errorf("%d: %d > table[%d] = %d", x, y, e, rsqrtTable[e])
		}
		if y != FastRsqrt(x) {
			t.Errorf("%d: not deterministic", x)
		}
	})
}

func BenchmarkFastRsqrt(b *testing.B) {
	r := newXorshift32()
	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(FastRsqrt(r.Uint32()))
	}
}
