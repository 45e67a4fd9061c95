package telemetry

import "testing"

func TestSeedAndScalar(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		key    string
		offset int
		seed   int
		scalar float64
	}{
		{name: "ascii id", key: "ac-3F-1", seed: 456, scalar: 0.56},
		{name: "offset shifts seed", key: "301", offset: 2, seed: 150, scalar: 0.5},
		{name: "single rune", key: "x", seed: 120, scalar: 0.2},
		{name: "empty key", key: "", offset: 7, seed: 7, scalar: 0.07},
		{name: "non-ascii counts code points", key: "é", seed: 233, scalar: 0.33},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Seed(tc.key, tc.offset); got != tc.seed {
				t.Fatalf("Seed(%q, %d) = %d, want %d", tc.key, tc.offset, got, tc.seed)
			}
			if got := Scalar(tc.key, tc.offset); got != tc.scalar {
				t.Fatalf("Scalar(%q, %d) = %v, want %v", tc.key, tc.offset, got, tc.scalar)
			}
		})
	}
}

func TestLCGStep(t *testing.T) {
	t.Parallel()

	if got := LCGStep(0); got != 49297 {
		t.Fatalf("LCGStep(0) = %d, want 49297", got)
	}
	if got := LCGStep(1); got != 58598 {
		t.Fatalf("LCGStep(1) = %d, want 58598", got)
	}
	if got := LCGStep(-1); got < 0 || got >= lcgModulus {
		t.Fatalf("LCGStep(-1) = %d, out of range", got)
	}
}

func TestSequence_DeterministicAndBounded(t *testing.T) {
	t.Parallel()

	a, b := NewSequence(42), NewSequence(42)
	for i := 0; i < 1000; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, x)
		}
	}

	s := NewSequence(7)
	for i := 0; i < 100; i++ {
		v := s.Between(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("Between(2,5) = %v", v)
		}
	}
}
