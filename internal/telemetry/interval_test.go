package telemetry

import (
	"errors"
	"testing"
)

func TestMergeIntervals(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		in    []Interval
		want  []Interval
		union float64
	}

	cases := []testCase{
		{
			name:  "overlap and gap",
			in:    []Interval{{8, 10}, {9, 12}, {14, 16}},
			want:  []Interval{{8, 12}, {14, 16}},
			union: 6,
		},
		{
			name:  "touching intervals merge",
			in:    []Interval{{1, 2}, {2, 3}},
			want:  []Interval{{1, 3}},
			union: 2,
		},
		{
			name:  "unsorted and nested",
			in:    []Interval{{15, 18}, {6, 20}, {7, 8}},
			want:  []Interval{{6, 20}},
			union: 14,
		},
		{
			name:  "empty input",
			in:    nil,
			want:  nil,
			union: 0,
		},
		{
			name:  "zero-length interval",
			in:    []Interval{{5, 5}},
			want:  []Interval{{5, 5}},
			union: 0,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MergeIntervals(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("MergeIntervals = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("MergeIntervals = %v, want %v", got, tc.want)
				}
			}
			if u := UnionDuration(tc.in); u != tc.union {
				t.Fatalf("UnionDuration = %v, want %v", u, tc.union)
			}
		})
	}
}

func TestMergeIntervals_Properties(t *testing.T) {
	t.Parallel()

	seq := NewSequence(99)
	for round := 0; round < 200; round++ {
		n := 1 + int(seq.Next()*8)
		in := make([]Interval, n)
		sum := 0.0
		longest := 0.0
		for i := range in {
			start := seq.Between(0, 20)
			end := start + seq.Between(0, 4)
			in[i] = Interval{Start: start, End: end}
			sum += in[i].Hours()
			if in[i].Hours() > longest {
				longest = in[i].Hours()
			}
		}
		orig := append([]Interval(nil), in...)

		merged := MergeIntervals(in)
		for i := 1; i < len(merged); i++ {
			if merged[i].Start <= merged[i-1].End {
				t.Fatalf("round %d: intervals not disjoint: %v", round, merged)
			}
		}
		u := UnionDuration(in)
		if u > sum+1e-9 || u < longest-1e-9 {
			t.Fatalf("round %d: union %v outside [%v, %v]", round, u, longest, sum)
		}
		for i := range in {
			if in[i] != orig[i] {
				t.Fatalf("round %d: input modified", round)
			}
		}
	}
}

func TestNewInterval(t *testing.T) {
	t.Parallel()

	if _, err := NewInterval(3, 2); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("start > end err = %v", err)
	}
	if _, err := NewInterval(-1, 2); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("negative start err = %v", err)
	}
	if _, err := NewInterval(20, 25); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("end past 24 err = %v", err)
	}
	iv, err := NewInterval(8.5, 10)
	if err != nil {
		t.Fatalf("NewInterval: %v", err)
	}
	if iv.Hours() != 1.5 {
		t.Fatalf("Hours = %v", iv.Hours())
	}
}
