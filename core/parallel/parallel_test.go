package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversRangeExactlyOnce(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{"zero items", 0},
		{"single item", 1},
		{"fewer items than workers", 3},
		{"remainder distribution", 101},
		{"large range", 10007},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits := make([]int32, tt.items)

			Parallelize(tt.items, func(start, end int) {
				if start < 0 || end > tt.items || start > end {
					t.Errorf("invalid chunk [%d, %d) for %d items", start, end, tt.items)
					return
				}
				for i := start; i < end; i++ {
					atomic.AddInt32(&visits[i], 1)
				}
			})

			for i, n := range visits {
				if n != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, n)
				}
			}
		})
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	// Below threshold: fn must be invoked once with the full range.
	var calls int32
	var gotStart, gotEnd int

	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		gotStart, gotEnd = start, end
	})

	if calls != 1 {
		t.Fatalf("expected 1 sequential call below threshold, got %d", calls)
	}
	if gotStart != 0 || gotEnd != 10 {
		t.Errorf("sequential call range = [%d, %d), want [0, 10)", gotStart, gotEnd)
	}

	// Above threshold: the whole range must still be covered.
	items := 500
	visits := make([]int32, items)
	ParallelizeWithThreshold(items, 100, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})

	for i, n := range visits {
		if n != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, n)
		}
	}
}

func TestParallelizeWithThreshold_NoCallOnEmptyRange(t *testing.T) {
	called := false
	ParallelizeWithThreshold(0, 100, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn should not be called for an empty range")
	}
}
