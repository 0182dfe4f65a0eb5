package perf_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/kaplanz/zakc/pkg/perf"
)

func ExampleDiff() {
	// Diff holds the amount of time an operation took, the number of bytes
	// consumed, and the total number of allocated objects.
	diff := perf.Diff{
		Time:    15 * time.Second,
		Bytes:   100,
		Objects: 100,
	}
	fmt.Println(diff)
	// Output: 15s, 100 B, 100 objects
}

func TestSince(t *testing.T) {
	t.Parallel()

	start := perf.Now()
	diff := perf.Since(start)
	if diff.Time < 0 {
		t.Errorf("Since() got negative duration %s", diff.Time)
	}
}

func TestDiffNegative(t *testing.T) {
	t.Parallel()

	left := perf.Snapshot{Bytes: 100, Objects: 1}
	right := perf.Snapshot{Bytes: 300, Objects: 2}

	diff := left.Sub(right)
	if got, want := diff.String(), "0s, -200 B, -1 objects"; got != want {
		t.Errorf("String() got = %q, want = %q", got, want)
	}
}
