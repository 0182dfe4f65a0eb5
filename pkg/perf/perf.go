// Package perf captures point-in-time measurements of heap use, for
// inspecting the memory footprint of containers.
package perf

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// Snapshot holds heap metrics captured at one instant.
type Snapshot struct {
	// Time the snapshot was captured
	Time time.Time

	// bytes of heap and stack in use
	Bytes int64

	// live objects on the heap
	Objects int64
}

// Now runs a garbage collection and captures a snapshot of the heap.
func Now() (s Snapshot) {
	s.Time = time.Now()
	s.Bytes, s.Objects = measureHeap()
	return
}

// Sub subtracts the other snapshot from this snapshot.
func (s Snapshot) Sub(other Snapshot) Diff {
	return Diff{
		Time:    s.Time.Sub(other.Time),
		Bytes:   s.Bytes - other.Bytes,
		Objects: s.Objects - other.Objects,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s (%d objects) used at %s", human(s.Bytes), s.Objects, s.Time.Format(time.Stamp))
}

// Diff represents the difference between two snapshots.
type Diff struct {
	Time    time.Duration
	Bytes   int64
	Objects int64
}

func (d Diff) String() string {
	return fmt.Sprintf("%s, %s, %d objects", d.Time, human(d.Bytes), d.Objects)
}

// Since computes the diff between now and a previous snapshot.
func Since(start Snapshot) Diff {
	return Now().Sub(start)
}

// human renders a possibly negative byte count.
func human(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.Bytes(uint64(-bytes))
	}
	return humanize.Bytes(uint64(bytes))
}

// measureHeap reports the bytes and objects currently in use.
func measureHeap() (bytes int64, objects int64) {
	var stats runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&stats)
	return int64(stats.HeapInuse + stats.StackInuse), int64(stats.HeapObjects)
}
