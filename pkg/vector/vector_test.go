package vector_test

import (
	"fmt"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/kaplanz/zakc/pkg/vector"
)

func ExampleVector() {
	var vec vector.Vector[string]

	vec.Append("foo")
	vec.Append("bar")
	vec.Insert(1, "baz")

	fmt.Println(vec.Slice())
	fmt.Println(vec.Len())

	value, ok := vec.Remove(0)
	fmt.Println(value, ok)
	fmt.Println(vec.Slice())

	// Output: [foo baz bar]
	// 3
	// foo true
	// [baz bar]
}

// check compares the contents of a vector against want.
func check[T comparable](t *testing.T, vec *vector.Vector[T], want []T) {
	t.Helper()

	if got := vec.Len(); got != len(want) {
		t.Fatalf("Len() got = %d, want = %d", got, len(want))
	}
	if got := vec.Slice(); !slices.Equal(got, want) {
		t.Errorf("Slice() got = %v, want = %v", got, want)
	}
}

func TestVectorAppend(t *testing.T) {
	t.Parallel()

	var vec vector.Vector[int]
	if !vec.IsEmpty() {
		t.Error("IsEmpty() got = false, want = true")
	}

	for i := 0; i < 100; i++ {
		vec.Append(i)
		if size, capacity := vec.Len(), vec.Cap(); size > capacity {
			t.Fatalf("Len() = %d exceeds Cap() = %d", size, capacity)
		}
	}
	if vec.IsEmpty() {
		t.Error("IsEmpty() got = true, want = false")
	}

	// capacity doubles, so it stays below twice the length
	if size, capacity := vec.Len(), vec.Cap(); capacity >= 2*size {
		t.Errorf("Cap() = %d, want < %d for %d values", capacity, 2*size, size)
	}

	for i := 0; i < 100; i++ {
		value, ok := vec.Get(i)
		if !ok {
			t.Fatalf("Get(%d) got ok = false, want = true", i)
		}
		if value != i {
			t.Errorf("Get(%d) got = %d, want = %d", i, value, i)
		}
	}
}

func TestVectorExtend(t *testing.T) {
	t.Parallel()

	var left, right vector.Vector[int]
	for i := 0; i < 3; i++ {
		left.Append(i)
		right.Append(10 + i)
	}

	left.Extend(&right)
	check(t, &left, []int{0, 1, 2, 10, 11, 12})
	// the source vector is untouched
	check(t, &right, []int{10, 11, 12})

	// extending with the empty vector is a no-op
	var empty vector.Vector[int]
	left.Extend(&empty)
	check(t, &left, []int{0, 1, 2, 10, 11, 12})

	// self-extension duplicates the contents
	right.Extend(&right)
	check(t, &right, []int{10, 11, 12, 10, 11, 12})
}

func TestVectorInsertRemove(t *testing.T) {
	t.Parallel()

	var vec vector.Vector[string]
	for _, s := range []string{"a", "c", "d"} {
		vec.Append(s)
	}

	if !vec.Insert(1, "b") {
		t.Error("Insert(1) got = false, want = true")
	}
	if !vec.Insert(0, "_") {
		t.Error("Insert(0) got = false, want = true")
	}
	if !vec.Insert(vec.Len(), "e") {
		t.Error("Insert(len) got = false, want = true")
	}
	check(t, &vec, []string{"_", "a", "b", "c", "d", "e"})

	if vec.Insert(100, "x") {
		t.Error("Insert(100) got = true, want = false")
	}

	if value, ok := vec.Remove(0); !ok || value != "_" {
		t.Errorf("Remove(0) got = %q (ok = %t), want = \"_\"", value, ok)
	}
	if value, ok := vec.Remove(2); !ok || value != "c" {
		t.Errorf("Remove(2) got = %q (ok = %t), want = \"c\"", value, ok)
	}
	check(t, &vec, []string{"a", "b", "d", "e"})

	if _, ok := vec.Remove(100); ok {
		t.Error("Remove(100) got ok = true, want = false")
	}
}

func TestVectorShrink(t *testing.T) {
	t.Parallel()

	var vec vector.Vector[int]
	for i := 0; i < 64; i++ {
		vec.Append(i)
	}
	grown := vec.Cap()

	// popping below half occupancy halves the capacity
	for vec.Len() > 8 {
		if _, ok := vec.Pop(); !ok {
			t.Fatal("Pop() got ok = false, want = true")
		}
		if size, capacity := vec.Len(), vec.Cap(); capacity > 1 && size < capacity/2 {
			t.Fatalf("Cap() = %d not shrunk for Len() = %d", capacity, size)
		}
	}
	if got := vec.Cap(); got >= grown {
		t.Errorf("Cap() after pops got = %d, want < %d", got, grown)
	}

	// the surviving values are untouched
	check(t, &vec, []int{0, 1, 2, 3, 4, 5, 6, 7})
}

func TestVectorReserve(t *testing.T) {
	t.Parallel()

	var vec vector.Vector[int]
	if !vec.Reserve(100) {
		t.Error("Reserve(100) got = false, want = true")
	}
	if got := vec.Cap(); got != 100 {
		t.Errorf("Cap() got = %d, want = 100", got)
	}

	// no growth needed below the reserved capacity
	for i := 0; i < 100; i++ {
		vec.Append(i)
	}
	if got := vec.Cap(); got != 100 {
		t.Errorf("Cap() after appends got = %d, want = 100", got)
	}

	// reserving below the current length fails
	if vec.Reserve(10) {
		t.Error("Reserve(10) got = true, want = false")
	}

	for vec.Len() > 10 {
		vec.Pop()
	}
	if !vec.ShrinkToFit() {
		t.Error("ShrinkToFit() got = false, want = true")
	}
	if got := vec.Cap(); got != 10 {
		t.Errorf("Cap() after ShrinkToFit got = %d, want = 10", got)
	}
}

func TestVectorResize(t *testing.T) {
	t.Parallel()

	var vec vector.Vector[int]
	for i := 1; i <= 4; i++ {
		vec.Append(i)
	}

	// growing zero-fills the new slots
	if !vec.Resize(6) {
		t.Error("Resize(6) got = false, want = true")
	}
	check(t, &vec, []int{1, 2, 3, 4, 0, 0})

	// truncating drops the tail
	if !vec.Resize(2) {
		t.Error("Resize(2) got = false, want = true")
	}
	check(t, &vec, []int{1, 2})

	// slots released by the truncation read back as zero
	if !vec.Resize(4) {
		t.Error("Resize(4) got = false, want = true")
	}
	check(t, &vec, []int{1, 2, 0, 0})

	if vec.Resize(-1) {
		t.Error("Resize(-1) got = true, want = false")
	}
}

func TestVectorContainsFunc(t *testing.T) {
	t.Parallel()

	var vec vector.Vector[int]
	for i := 0; i < 10; i++ {
		vec.Append(i)
	}

	if !vec.ContainsFunc(func(v int) bool { return v == 7 }) {
		t.Error("ContainsFunc(7) got = false, want = true")
	}
	if vec.ContainsFunc(func(v int) bool { return v == 42 }) {
		t.Error("ContainsFunc(42) got = true, want = false")
	}
}

func TestVectorNil(t *testing.T) {
	t.Parallel()

	var vec *vector.Vector[int]

	if got := vec.Len(); got != 0 {
		t.Errorf("Len() got = %d, want = 0", got)
	}
	if got := vec.Cap(); got != 0 {
		t.Errorf("Cap() got = %d, want = 0", got)
	}
	if !vec.IsEmpty() {
		t.Error("IsEmpty() got = false, want = true")
	}
	if got := vec.Slice(); got != nil {
		t.Errorf("Slice() got = %v, want = nil", got)
	}
	vec.Append(1)
	if _, ok := vec.Pop(); ok {
		t.Error("Pop() got ok = true, want = false")
	}
	if vec.Reserve(10) {
		t.Error("Reserve(10) got = true, want = false")
	}
}
