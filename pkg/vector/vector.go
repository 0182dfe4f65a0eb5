// Package vector provides a generic dynamic array with amortized doubling
// growth and halving shrink-on-removal.
//
// The values a Vector stores remain the caller's; the vector owns only its
// backing storage. A Vector is not safe for concurrent use.
package vector

import "golang.org/x/exp/slices"

// Vector is an index-addressed sequence backed by a contiguous block of
// storage.
//
// The zero value is an empty vector ready for use; the nil vector behaves
// like an empty read-only vector.
type Vector[T any] struct {
	data     []T
	capacity int
	length   int
}

// Append adds a value at the end of the vector, doubling the capacity when
// the vector is full.
func (v *Vector[T]) Append(data T) {
	if v == nil {
		return
	}
	if v.length+1 > v.capacity {
		v.Reserve(max(1, 2*v.capacity))
	}
	v.data[v.length] = data
	v.length++
}

// Extend appends every value of other to the end of the vector, reserving
// enough capacity for all of them at once.
func (v *Vector[T]) Extend(other *Vector[T]) {
	if v == nil || other == nil {
		return
	}
	if v.length+other.length > v.capacity {
		v.Reserve(v.length + other.length)
	}
	copy(v.data[v.length:], other.data[:other.length])
	v.length += other.length
}

// Pop removes and returns the last value of the vector.
// The second value indicates if the vector was non-empty.
// When occupancy falls below half the capacity, the backing storage is halved.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v == nil || v.length == 0 {
		return zero, false
	}

	removed := v.data[v.length-1]
	v.data[v.length-1] = zero // release the slot for the collector
	v.length--
	v.shrink()

	return removed, true
}

// Insert adds a value at the given index, shifting later values to the
// right. The index may equal the length of the vector, in which case Insert
// behaves like Append.
// Insert reports whether the index was in bounds.
func (v *Vector[T]) Insert(index int, data T) bool {
	if v == nil || index < 0 || index > v.length {
		return false
	}
	if v.length+1 > v.capacity {
		v.Reserve(max(1, 2*v.capacity))
	}

	copy(v.data[index+1:v.length+1], v.data[index:v.length])
	v.data[index] = data
	v.length++

	return true
}

// Remove removes and returns the value at the given index, shifting later
// values to the left.
// The second value indicates if the index was in bounds.
// When occupancy falls below half the capacity, the backing storage is halved.
func (v *Vector[T]) Remove(index int) (T, bool) {
	var zero T
	if v == nil || index < 0 || index >= v.length {
		return zero, false
	}

	removed := v.data[index]
	copy(v.data[index:v.length-1], v.data[index+1:v.length])
	v.data[v.length-1] = zero
	v.length--
	v.shrink()

	return removed, true
}

// shrink halves the backing storage once occupancy drops below half of it.
func (v *Vector[T]) shrink() {
	if v.length < v.capacity/2 && v.capacity > 1 {
		v.Reserve(v.capacity / 2)
	}
}

// ContainsFunc reports whether the vector holds a value for which match
// returns true.
func (v *Vector[T]) ContainsFunc(match func(T) bool) bool {
	if v == nil || match == nil {
		return false
	}
	return slices.ContainsFunc(v.data[:v.length], match)
}

// Get returns the value at the given index.
// The second value indicates if the index was in bounds.
func (v *Vector[T]) Get(index int) (T, bool) {
	if v == nil || index < 0 || index >= v.length {
		var zero T
		return zero, false
	}
	return v.data[index], true
}

// Set overwrites the value at the given index and reports whether the index
// was in bounds.
func (v *Vector[T]) Set(index int, data T) bool {
	if v == nil || index < 0 || index >= v.length {
		return false
	}
	v.data[index] = data
	return true
}

// Cap returns the capacity of the vector, or 0 for a nil vector.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// Len returns the number of values in the vector, or 0 for a nil vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// IsEmpty reports whether the vector holds no values.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Slice exposes the backing storage of the vector as a contiguous block.
// The slice stays valid until the next operation that resizes the vector;
// mutating it mutates the vector.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.data[:v.length]
}

// Reserve reallocates the backing storage to exactly capacity slots,
// reporting whether it did. Reserving less than the current length fails;
// reserving the current capacity is a no-op.
func (v *Vector[T]) Reserve(capacity int) bool {
	if v == nil || capacity < v.length {
		return false
	}
	if capacity == v.capacity {
		return true
	}

	data := make([]T, capacity)
	copy(data, v.data[:v.length])
	v.data = data
	v.capacity = capacity

	return true
}

// ShrinkToFit reduces the capacity to the minimum necessary to store the
// current values, reporting whether it did.
func (v *Vector[T]) ShrinkToFit() bool {
	if v == nil || v.length == 0 {
		return false
	}
	return v.Reserve(v.length)
}

// Resize sets the length of the vector.
// Growing zero-fills the new slots; truncating releases the values beyond the
// new length.
func (v *Vector[T]) Resize(length int) bool {
	if v == nil || length < 0 {
		return false
	}
	if length > v.capacity && !v.Reserve(length) {
		return false
	}

	// zero out truncated slots so their values can be collected
	var zero T
	for i := length; i < v.length; i++ {
		v.data[i] = zero
	}
	v.length = length

	return true
}
