package hashmap

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Hasher defines key identity for a [Map].
//
// Implementations must guarantee that Equal(a, b) implies Hash(a) == Hash(b);
// the correctness of the map depends on it. Equal should be an equivalence
// relation: when it is not, it is undefined which of several "equal" keys the
// map retains.
type Hasher[K any] interface {
	// Hash returns the hash of the given key.
	Hash(key K) uint64

	// Equal reports whether two keys are the same.
	Equal(left, right K) bool
}

var (
	_ Hasher[string] = StringHasher{}
	_ Hasher[[]byte] = BytesHasher{}
	_ Hasher[string] = XXStringHasher{}
	_ Hasher[[]byte] = XXBytesHasher{}
)

// djb2 computes the djb2 polynomial hash over data:
// starting from 5381, hash = hash * 33 xor byte.
func djb2[T ~string | ~[]byte](data T) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(data); i++ {
		hash = ((hash << 5) + hash) ^ uint64(data[i])
	}
	return hash
}

// StringHasher hashes string keys with the djb2 polynomial and compares them
// by exact sequence match.
type StringHasher struct{}

func (StringHasher) Hash(key string) uint64 {
	return djb2(key)
}

func (StringHasher) Equal(left, right string) bool {
	return left == right
}

// BytesHasher hashes byte-slice keys with the djb2 polynomial over their full
// length and compares them byte for byte.
type BytesHasher struct{}

func (BytesHasher) Hash(key []byte) uint64 {
	return djb2(key)
}

func (BytesHasher) Equal(left, right []byte) bool {
	return bytes.Equal(left, right)
}

// XXStringHasher is like [StringHasher], but hashes with xxHash64 for a
// better distribution on large key sets.
type XXStringHasher struct{}

func (XXStringHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

func (XXStringHasher) Equal(left, right string) bool {
	return left == right
}

// XXBytesHasher is like [BytesHasher], but hashes with xxHash64.
type XXBytesHasher struct{}

func (XXBytesHasher) Hash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

func (XXBytesHasher) Equal(left, right []byte) bool {
	return bytes.Equal(left, right)
}
