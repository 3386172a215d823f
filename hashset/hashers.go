package hashset

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// String hashes s with xxHash64.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes hashes b with xxHash64.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Int hashes the two's-complement bytes of v with xxHash64. The result is
// stable across processes, which makes it a handy source of reproducible
// pseudo-random keys.
func Int[T constraints.Integer](v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}

// Comparable returns a Hasher for any comparable type. It is seeded per call,
// so hashes differ between Hasher instances and processes.
func Comparable[T comparable]() Hasher[T] {
	seed := maphash.MakeSeed()
	return func(v T) uint64 {
		return maphash.Comparable(seed, v)
	}
}
