// Package hasher provides 64-bit non-cryptographic hash functions usable as
// ring hashers. Every function is deterministic across processes, platforms
// and releases of this package, so two services that pick the same function
// agree on node placement.
package hasher

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// XXHash returns the 64-bit xxHash (XXH64, seed 0) of data.
// This is the default ring hasher: fast, well distributed, and implemented
// identically by most languages.
func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Murmur3 returns the lower 64 bits of the 128-bit MurmurHash3 (x64 variant, seed 0).
func Murmur3(data []byte) uint64 {
	return murmur3.Sum64(data)
}

// FNV1a returns the 64-bit FNV-1a hash of data.
// Slower and less evenly distributed than XXHash on short keys, but trivial
// to reimplement when a ring must be mirrored by a foreign codebase.
func FNV1a(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data) // never fails
	return h.Sum64()
}
