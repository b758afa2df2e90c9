package conshash

import (
	"strconv"

	"github.com/samber/conshash/pkg/hasher"
)

// Hasher maps bytes to a position on the ring.
// It must be deterministic. Rings that must agree on placement across
// processes or languages must use the same Hasher.
type Hasher func(data []byte) uint64

// DefaultHasher is used by rings built without WithHasher.
var DefaultHasher Hasher = hasher.XXHash

func (fn Hasher) hashString(s string) uint64 {
	return fn([]byte(s))
}

// replicaPosition computes the position of the i-th replica of the node
// identified by id: hash(id + decimal(i)).
//
// The replica index is appended without separator, so an identity that is
// another identity followed by digits shares positions with it: "n1"+"0" and
// "n"+"10" both hash "n10". Identities that all end with a non-digit never
// collide this way.
func (fn Hasher) replicaPosition(id string, i int) uint64 {
	return fn.hashString(id + strconv.Itoa(i))
}

// Hash maps a key into the ring coordinate space using DefaultHasher.
// The result can be passed to Ring.GetNode of any ring using the default hasher.
func Hash(key string) uint64 {
	return DefaultHasher.hashString(key)
}
