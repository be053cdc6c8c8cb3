/*
Package key defines the Key interface the HAMT indexes by, and a Base
struct concrete key types embed so the 64bit hash is computed once at
construction rather than on every trie descent.

The Hash64() value is consumed by the trie in pieces: 4 bits at the
root, then 6 bits per inner level for ten levels. Keys with equal
values MUST have equal hashes; keys with equal hashes need not be
equal (the trie handles full collisions).
*/
package key

import (
	"fmt"

	"github.com/dchest/siphash"
)

// Key is the interface any key stored in the HAMT must satisfy.
type Key interface {
	// Equals must be reflexive, symmetric, and transitive.
	Equals(Key) bool

	// Hash64 returns a 64bit hash of the key. It must be
	// deterministic: a.Equals(b) implies a.Hash64() == b.Hash64().
	Hash64() uint64

	String() string
}

// KeyVal is a simple key/value pair.
type KeyVal struct {
	Key Key
	Val interface{}
}

func (kv KeyVal) String() string {
	return fmt.Sprintf("{%s, %v}", kv.Key, kv.Val)
}

// SipHash-2-4 seeds for Hash64. Fixed so hashes are stable for the
// lifetime of the process and across processes.
const (
	seed0 = uint64(0x646567616761626b)
	seed1 = uint64(0x7361676562726f6e)
)

// Hash64 calculates the 64bit hash of a byte slice with SipHash-2-4
// under the package seeds.
func Hash64(bs []byte) uint64 {
	return siphash.Hash(seed0, seed1, bs)
}

// Base is the hash-caching core of a concrete key type. Embed it and
// construct it with NewBase over the key's canonical byte rendering.
type Base struct {
	hash64 uint64
}

// NewBase constructs a Base for a key whose canonical byte form is bs.
func NewBase(bs []byte) Base {
	return Base{hash64: Hash64(bs)}
}

// Hash64 returns the hash cached at construction.
func (b Base) Hash64() uint64 {
	return b.hash64
}
