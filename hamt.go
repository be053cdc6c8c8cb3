/*
Package hamt implements a persistent Hash Array Mapped Trie
(Bagwell 2001): an immutable map from keys to values with structural
sharing between versions. Every mutating operation returns a new Hamt;
the receiver is never modified, so older versions stay valid and any
number of goroutines may read (or derive new maps from) the same Hamt
without coordination.

Keys satisfy the key.Key interface and expose a 64bit hash. The trie
consumes the hash in fixed slices: the root consumes the low 4 bits
(its index also mixes in two high bits, see rootMask) to select one of
the 7 root slots, then each of up to ten inner levels consumes 6 bits reduced mod
63 to select a child within a bitmap-compressed table. After ten
levels the hash is exhausted and any remaining collisions fall into a
persistent linked list, so full-hash collisions are handled correctly
(if slowly).

Updates are path-copy: an operation rebuilds only the nodes along the
root-to-leaf path it touched, sharing everything else with the prior
version. Removing an absent key is a no-op that returns the receiver
itself without rebuilding anything.
*/
package hamt

import (
	"fmt"
	"strings"

	"github.com/thomasgilray/hamt/key"
)

// Nbits is the number of hash bits consumed per inner level.
const Nbits uint = 6

// PieceSize is the child fanout of an inner table. The 6bit slice is
// reduced mod 63 so every position fits the 63 usable bitmap bits.
const PieceSize = 63

// BottomDepth is the inner level at which the 64bit hash budget is
// exhausted: 4 root bits + 10*Nbits == 64. MaxDepth is the deepest
// level at which an innerTable can live; its colliding children are
// collision lists rather than further tables.
const (
	BottomDepth uint = 10
	MaxDepth    uint = BottomDepth - 1
)

// RootSize is the fixed number of slots in the root node, and RootBits
// the hash bits the root consumes before handing the rest down.
const (
	RootSize uint = 7
	RootBits uint = 4
)

// rootMask picks the bits of the hash the root reduces mod RootSize:
// the low nibble plus one bit from each of two high bytes.
const rootMask uint64 = 0x11000000000000f

// rootIndex reduces a full 64bit hash to a root slot.
func rootIndex(h64 uint64) uint {
	return uint((h64 & rootMask) % uint64(RootSize))
}

// Hamt is the map handle: a fixed 7-slot root plus a cached entry
// count. The zero value is the empty map. Hamt is a small value;
// methods copy it wholesale, which is exactly the path-copy of the
// root level.
type Hamt struct {
	root     [RootSize]nodeI
	nentries uint
}

// IsEmpty reports whether the map holds no entries.
func (h Hamt) IsEmpty() bool {
	return h.nentries == 0
}

// Nentries returns the number of key/value entries in the map,
// entries inside collision lists included.
func (h Hamt) Nentries() uint {
	return h.nentries
}

// Get retrieves the value bound to k. The bool reports whether the
// key was found.
func (h Hamt) Get(k key.Key) (interface{}, bool) {
	var h64 = k.Hash64()

	switch n := h.root[rootIndex(h64)].(type) {
	case nil:
		return nil, false
	case *flatLeaf:
		return n.get(k)
	case *innerTable:
		return n.get(h64>>RootBits, k)
	}
	panic("Hamt.Get: impossible root slot type")
}

// Put binds k to v, returning a new persistent Hamt and a bool
// reporting whether the pair was added (true) or an existing entry's
// value replaced (false).
func (h Hamt) Put(k key.Key, v interface{}) (Hamt, bool) {
	var h64 = k.Hash64()
	var i = rootIndex(h64)

	var nh = h

	switch n := h.root[i].(type) {
	case nil:
		nh.root[i] = newFlatLeaf(k, v)
		nh.nentries++
		return nh, true
	case *flatLeaf:
		if n.key.Equals(k) {
			nh.root[i] = newFlatLeaf(k, v)
			return nh, false
		}
		// The slot's current key collides at the root; both entries
		// move into a fresh table at depth 0.
		var h0 = n.key.Hash64() >> RootBits
		nh.root[i] = mergeLeaves(0, h0, n, h64>>RootBits, k, v)
		nh.nentries++
		return nh, true
	case *innerTable:
		var nt, added = n.put(0, h64>>RootBits, k, v)
		nh.root[i] = nt
		if added {
			nh.nentries++
		}
		return nh, added
	}
	panic("Hamt.Put: impossible root slot type")
}

// Del unbinds k, returning a new Hamt, the value that was bound, and a
// bool reporting whether anything was deleted. When the key is absent
// the receiver itself is returned and no allocation occurs.
func (h Hamt) Del(k key.Key) (Hamt, interface{}, bool) {
	var h64 = k.Hash64()
	var i = rootIndex(h64)

	switch n := h.root[i].(type) {
	case nil:
		return h, nil, false
	case *flatLeaf:
		if !n.key.Equals(k) {
			return h, nil, false
		}
		var nh = h
		nh.root[i] = nil
		nh.nentries--
		return nh, n.val, true
	case *innerTable:
		var nt, val, deleted = n.del(h64>>RootBits, k)
		if !deleted {
			return h, nil, false
		}
		var nh = h
		if nt == nil {
			nh.root[i] = nil
		} else {
			nh.root[i] = nt
		}
		nh.nentries--
		return nh, val, true
	}
	panic("Hamt.Del: impossible root slot type")
}

// RemoveFirst extracts an arbitrary entry: it returns a new Hamt
// lacking the pair along with the pair itself. On the empty map it
// returns the receiver unchanged and found == false. Draining a map
// by repeated RemoveFirst yields every entry exactly once.
func (h Hamt) RemoveFirst() (Hamt, key.Key, interface{}, bool) {
	for i := uint(0); i < RootSize; i++ {
		switch n := h.root[i].(type) {
		case nil:
			continue
		case *innerTable:
			var nt, k, v = n.removeFirst()
			var nh = h
			if nt == nil {
				nh.root[i] = nil
			} else {
				nh.root[i] = nt
			}
			nh.nentries--
			return nh, k, v, true
		case *flatLeaf:
			var nh = h
			nh.root[i] = nil
			nh.nentries--
			return nh, n.key, n.val, true
		}
	}
	return h, nil, nil, false
}

func (h Hamt) String() string {
	return fmt.Sprintf("Hamt{ nentries: %d }", h.nentries)
}

// LongString renders the entire trie for debugging.
func (h Hamt) LongString(indent string) string {
	var strs = make([]string, 2+len(h.root))

	strs[0] = indent + fmt.Sprintf("Hamt{ nentries: %d,", h.nentries)

	for i, n := range h.root {
		switch t := n.(type) {
		case nil:
			strs[1+i] = indent + fmt.Sprintf("\troot[%d]: empty", i)
		case *innerTable:
			strs[1+i] = indent + fmt.Sprintf("\troot[%d]:\n%s", i, t.LongString(indent+"\t", 0))
		default:
			strs[1+i] = indent + fmt.Sprintf("\troot[%d]: %s", i, t.String())
		}
	}

	strs[len(strs)-1] = indent + "}"

	return strings.Join(strs, "\n")
}
