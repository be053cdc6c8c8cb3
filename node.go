package hamt

import "github.com/thomasgilray/hamt/key"

// nodeI is the interface of every populated slot in the trie: a root
// or inner-table slot holds either a *flatLeaf, an *innerTable, or (at
// the bottom depth only) a *collisionLeaf. An empty root slot is a nil
// nodeI; inner-table slots are never empty because the bitmap only has
// bits set for slots that exist. The dynamic type is the slot's tag.
type nodeI interface {
	String() string
	LongString(indent string, depth uint) string
}

// leafI is the common surface of the two leaf kinds. Lookup does not
// care whether it landed on a single entry or a collision list.
type leafI interface {
	nodeI
	get(k key.Key) (interface{}, bool)
}
