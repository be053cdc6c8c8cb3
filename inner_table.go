package hamt

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/thomasgilray/hamt/key"
)

// innerTable is a bitmap-compressed interior node. Bit p of nodeMap is
// set iff a child exists at hash-piece position p, and nodes holds
// exactly the populated children in ascending p order, so
// len(nodes) == popcount(nodeMap) always. The index of position p
// within nodes is the count of set bits strictly below p.
//
// A table at depth d (0 <= d <= MaxDepth) indexes its children by the
// low 6 bits of the hash remaining at that depth, reduced mod
// PieceSize; the recursion shifts the hash right by Nbits per level.
// Children are *flatLeaf or *innerTable, except at MaxDepth where a
// non-leaf child is a *collisionLeaf because the hash is exhausted.
//
// Tables are immutable. Mutators return a fresh table whose nodes
// slice shares every untouched child with the receiver; del returns
// nil (with deleted=true) when the table empties so the parent can
// shrink, and deleted=false when the key was absent so the parent
// keeps its old node untouched.
type innerTable struct {
	nodeMap uint64
	nodes   []nodeI
}

// piece extracts the child position from the hash remaining at this
// level: the low 6 bits reduced mod PieceSize. The reduction folds
// position 63 onto 0, which costs a little fanout and keeps every
// position inside the 63bit bitmap.
func piece(h uint64) uint {
	return uint((h & (1<<Nbits - 1)) % PieceSize)
}

// slotIndex is the popcount index of position p: the number of
// populated slots strictly below p.
func (t *innerTable) slotIndex(p uint) uint {
	return uint(bits.OnesCount64(t.nodeMap & (1<<p - 1)))
}

func (t *innerTable) copy() *innerTable {
	var nt = new(innerTable)
	nt.nodeMap = t.nodeMap
	nt.nodes = append(nt.nodes, t.nodes...)
	return nt
}

// replace returns a copy of t with the i'th slot set to n.
func (t *innerTable) replace(i uint, n nodeI) *innerTable {
	var nt = t.copy()
	nt.nodes[i] = n
	return nt
}

// insert returns a copy of t with n added at position p (bit p clear
// in the receiver).
func (t *innerTable) insert(p uint, n nodeI) *innerTable {
	var i = t.slotIndex(p)
	var nt = new(innerTable)
	nt.nodeMap = t.nodeMap | 1<<p
	nt.nodes = make([]nodeI, len(t.nodes)+1)
	copy(nt.nodes, t.nodes[:i])
	nt.nodes[i] = n
	copy(nt.nodes[i+1:], t.nodes[i:])
	return nt
}

// remove returns a copy of t with position p vacated, or nil when p
// held the only child.
func (t *innerTable) remove(p uint) *innerTable {
	if len(t.nodes) == 1 {
		return nil
	}
	var i = t.slotIndex(p)
	var nt = new(innerTable)
	nt.nodeMap = t.nodeMap &^ (1 << p)
	nt.nodes = make([]nodeI, len(t.nodes)-1)
	copy(nt.nodes, t.nodes[:i])
	copy(nt.nodes[i:], t.nodes[i+1:])
	return nt
}

// get looks k up under the hash remaining at this table's depth.
func (t *innerTable) get(h uint64, k key.Key) (interface{}, bool) {
	var p = piece(h)
	if t.nodeMap&(1<<p) == 0 {
		return nil, false
	}
	switch n := t.nodes[t.slotIndex(p)].(type) {
	case *innerTable:
		return n.get(h>>Nbits, k)
	case leafI:
		return n.get(k)
	}
	return nil, false
}

// put binds k to v under the hash remaining at depth, returning a new
// table and whether the entry count grew.
func (t *innerTable) put(depth uint, h uint64, k key.Key, v interface{}) (*innerTable, bool) {
	var p = piece(h)
	if t.nodeMap&(1<<p) == 0 {
		return t.insert(p, newFlatLeaf(k, v)), true
	}

	var i = t.slotIndex(p)
	switch n := t.nodes[i].(type) {
	case *flatLeaf:
		if n.key.Equals(k) {
			return t.replace(i, newFlatLeaf(k, v)), false
		}
		// Two unequal keys in one slot; push both one level down.
		// The old key's hash must be re-sliced from scratch because
		// the leaf does not remember how much was consumed above it.
		var h0 = n.key.Hash64() >> remainderShift(depth+1)
		return t.replace(i, mergeLeaves(depth+1, h0, n, h>>Nbits, k, v)), true
	case *collisionLeaf:
		// depth == MaxDepth; the hash is exhausted.
		var nl, added = n.put(k, v)
		return t.replace(i, nl), added
	case *innerTable:
		var nt, added = n.put(depth+1, h>>Nbits, k, v)
		return t.replace(i, nt), added
	}
	panic("innerTable.put: impossible slot type")
}

// remainderShift is how many hash bits the root and the tables above
// depth d have consumed; shifting a key's full hash right by it yields
// the hash remaining at depth d. At the bottom depth the shift covers
// the whole word and the remainder is 0.
func remainderShift(d uint) uint {
	return RootBits + d*Nbits
}

// mergeLeaves builds the node that holds the old leaf l0 and the new
// pair (k,v) at depth d, where their positions above d all collided.
// h0 and h1 are the hashes remaining at d. While the next pieces still
// collide it nests single-slot tables; at BottomDepth the hash is
// exhausted and the two entries become a collision list.
func mergeLeaves(d uint, h0 uint64, l0 *flatLeaf, h1 uint64, k key.Key, v interface{}) nodeI {
	if d == BottomDepth {
		var tail = &collisionLeaf{key: l0.key, val: l0.val}
		return &collisionLeaf{key: k, val: v, next: tail}
	}

	var p0 = piece(h0)
	var p1 = piece(h1)
	if p0 == p1 {
		var child = mergeLeaves(d+1, h0>>Nbits, l0, h1>>Nbits, k, v)
		return &innerTable{nodeMap: 1 << p0, nodes: []nodeI{child}}
	}

	var nt = new(innerTable)
	nt.nodeMap = 1<<p0 | 1<<p1
	if p0 < p1 {
		nt.nodes = []nodeI{l0, newFlatLeaf(k, v)}
	} else {
		nt.nodes = []nodeI{newFlatLeaf(k, v), l0}
	}
	return nt
}

// del unbinds k under the hash remaining at this table's depth. When
// deleted is false the key was absent and the receiver is still the
// caller's node. When deleted is true and nt is nil the table emptied;
// the parent must vacate the slot that pointed here.
func (t *innerTable) del(h uint64, k key.Key) (nt *innerTable, val interface{}, deleted bool) {
	var p = piece(h)
	if t.nodeMap&(1<<p) == 0 {
		return nil, nil, false
	}

	var i = t.slotIndex(p)
	switch n := t.nodes[i].(type) {
	case *flatLeaf:
		if !n.key.Equals(k) {
			return nil, nil, false
		}
		return t.remove(p), n.val, true
	case *collisionLeaf:
		var nl, v, del = n.del(k)
		if !del {
			return nil, nil, false
		}
		if nl == nil {
			return t.remove(p), v, true
		}
		return t.replace(i, nl), v, true
	case *innerTable:
		var nc, v, del = n.del(h>>Nbits, k)
		if !del {
			return nil, nil, false
		}
		if nc == nil {
			return t.remove(p), v, true
		}
		return t.replace(i, nc), v, true
	}
	panic("innerTable.del: impossible slot type")
}

// removeFirst extracts an arbitrary entry, always from the lowest
// populated position, and returns the shrunken table (nil when that
// entry was the last one reachable from here).
func (t *innerTable) removeFirst() (*innerTable, key.Key, interface{}) {
	switch n := t.nodes[0].(type) {
	case *innerTable:
		var nc, k, v = n.removeFirst()
		if nc != nil {
			return t.replace(0, nc), k, v
		}
		return t.shrinkFirst(), k, v
	case *collisionLeaf:
		var nl, k, v = n.removeFirst()
		if nl != nil {
			return t.replace(0, nl), k, v
		}
		return t.shrinkFirst(), k, v
	case *flatLeaf:
		return t.shrinkFirst(), n.key, n.val
	}
	panic("innerTable.removeFirst: impossible slot type")
}

// shrinkFirst drops slot 0 and the lowest set bitmap bit; nil when the
// table held a single child.
func (t *innerTable) shrinkFirst() *innerTable {
	if len(t.nodes) == 1 {
		return nil
	}
	var nt = new(innerTable)
	nt.nodeMap = t.nodeMap & (t.nodeMap - 1) // clear the lowest set bit
	nt.nodes = make([]nodeI, len(t.nodes)-1)
	copy(nt.nodes, t.nodes[1:])
	return nt
}

// nentries walks the subtree counting entries. Used by tests and
// LongString; the map handle caches its own count.
func (t *innerTable) nentries() uint {
	var n uint
	for _, node := range t.nodes {
		switch c := node.(type) {
		case *flatLeaf:
			n++
		case *collisionLeaf:
			n += c.nentries()
		case *innerTable:
			n += c.nentries()
		}
	}
	return n
}

// nodeMapString renders the 63bit bitmap as the top 3 bits followed by
// six 10bit groups.
func nodeMapString(nodeMap uint64) string {
	var strs = make([]string, 7)

	var top3 = nodeMap >> 60
	strs[0] = fmt.Sprintf("%03b", top3)

	const tenBitMask uint64 = 1<<10 - 1
	for i := uint(0); i < 6; i++ {
		var tenBitVal = (nodeMap & (tenBitMask << (i * 10))) >> (i * 10)
		strs[6-i] = fmt.Sprintf("%010b", tenBitVal)
	}

	return strings.Join(strs, " ")
}

func (t *innerTable) String() string {
	return fmt.Sprintf("innerTable{nentries()=%d, nodeMap=%s}",
		t.nentries(), nodeMapString(t.nodeMap))
}

func (t *innerTable) LongString(indent string, depth uint) string {
	var strs = make([]string, 2+len(t.nodes))

	strs[0] = indent + fmt.Sprintf("innerTable{depth=%d, nentries()=%d, nodeMap=%s,",
		depth, t.nentries(), nodeMapString(t.nodeMap))

	for i, n := range t.nodes {
		if it, ok := n.(*innerTable); ok {
			strs[1+i] = indent + fmt.Sprintf("\tnodes[%d]:\n%s", i, it.LongString(indent+"\t", depth+1))
		} else {
			strs[1+i] = indent + fmt.Sprintf("\tnodes[%d]: %s", i, n.String())
		}
	}

	strs[len(strs)-1] = indent + "}"

	return strings.Join(strs, "\n")
}
