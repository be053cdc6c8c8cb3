package hamt

import (
	"fmt"
	"strings"

	"github.com/thomasgilray/hamt/key"
)

// collisionLeaf is a link in a persistent singly-linked list of
// key/value pairs. It is used only at the bottom depth, when two
// unequal keys land in the same root slot and agree on the 60 hash
// bits above the root's low nibble, so lists are short in any
// non-adversarial workload.
//
// Every update copies the links in front of the affected one and
// shares the rest. del returns the receiver itself when the key is
// absent; callers detect "unchanged" by that identity.
type collisionLeaf struct {
	key  key.Key
	val  interface{}
	next *collisionLeaf
}

func (l *collisionLeaf) get(k key.Key) (interface{}, bool) {
	for cur := l; cur != nil; cur = cur.next {
		if cur.key.Equals(k) {
			return cur.val, true
		}
	}
	return nil, false
}

// put returns a new list with k bound to v. The bool reports whether
// the list grew (true) or an existing entry's value was replaced.
func (l *collisionLeaf) put(k key.Key, v interface{}) (*collisionLeaf, bool) {
	if nl := l.replace(k, v); nl != nil {
		return nl, false
	}
	return &collisionLeaf{key: k, val: v, next: l}, true
}

// replace rebuilds the list with the entry for k rebound to v, sharing
// the links after it. Returns nil if k is absent.
func (l *collisionLeaf) replace(k key.Key, v interface{}) *collisionLeaf {
	if l.key.Equals(k) {
		return &collisionLeaf{key: l.key, val: v, next: l.next}
	}
	if l.next == nil {
		return nil
	}
	var nn = l.next.replace(k, v)
	if nn == nil {
		return nil
	}
	return &collisionLeaf{key: l.key, val: l.val, next: nn}
}

// del excises the entry for k. The returned list is nil when the last
// entry was removed, and the receiver itself when k was absent.
func (l *collisionLeaf) del(k key.Key) (*collisionLeaf, interface{}, bool) {
	if l.key.Equals(k) {
		return l.next, l.val, true
	}
	if l.next == nil {
		return l, nil, false
	}
	var nn, val, deleted = l.next.del(k)
	if !deleted {
		return l, nil, false
	}
	return &collisionLeaf{key: l.key, val: l.val, next: nn}, val, true
}

// removeFirst strips the head entry, returning the shared tail (nil if
// the list is now empty).
func (l *collisionLeaf) removeFirst() (*collisionLeaf, key.Key, interface{}) {
	return l.next, l.key, l.val
}

func (l *collisionLeaf) nentries() uint {
	var n uint
	for cur := l; cur != nil; cur = cur.next {
		n++
	}
	return n
}

func (l *collisionLeaf) String() string {
	var strs []string
	for cur := l; cur != nil; cur = cur.next {
		strs = append(strs, fmt.Sprintf("{%s, %v}", cur.key, cur.val))
	}
	return fmt.Sprintf("collisionLeaf{%s}", strings.Join(strs, " -> "))
}

func (l *collisionLeaf) LongString(indent string, depth uint) string {
	return indent + l.String()
}
