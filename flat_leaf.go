package hamt

import (
	"fmt"

	"github.com/thomasgilray/hamt/key"
)

// flatLeaf is a single key/value entry stored directly in a root or
// inner-table slot.
type flatLeaf struct {
	key key.Key
	val interface{}
}

func newFlatLeaf(k key.Key, v interface{}) *flatLeaf {
	return &flatLeaf{key: k, val: v}
}

func (l *flatLeaf) get(k key.Key) (interface{}, bool) {
	if l.key.Equals(k) {
		return l.val, true
	}
	return nil, false
}

func (l *flatLeaf) String() string {
	return fmt.Sprintf("flatLeaf{key:%s, val:%v}", l.key, l.val)
}

func (l *flatLeaf) LongString(indent string, depth uint) string {
	return indent + l.String()
}
