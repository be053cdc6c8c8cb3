// Package intkey implements the key.Key interface for int64 keys.
package intkey

import (
	"encoding/binary"
	"strconv"

	"github.com/thomasgilray/hamt/key"
)

// IntKey is an int64 with a hash cached at construction.
type IntKey struct {
	key.Base
	i int64
}

// New constructs an IntKey for i.
func New(i int64) IntKey {
	var bs [8]byte
	binary.LittleEndian.PutUint64(bs[:], uint64(i))
	return IntKey{Base: key.NewBase(bs[:]), i: i}
}

// Equals reports whether other is an IntKey with the same value.
func (ik IntKey) Equals(other key.Key) bool {
	var oik, ok = other.(IntKey)
	return ok && ik.i == oik.i
}

// Int returns the underlying int64.
func (ik IntKey) Int() int64 {
	return ik.i
}

func (ik IntKey) String() string {
	return "IntKey(" + strconv.FormatInt(ik.i, 10) + ")"
}
