// Package stringkey implements the key.Key interface for strings.
package stringkey

import (
	"fmt"

	"github.com/thomasgilray/hamt/key"
)

// StringKey is a string with a hash cached at construction. Use it as
// a value; it is immutable.
type StringKey struct {
	key.Base
	s string
}

// New constructs a StringKey for s.
func New(s string) StringKey {
	return StringKey{Base: key.NewBase([]byte(s)), s: s}
}

// Equals reports whether other is a StringKey over the same string.
func (sk StringKey) Equals(other key.Key) bool {
	var osk, ok = other.(StringKey)
	return ok && sk.s == osk.s
}

// Str returns the underlying string.
func (sk StringKey) Str() string {
	return sk.s
}

func (sk StringKey) String() string {
	return fmt.Sprintf("StringKey(%q)", sk.s)
}
