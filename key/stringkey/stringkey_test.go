package stringkey_test

import (
	"testing"

	"github.com/thomasgilray/hamt/key/intkey"
	"github.com/thomasgilray/hamt/key/stringkey"
)

func TestEquals(t *testing.T) {
	var a = stringkey.New("abc")
	var b = stringkey.New("abc")
	var c = stringkey.New("abd")

	if !a.Equals(b) || !b.Equals(a) {
		t.Fatal("equal strings must compare equal both ways")
	}
	if a.Equals(c) {
		t.Fatal("distinct strings compared equal")
	}
	if a.Hash64() != b.Hash64() {
		t.Fatal("equal keys must hash equal")
	}

	// a key of another kind is never equal, even with the same bytes
	// (intkey hashes 0 as eight zero bytes)
	if stringkey.New("\x00\x00\x00\x00\x00\x00\x00\x00").Equals(intkey.New(0)) {
		t.Fatal("StringKey compared equal to an IntKey")
	}
}

func TestStr(t *testing.T) {
	if stringkey.New("xyz").Str() != "xyz" {
		t.Fatal("Str() did not round-trip")
	}
}
