package intkey_test

import (
	"testing"

	"github.com/thomasgilray/hamt/key/intkey"
)

func TestEquals(t *testing.T) {
	var a = intkey.New(-7)
	var b = intkey.New(-7)
	var c = intkey.New(7)

	if !a.Equals(b) {
		t.Fatal("equal ints must compare equal")
	}
	if a.Equals(c) {
		t.Fatal("-7 compared equal to 7")
	}
	if a.Hash64() != b.Hash64() {
		t.Fatal("equal keys must hash equal")
	}
	if a.Int() != -7 {
		t.Fatalf("Int() = %d", a.Int())
	}
}
