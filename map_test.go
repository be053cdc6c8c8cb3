package hamt_test

import (
	"log"
	"testing"

	"github.com/thomasgilray/hamt/key/stringkey"
)

// Drain LookupHamt with RemoveFirst and cross-check the extracted
// entries against a built-in map of the same corpus: every pair must
// come out exactly once, and the drain must end at the empty map.
func TestDrainAgainstMap(t *testing.T) {
	log.Println("TestDrainAgainstMap:")

	var seen = make(map[string]int, len(LookupMap))

	var h = LookupHamt
	for !h.IsEmpty() {
		var before = h.Nentries()

		var nh, k, v, found = h.RemoveFirst()
		if !found {
			t.Fatalf("RemoveFirst found nothing with %d entries left", before)
		}
		if nh.Nentries() != before-1 {
			t.Fatalf("RemoveFirst: Nentries %d -> %d", before, nh.Nentries())
		}

		var sk, ok = k.(stringkey.StringKey)
		if !ok {
			t.Fatalf("RemoveFirst returned a non-StringKey key: %v", k)
		}
		if _, dup := seen[sk.Str()]; dup {
			t.Fatalf("RemoveFirst yielded %s twice", k)
		}

		var want, inMap = LookupMap[sk.Str()]
		if !inMap {
			t.Fatalf("RemoveFirst yielded %s which is not in the corpus", k)
		}
		if v != want {
			t.Fatalf("RemoveFirst yielded %s -> %v; map has %v", k, v, want)
		}

		seen[sk.Str()] = want
		h = nh
	}

	if len(seen) != len(LookupMap) {
		t.Fatalf("drained %d entries; corpus has %d", len(seen), len(LookupMap))
	}

	// the source map is untouched by the drain
	if LookupHamt.Nentries() != uint(len(LookupMap)) {
		t.Fatalf("LookupHamt.Nentries(),%d changed during drain", LookupHamt.Nentries())
	}
}

// Del of every key known to the builtin map, in map iteration order
// (effectively randomized), leaves derived maps consistent at every
// step.
func TestDelAgainstMap(t *testing.T) {
	log.Println("TestDelAgainstMap:")

	var h = LookupHamt
	var remaining = uint(len(LookupMap))

	for s, want := range LookupMap {
		var nh, v, deleted = h.Del(stringkey.New(s))
		if !deleted {
			t.Fatalf("failed to h.Del(%q)", s)
		}
		if v != want {
			t.Fatalf("h.Del(%q) returned %v; map has %v", s, v, want)
		}
		remaining--
		if nh.Nentries() != remaining {
			t.Fatalf("nh.Nentries(),%d != remaining,%d", nh.Nentries(), remaining)
		}

		if _, found := nh.Get(stringkey.New(s)); found {
			t.Fatalf("nh.Get(%q) found a deleted key", s)
		}

		h = nh
	}

	if !h.IsEmpty() {
		t.Fatalf("!h.IsEmpty() after deleting the whole corpus")
	}
}
