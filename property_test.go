package hamt_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomasgilray/hamt"
	"github.com/thomasgilray/hamt/key/stringkey"
)

// The algebraic laws a persistent map must satisfy, checked over a
// slice of the corpus plus fresh keys.

func TestLawPutGet(t *testing.T) {
	var h = LookupHamt

	for i := 0; i < 100; i++ {
		var k = stringkey.New(Inc(SVS[rand.Intn(numKvs)].Str) + "x")
		var h2, _ = h.Put(k, i)

		var v, found = h2.Get(k)
		require.True(t, found, "Put(k,v).Get(k) must find k")
		require.Equal(t, i, v, "Put(k,v).Get(k) must return v")
	}
}

func TestLawLastWriteWins(t *testing.T) {
	var k = stringkey.New("law-lww")

	var h, _ = LookupHamt.Put(k, 1)
	h, _ = h.Put(k, 2)

	var v, found = h.Get(k)
	require.True(t, found)
	require.Equal(t, 2, v, "the second Put of an equal key wins")
	require.Equal(t, LookupHamt.Nentries()+1, h.Nentries(),
		"double Put of one key grows the map by one")
}

func TestLawDelGet(t *testing.T) {
	for i := 0; i < 100; i++ {
		var kv = KVS[rand.Intn(numKvs)]
		var h, _, deleted = LookupHamt.Del(kv.Key)
		require.True(t, deleted)

		var _, found = h.Get(kv.Key)
		require.False(t, found, "Del(k).Get(k) must miss")
		require.Equal(t, LookupHamt.Nentries()-1, h.Nentries())
	}
}

func TestLawOtherKeysUnaffected(t *testing.T) {
	var k = KVS[numKvs/3].Key
	var probe = KVS[2*numKvs/3]

	var h1, _ = LookupHamt.Put(k, "overwritten")
	var h2, _, _ = LookupHamt.Del(k)

	for _, h := range []hamt.Hamt{h1, h2} {
		var v, found = h.Get(probe.Key)
		require.True(t, found, "an unrelated key must stay reachable")
		require.Equal(t, probe.Val, v)
	}
}

// Del then re-Put of the same binding restores the original contents.
func TestLawDelPutRoundTrip(t *testing.T) {
	var kv = KVS[numKvs/7]

	var h, v, deleted = LookupHamt.Del(kv.Key)
	require.True(t, deleted)

	h, _ = h.Put(kv.Key, v)
	require.Equal(t, LookupHamt.Nentries(), h.Nentries())

	for i := 0; i < 200; i++ {
		var probe = KVS[rand.Intn(numKvs)]
		var got, found = h.Get(probe.Key)
		require.True(t, found)
		require.Equal(t, probe.Val, got)
	}
}

func TestLawDelAbsentIsNoop(t *testing.T) {
	var k = stringkey.New("law-absent-key")

	var h, v, deleted = LookupHamt.Del(k)
	require.False(t, deleted)
	require.Nil(t, v)
	require.Equal(t, LookupHamt, h, "Del of an absent key returns the same map")
}
