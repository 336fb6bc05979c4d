package symspell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func dictFrom(t *testing.T, contents string) *Dictionary {
	t.Helper()
	d := newTestDictionary(t, 2, 7)
	_, err := d.LoadDictionaryFromReader(strings.NewReader(contents), 0, 1)
	require.NoError(t, err)
	return d
}

func TestLookupExactMatchIsDistanceZero(t *testing.T) {
	d := dictFrom(t, "hello 5000\nheld 200\n")
	got := d.Lookup("hello", 2, 5, Top, d.NewScratch())
	require.Len(t, got, 1)
	require.Equal(t, "hello", got[0].Term)
	require.Equal(t, 0, got[0].Distance)
}

func TestLookupSubstitutionPicksHigherFrequency(t *testing.T) {
	d := dictFrom(t, "hello 5000\nheld 200\n")
	got := d.Lookup("helo", 2, 5, Top, d.NewScratch())
	require.Len(t, got, 1)
	require.Equal(t, "held", got[0].Term)
	require.Equal(t, 1, got[0].Distance)
}

func TestLookupTransposition(t *testing.T) {
	d := dictFrom(t, "receive 3000\n")
	got := d.Lookup("recieve", 2, 5, Top, d.NewScratch())
	require.Len(t, got, 1)
	require.Equal(t, "receive", got[0].Term)
	require.Equal(t, 1, got[0].Distance)
}

func TestLookupPrefersCloserOverMoreFrequent(t *testing.T) {
	d := dictFrom(t, "spelling 1000\nsailing 8000\n")
	got := d.Lookup("speling", 2, 5, Top, d.NewScratch())
	require.Len(t, got, 1)
	require.Equal(t, "spelling", got[0].Term)
	require.Equal(t, 1, got[0].Distance)
}

func TestLookupShortWordRuleClampsDistance(t *testing.T) {
	d := dictFrom(t, "the 100000\ntea 500\n")
	got := d.Lookup("teh", 2, 5, Top, d.NewScratch())
	require.Len(t, got, 1)
	require.Equal(t, "the", got[0].Term)
	require.Equal(t, 1, got[0].Distance)
}

func TestLookupNoCandidatesReturnsEmpty(t *testing.T) {
	d := dictFrom(t, "hello 5000\n")
	got := d.Lookup("xqzyyy", 2, 5, Top, d.NewScratch())
	require.Empty(t, got)
}

func TestLookupEmptyQueryReturnsEmpty(t *testing.T) {
	d := dictFrom(t, "hello 5000\n")
	got := d.Lookup("", 2, 5, Top, d.NewScratch())
	require.Empty(t, got)
}

func TestLookupSingleCharacterExactHit(t *testing.T) {
	d := dictFrom(t, "a 1\n")
	got := d.Lookup("a", 2, 5, Top, d.NewScratch())
	require.Len(t, got, 1)
	require.Equal(t, 0, got[0].Distance)
}

func TestLookupAllVerbosityOrdersByTotalOrder(t *testing.T) {
	d := dictFrom(t, "hello 10\nhallo 50\nhills 5\n")
	got := d.Lookup("hxllo", 2, 10, All, d.NewScratch())
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		require.True(t, a.Distance < b.Distance ||
			(a.Distance == b.Distance && a.Frequency >= b.Frequency))
	}
}

func TestLookupClosestOnlyReturnsMinimalDistance(t *testing.T) {
	d := dictFrom(t, "hello 10\nhallo 50\nhxllo 1\n")
	got := d.Lookup("hxllo", 2, 10, Closest, d.NewScratch())
	for _, s := range got {
		require.Equal(t, 0, s.Distance)
	}
}

func TestLookupIsIdempotent(t *testing.T) {
	d := dictFrom(t, "hello 5000\nheld 200\n")
	scratch := d.NewScratch()
	first := d.Lookup("helo", 2, 5, Top, scratch)
	second := d.Lookup("helo", 2, 5, Top, scratch)
	require.Equal(t, first, second)
}

func TestLookupRespectsMaxSuggestions(t *testing.T) {
	d := dictFrom(t, "aa 1\nab 1\nac 1\nad 1\n")
	got := d.Lookup("a", 2, 2, All, d.NewScratch())
	require.LessOrEqual(t, len(got), 2)
}
