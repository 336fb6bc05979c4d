package symspell

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func sortedCopy(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

func TestDeleteScratchGeneratesPrefixAndDeletes(t *testing.T) {
	s := newDeleteScratch(1000)
	got := sortedCopy(s.generate("hello", 2, 7))

	require.Contains(t, got, "hello")
	require.Contains(t, got, "ello")
	require.Contains(t, got, "hllo")
	require.Contains(t, got, "helo")
	require.NotContains(t, got, "")
}

func TestDeleteScratchTruncatesBeforeEnumerating(t *testing.T) {
	s := newDeleteScratch(1000)
	got := s.generate("abcdefgh", 1, 4)
	for _, v := range got {
		require.LessOrEqual(t, len(v), 4)
	}
	require.Contains(t, got, "abcd")
}

func TestDeleteScratchEmitsEmptyStringWhenPrefixShortEnough(t *testing.T) {
	s := newDeleteScratch(1000)
	got := s.generate("ab", 2, 7)
	require.Contains(t, got, "")
}

func TestDeleteScratchOmitsEmptyStringWhenPrefixTooLong(t *testing.T) {
	s := newDeleteScratch(1000)
	got := s.generate("abcdefg", 1, 7)
	require.NotContains(t, got, "")
}

func TestDeleteScratchDeduplicates(t *testing.T) {
	s := newDeleteScratch(1000)
	got := s.generate("aaaa", 2, 7)
	seen := make(map[string]int)
	for _, v := range got {
		seen[v]++
	}
	for v, n := range seen {
		require.Equal(t, 1, n, "variant %q appeared more than once", v)
	}
}

func TestDeleteScratchRespectsCapacity(t *testing.T) {
	s := newDeleteScratch(3)
	got := s.generate("abcdefghij", 3, 10)
	require.LessOrEqual(t, len(got), 3)
}
