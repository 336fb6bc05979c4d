package symspell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenario mirrors the end-to-end table from the engine's documented
// behavior: given a small dictionary, a misspelled query should resolve
// to the expected top suggestion at the expected distance.
type scenario struct {
	name       string
	dictionary string
	query      string
	wantTerm   string
	wantDist   int
	wantNone   bool
}

func TestEndToEndScenarios(t *testing.T) {
	scenarios := []scenario{
		{name: "exact match", dictionary: "hello 5000\nheld 200\n", query: "hello", wantTerm: "hello", wantDist: 0},
		{name: "substitution picks frequency", dictionary: "hello 5000\nheld 200\n", query: "helo", wantTerm: "held", wantDist: 1},
		{name: "transposition", dictionary: "receive 3000\n", query: "recieve", wantTerm: "receive", wantDist: 1},
		{name: "closer and more frequent wins", dictionary: "spelling 1000\nsailing 800\n", query: "speling", wantTerm: "spelling", wantDist: 1},
		{name: "short word rule", dictionary: "the 100000\ntea 500\n", query: "teh", wantTerm: "the", wantDist: 1},
		{name: "no near word", dictionary: "hello 5000\n", query: "xqzyyy", wantNone: true},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			d := newTestDictionary(t, 2, 7)
			_, err := d.LoadDictionaryFromReader(strings.NewReader(sc.dictionary), 0, 1)
			require.NoError(t, err)

			got := d.Lookup(sc.query, 2, 5, Top, d.NewScratch())
			if sc.wantNone {
				require.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			require.Equal(t, sc.wantTerm, got[0].Term)
			require.Equal(t, sc.wantDist, got[0].Distance)
		})
	}
}

func TestEveryDictionaryWordHasExactDistanceZeroHit(t *testing.T) {
	words := []string{"hello", "world", "spelling", "receive", "the", "tea"}
	var sb strings.Builder
	for i, w := range words {
		sb.WriteString(w)
		sb.WriteString(" ")
		sb.WriteString([]string{"10", "20", "30", "40", "50", "60"}[i])
		sb.WriteString("\n")
	}

	d := newTestDictionary(t, 2, 7)
	_, err := d.LoadDictionaryFromReader(strings.NewReader(sb.String()), 0, 1)
	require.NoError(t, err)

	for _, w := range words {
		got := d.Lookup(w, 2, 5, Top, d.NewScratch())
		require.Len(t, got, 1)
		require.Equal(t, w, got[0].Term)
		require.Equal(t, 0, got[0].Distance)
	}
}

func TestExactMatchHashProbeReturnsOwnFrequency(t *testing.T) {
	d := newTestDictionary(t, 2, 7)
	_, err := d.LoadDictionaryFromReader(strings.NewReader("hello 42\n"), 0, 1)
	require.NoError(t, err)

	freq, _, _, ok := d.exact.lookup(wordHash("hello"))
	require.True(t, ok)
	require.EqualValues(t, 42, freq)
}

func TestGetStats(t *testing.T) {
	d := newTestDictionary(t, 2, 7)
	_, err := d.LoadDictionaryFromReader(strings.NewReader("hello 1\nworld 1\n"), 0, 1)
	require.NoError(t, err)

	wordCount, entryCount := d.GetStats()
	require.EqualValues(t, 2, wordCount)
	require.Greater(t, entryCount, uint64(0))
}

func TestContainsDistinguishesAbsentFromPresent(t *testing.T) {
	d := newTestDictionary(t, 2, 7)
	_, err := d.LoadDictionaryFromReader(strings.NewReader("hello 1\n"), 0, 1)
	require.NoError(t, err)

	require.True(t, d.Contains("hello"))
	require.False(t, d.Contains("goodbye"))
}

func TestLookupClampsDistanceToDictionaryMax(t *testing.T) {
	d := newTestDictionary(t, 1, 7)
	_, err := d.LoadDictionaryFromReader(strings.NewReader("hello 1\n"), 0, 1)
	require.NoError(t, err)

	got := d.Lookup("hellox", 3, 5, Top, d.NewScratch())
	require.NotEmpty(t, got)
	require.LessOrEqual(t, got[0].Distance, 1)
}
