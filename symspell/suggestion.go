package symspell

import "sort"

// Suggestion is a single spelling correction candidate: the corrected
// term, its edit distance from the query, its dictionary frequency, and
// its derived probability and inverse word frequency.
type Suggestion struct {
	Term        string
	Distance    int
	Frequency   uint64
	Probability float32
	IWF         float32
}

// SuggestItems is a slice of Suggestion, sortable by the engine's total
// order: ascending distance, then descending frequency, then lexicographic
// term. The term tie-break makes the order total rather than merely
// partial, which is what makes Lookup's sorted output deterministic.
type SuggestItems []Suggestion

func (s SuggestItems) Len() int      { return len(s) }
func (s SuggestItems) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SuggestItems) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	if s[i].Frequency != s[j].Frequency {
		return s[i].Frequency > s[j].Frequency
	}
	return s[i].Term < s[j].Term
}

func sortSuggestions(s SuggestItems) { sort.Sort(s) }
