package symspell

// shortWordLength is the query length at or below which the short-word rule
// clamps the effective edit distance to 1 regardless of what the caller
// requested (spec B3): short queries blow up combinatorially without it
// and clamping does not hurt real accuracy.
const shortWordLength = 4

// Scratch holds the reusable, per-caller buffers Lookup writes into. A
// Dictionary's tables are read-only after load and safe for concurrent
// Lookup calls from multiple goroutines, as long as each goroutine uses
// its own Scratch (spec §5: per-caller scratch in place of the reference
// implementation's lookup-wide mutex).
type Scratch struct {
	deletes    *deleteScratch
	distances  *distanceScratch
	seen       map[string]struct{}
	candidates []Suggestion
}

// NewScratch allocates a Scratch sized for this Dictionary's configured
// delete-queue capacity. Reuse the same Scratch across many Lookup calls
// from the same goroutine; do not share one across goroutines.
func (d *Dictionary) NewScratch() *Scratch {
	return &Scratch{
		deletes:    newDeleteScratch(d.deleteQueueCapacity),
		distances:  newDistanceScratch(),
		seen:       make(map[string]struct{}, 64),
		candidates: make([]Suggestion, 0, 64),
	}
}

// Lookup returns spelling suggestions for term, ranked per verbosity.
// maxDistance is clamped to the dictionary's configured max edit
// distance. An empty term returns no suggestions (spec B1).
func (d *Dictionary) Lookup(term string, maxDistance int, maxSuggestions int, verbosity Verbosity, scratch *Scratch) SuggestItems {
	if term == "" {
		return nil
	}
	if maxDistance > d.maxEditDistance {
		maxDistance = d.maxEditDistance
	}
	if maxDistance < 0 {
		maxDistance = 0
	}
	if len(term) > maxTermLen {
		term = term[:maxTermLen]
	}

	hash := wordHash(term)
	if freq, prob, iwf, ok := d.exact.lookup(hash); ok {
		return SuggestItems{{Term: term, Distance: 0, Frequency: freq, Probability: prob, IWF: iwf}}
	}

	if maxDistance == 0 {
		return nil
	}

	effectiveDistance := maxDistance
	if len(term) <= shortWordLength && effectiveDistance > 1 {
		effectiveDistance = 1
	}

	clear(scratch.seen)
	scratch.candidates = scratch.candidates[:0]
	scratch.seen[term] = struct{}{}

	variants := scratch.deletes.generate(term, effectiveDistance, d.prefixLength)
	for _, variant := range variants {
		entry, found := d.deletes.lookup(variant)
		if !found {
			continue
		}
		for _, word := range entry.words {
			if _, ok := scratch.seen[word]; ok {
				continue
			}
			scratch.seen[word] = struct{}{}

			dist := scratch.distances.distance(term, word, effectiveDistance)
			if dist > effectiveDistance {
				continue
			}
			wordFreq, _, _, _ := d.exact.lookup(wordHash(word))
			scratch.candidates = append(scratch.candidates, Suggestion{
				Term:      word,
				Distance:  dist,
				Frequency: wordFreq,
			})
		}
	}

	if len(scratch.candidates) == 0 {
		return nil
	}

	var out SuggestItems
	switch verbosity {
	case Top:
		best := scratch.candidates[0]
		for _, c := range scratch.candidates[1:] {
			if c.Distance < best.Distance || (c.Distance == best.Distance && c.Frequency > best.Frequency) ||
				(c.Distance == best.Distance && c.Frequency == best.Frequency && c.Term < best.Term) {
				best = c
			}
		}
		out = SuggestItems{best}
	case Closest:
		minDist := scratch.candidates[0].Distance
		for _, c := range scratch.candidates {
			if c.Distance < minDist {
				minDist = c.Distance
			}
		}
		for _, c := range scratch.candidates {
			if c.Distance == minDist {
				out = append(out, c)
			}
		}
		sortSuggestions(out)
	case All:
		out = append(out, scratch.candidates...)
		sortSuggestions(out)
	}

	if maxSuggestions > 0 && len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}

	d.fillProbability(out)
	return out
}

// fillProbability attaches each suggestion's derived probability/IWF by
// re-probing the exact table, since the candidate scratch only carries
// frequency.
func (d *Dictionary) fillProbability(items SuggestItems) {
	for i := range items {
		if _, prob, iwf, ok := d.exact.lookup(wordHash(items[i].Term)); ok {
			items[i].Probability = prob
			items[i].IWF = iwf
		}
	}
}
