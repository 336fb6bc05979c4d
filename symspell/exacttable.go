package symspell

import "math"

// exactTable is the C5 exact-match index: a flat, open-addressed table
// keyed by a 64-bit word hash, storing frequency/probability/IWF in
// parallel slices (struct-of-arrays) so the lookup fast path touches
// compact, cache-friendly memory. Slot i is empty when hashes[i] == 0;
// hashing/hash.go guarantees real content never hashes to 0.
type exactTable struct {
	hashes        []uint64
	frequencies   []uint64
	probabilities []float32
	iwf           []float32
	size          int
	count         int
}

func newExactTable(size int) *exactTable {
	return &exactTable{
		hashes:        make([]uint64, size),
		frequencies:   make([]uint64, size),
		probabilities: make([]float32, size),
		iwf:           make([]float32, size),
		size:          size,
	}
}

func (t *exactTable) loadFactor() float64 {
	return float64(t.count) / float64(t.size)
}

// insert places (hash, freq) into the table, MAX-merging the frequency if
// the hash is already present (either the same word, or an accepted
// 64-bit hash collision between two distinct words, which then share this
// slot). Returns false if the table is full and hash is not present.
func (t *exactTable) insert(hash uint64, freq uint64) bool {
	start := int(hash % uint64(t.size))
	for i := 0; i < t.size; i++ {
		pos := (start + i) % t.size
		if t.hashes[pos] == 0 {
			t.hashes[pos] = hash
			t.frequencies[pos] = freq
			t.count++
			return true
		}
		if t.hashes[pos] == hash {
			if freq > t.frequencies[pos] {
				t.frequencies[pos] = freq
			}
			return true
		}
	}
	return false
}

// probe returns the slot index holding hash, and whether it was found.
func (t *exactTable) probe(hash uint64) (int, bool) {
	start := int(hash % uint64(t.size))
	for i := 0; i < t.size; i++ {
		pos := (start + i) % t.size
		if t.hashes[pos] == 0 {
			return 0, false
		}
		if t.hashes[pos] == hash {
			return pos, true
		}
	}
	return 0, false
}

func (t *exactTable) lookup(hash uint64) (freq uint64, prob float32, iwf float32, ok bool) {
	pos, found := t.probe(hash)
	if !found {
		return 0, 0, 0, false
	}
	return t.frequencies[pos], t.probabilities[pos], t.iwf[pos], true
}

// sweep derives probability and IWF for every inhabited slot from the
// maximum frequency observed across the table (spec invariant I3).
func (t *exactTable) sweep() uint64 {
	var maxFreq uint64
	for i := 0; i < t.size; i++ {
		if t.hashes[i] != 0 && t.frequencies[i] > maxFreq {
			maxFreq = t.frequencies[i]
		}
	}
	if maxFreq == 0 {
		return 0
	}
	for i := 0; i < t.size; i++ {
		if t.hashes[i] == 0 {
			continue
		}
		prob := float32(t.frequencies[i]) / float32(maxFreq)
		t.probabilities[i] = prob
		if prob == 0 {
			t.iwf[i] = 99.0
		} else {
			t.iwf[i] = float32(math.Abs(float64(math.Log(float64(prob)))))
		}
	}
	return maxFreq
}
