package symspell

import "github.com/go-symspell/symspell/internal/hashing"

// deleteEntry is one C6 slot's payload: a delete-variant key together with
// every source word (and its frequency) that produces that variant.
// words[] grows by doubling via append; two inserts of the same word are
// coalesced by add, keeping the maximum frequency (invariant I2).
type deleteEntry struct {
	key   string
	words []string
	freqs []uint64
}

func (e *deleteEntry) add(word string, freq uint64) {
	for i, w := range e.words {
		if w == word {
			if freq > e.freqs[i] {
				e.freqs[i] = freq
			}
			return
		}
	}
	e.words = append(e.words, word)
	e.freqs = append(e.freqs, freq)
}

// deleteTable is the C6 delete index: a flat open-addressed table keyed by
// the hash of a delete-variant string, whose slots point at
// arena-allocated *deleteEntry headers. Open addressing keeps probe
// traffic in contiguous memory and avoids per-insert heap allocation in
// the steady state (the entries themselves come from a typed entryArena).
type deleteTable struct {
	hashes  []uint64
	entries []*deleteEntry
	size    int
	count   int

	strings *stringArena
	pool    *entryArena[deleteEntry]
}

func newDeleteTable(size int, strings *stringArena, pool *entryArena[deleteEntry]) *deleteTable {
	return &deleteTable{
		hashes:  make([]uint64, size),
		entries: make([]*deleteEntry, size),
		size:    size,
		strings: strings,
		pool:    pool,
	}
}

func (t *deleteTable) loadFactor() float64 {
	return float64(t.count) / float64(t.size)
}

// insert records that word (with frequency freq) produces the delete
// variant deleteStr. On the first sight of deleteStr a fresh entry is
// allocated from the entry arena and the key is interned into the string
// arena; on a repeat the existing entry absorbs the (word, freq) pair.
func (t *deleteTable) insert(deleteStr, word string, freq uint64) error {
	hash := hashing.Sum64String(deleteStr)
	start := int(hash % uint64(t.size))
	for i := 0; i < t.size; i++ {
		pos := (start + i) % t.size
		if t.hashes[pos] == 0 {
			interned, err := t.strings.intern(deleteStr)
			if err != nil {
				return err
			}
			entry, err := t.pool.alloc()
			if err != nil {
				return err
			}
			entry.key = interned
			entry.add(word, freq)
			t.hashes[pos] = hash
			t.entries[pos] = entry
			t.count++
			return nil
		}
		if t.hashes[pos] == hash && t.entries[pos].key == deleteStr {
			t.entries[pos].add(word, freq)
			return nil
		}
	}
	return ErrDeleteTableFull
}

func (t *deleteTable) lookup(deleteStr string) (*deleteEntry, bool) {
	hash := hashing.Sum64String(deleteStr)
	start := int(hash % uint64(t.size))
	for i := 0; i < t.size; i++ {
		pos := (start + i) % t.size
		if t.hashes[pos] == 0 {
			return nil, false
		}
		if t.hashes[pos] == hash && t.entries[pos].key == deleteStr {
			return t.entries[pos], true
		}
	}
	return nil, false
}
