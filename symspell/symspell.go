// Package symspell implements the Symmetric Delete spelling-correction
// algorithm: a precomputed delete-variant index that maps every deletion
// of every dictionary word, up to a bounded edit distance and a bounded
// prefix, back to its source word. Lookups run in low microseconds by
// deleting the query the same way and probing the index instead of
// comparing against the whole dictionary.
package symspell

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/go-symspell/symspell/internal/config"
	"github.com/go-symspell/symspell/internal/hashing"
	"github.com/go-symspell/symspell/internal/logger"
)

// Verbosity controls how many suggestions Lookup returns and how it picks
// among tied candidates.
type Verbosity int

const (
	// Top returns the single best suggestion: smallest distance, then
	// highest frequency, then lexicographically smallest term.
	Top Verbosity = iota
	// Closest returns every suggestion at the smallest distance found,
	// ordered by the same total order.
	Closest
	// All returns every suggestion within the effective max distance,
	// ordered by the total order. Slower: no early termination.
	All
)

// maxTermLen bounds a stored or queried word; longer input is clipped
// (spec §3: MAX_TERM_LEN = 128).
const maxTermLen = 128

// Exact-match table size, fixed regardless of D (spec §4.5).
const exactTableSize = 524287

// Delete-index table sizes, chosen by configured max edit distance
// (spec §4.6).
const (
	tableSizeD1 = 524287
	tableSizeD2 = 4194301
	tableSizeD3 = 33554393
)

// Dictionary is the root object: string and entry arenas, the two
// open-addressed tables, configuration, and load-time scratch. It is
// built by one or more load passes and is immutable and safe for
// concurrent Lookup calls afterward, provided each caller uses its own
// Scratch (spec §5).
type Dictionary struct {
	maxEditDistance     int
	prefixLength        int
	countThreshold      uint64
	deleteQueueCapacity int
	maxWordLength       int

	strings *stringArena
	entries *entryArena[deleteEntry]
	exact   *exactTable
	deletes *deleteTable

	wordCount      uint64
	belowThreshold map[string]uint64
	loadScratch    *deleteScratch

	log *log.Logger
}

// Create allocates a new, empty Dictionary for the given configuration.
// maxEditDistance must be in {1,2,3}; prefixLength must exceed
// maxEditDistance (spec §4.6, §6).
func Create(cfg config.Config) (*Dictionary, error) {
	d := cfg.Engine.MaxEditDistance
	p := cfg.Engine.PrefixLength
	if d < 1 || d > 3 {
		return nil, fmt.Errorf("%w: max_edit_distance must be 1, 2, or 3, got %d", ErrInvalidConfig, d)
	}
	if p <= d {
		return nil, fmt.Errorf("%w: prefix_length (%d) must exceed max_edit_distance (%d)", ErrInvalidConfig, p, d)
	}
	if cfg.Engine.CountThreshold < 0 {
		return nil, fmt.Errorf("%w: count_threshold must be >= 0", ErrInvalidConfig)
	}

	var deleteSize int
	switch d {
	case 1:
		deleteSize = tableSizeD1
	case 2:
		deleteSize = tableSizeD2
	case 3:
		deleteSize = tableSizeD3
	}

	strings := newStringArena(cfg.Engine.StringArenaBytes)
	entries := newEntryArena[deleteEntry](cfg.Engine.EntryArenaCapacity)

	dict := &Dictionary{
		maxEditDistance:     d,
		prefixLength:        p,
		countThreshold:      uint64(cfg.Engine.CountThreshold),
		deleteQueueCapacity: cfg.Engine.DeleteQueueCapacity,
		strings:             strings,
		entries:             entries,
		exact:               newExactTable(exactTableSize),
		deletes:             newDeleteTable(deleteSize, strings, entries),
		belowThreshold:      make(map[string]uint64),
		loadScratch:         newDeleteScratch(cfg.Engine.DeleteQueueCapacity),
		log:                 logger.New("symspell"),
	}
	return dict, nil
}

// SetLogger swaps the dictionary's load-time logger, e.g. for
// logger.Discard() in tests or embedded use.
func (d *Dictionary) SetLogger(l *log.Logger) { d.log = l }

// Close releases the dictionary's arenas and tables. After Close, d must
// not be used.
func (d *Dictionary) Close() {
	d.strings = nil
	d.entries = nil
	d.exact = nil
	d.deletes = nil
	d.belowThreshold = nil
}

// GetStats returns the number of distinct words admitted and the number
// of delete-index entries populated.
func (d *Dictionary) GetStats() (wordCount, entryCount uint64) {
	return d.wordCount, uint64(d.deletes.count)
}

// GetProbability returns the derived probability for the word with the
// given hash, or 0.0 if absent — or present with probability 0; spec §9
// documents this ambiguity and leaves it unresolved. Use Contains to
// disambiguate "absent" explicitly.
func (d *Dictionary) GetProbability(wordHash uint64) float32 {
	_, prob, _, _ := d.exact.lookup(wordHash)
	return prob
}

// GetIWF returns the derived inverse word frequency for word, or 0.0 if
// word is absent from the dictionary.
func (d *Dictionary) GetIWF(word string) float32 {
	_, _, iwf, ok := d.exact.lookup(wordHash(word))
	if !ok {
		return 0
	}
	return iwf
}

// Contains reports whether word was admitted into the dictionary. Unlike
// GetProbability, this disambiguates "absent" from "present with
// probability 0" (spec §9 Open Question).
func (d *Dictionary) Contains(word string) bool {
	_, _, _, ok := d.exact.lookup(wordHash(word))
	return ok
}

func wordHash(word string) uint64 { return hashing.Sum64String(word) }
