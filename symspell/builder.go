package symspell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadResult reports what a load pass actually did, letting a caller
// inspect load quality without the load itself having to fail for
// anything short of resource exhaustion or an I/O error (spec §7:
// "Malformed input line: silently skipped and counted").
type LoadResult struct {
	LinesRead     int
	WordsAdmitted int
	LinesSkipped  int
	MaxFrequency  uint64
}

// LoadDictionary opens path and loads it as a frequency dictionary. See
// LoadDictionaryFromReader for the line format and admission rules.
func (d *Dictionary) LoadDictionary(path string, termColumn, countColumn int) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("symspell: open dictionary: %w", err)
	}
	defer f.Close()
	return d.LoadDictionaryFromReader(f, termColumn, countColumn)
}

// LoadDictionaryFromReader streams (word, frequency) pairs from r, one per
// line, and admits each into the dictionary. termColumn and countColumn
// select which 0-based whitespace-separated field holds the term and the
// frequency. Blank lines and comment lines (first non-space byte '#') are
// skipped, as are lines with too few fields. A frequency field that is zero
// or does not parse as an unsigned integer is coerced to 1. Terms longer
// than maxTermLen are clipped.
//
// Multiple load passes are additive: calling this more than once on the
// same Dictionary keeps admitting words, MAX-merging frequencies for
// words seen before (spec invariant P3). The end-of-load probability/IWF
// sweep (spec §4.7) runs once per call, over the whole table as it stands
// at that point — call it only after the last pass for a given Dictionary
// if accuracy of probability/IWF matters, since an intermediate sweep is
// harmless but redundant.
func (d *Dictionary) LoadDictionaryFromReader(r io.Reader, termColumn, countColumn int) (*LoadResult, error) {
	result := &LoadResult{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		result.LinesRead++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			result.LinesSkipped++
			continue
		}

		fields := strings.Fields(line)
		need := termColumn
		if countColumn > need {
			need = countColumn
		}
		if len(fields) <= need {
			result.LinesSkipped++
			continue
		}

		word := strings.ToLower(fields[termColumn])
		if len(word) > maxTermLen {
			word = word[:maxTermLen]
		}
		if word == "" {
			result.LinesSkipped++
			continue
		}

		freq, err := strconv.ParseUint(fields[countColumn], 10, 64)
		if err != nil || freq == 0 {
			freq = 1
		}

		if err := d.insertWord(word, freq); err != nil {
			return result, err
		}
		result.WordsAdmitted++

		if d.deletes.count > 0 && d.deletes.loadFactor() > 0.75 && result.LinesRead%1000 == 0 {
			d.log.Warnf("delete table load factor %.2f exceeds 0.75 at %d lines", d.deletes.loadFactor(), result.LinesRead)
		}
		if result.LinesRead%1000 == 0 {
			d.log.Debugf("loaded %d lines, %d words admitted", result.LinesRead, result.WordsAdmitted)
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("symspell: read dictionary: %w", err)
	}

	result.MaxFrequency = d.exact.sweep()
	d.log.Infof("load complete: %d lines, %d words admitted, %d skipped, max frequency %d",
		result.LinesRead, result.WordsAdmitted, result.LinesSkipped, result.MaxFrequency)
	return result, nil
}

// insertWord admits (word, freq) into the dictionary: exact-table MAX-merge
// plus, for words crossing the count threshold for the first time, full
// delete-variant enumeration into the delete table.
func (d *Dictionary) insertWord(word string, freq uint64) error {
	hash := wordHash(word)

	if _, _, _, ok := d.exact.lookup(hash); ok {
		d.exact.insert(hash, freq)
		return nil
	}

	admitted, mergedFreq := d.admit(word, freq)
	if !admitted {
		return nil
	}

	interned, err := d.strings.intern(word)
	if err != nil {
		return err
	}
	if !d.exact.insert(wordHash(interned), mergedFreq) {
		return fmt.Errorf("symspell: exact table full, %d entries", d.exact.count)
	}
	d.wordCount++
	if len(interned) > d.maxWordLength {
		d.maxWordLength = len(interned)
	}

	for _, variant := range d.loadScratch.generate(interned, d.maxEditDistance, d.prefixLength) {
		if err := d.deletes.insert(variant, interned, mergedFreq); err != nil {
			return err
		}
	}
	return nil
}

// admit applies the count-threshold deferral: words whose accumulated
// frequency has not yet crossed countThreshold are held in
// belowThreshold (summed across sightings, mirroring the teacher's
// belowThresholdWords) rather than admitted into the index outright. The
// accumulation inside the deferral stage is additive bookkeeping only —
// once a word is actually admitted, all further updates to it MAX-merge
// (spec P3), never sum.
func (d *Dictionary) admit(word string, freq uint64) (bool, uint64) {
	if d.countThreshold <= 1 {
		return true, freq
	}
	prev, pending := d.belowThreshold[word]
	total := freq
	if pending {
		total += prev
	}
	if total >= d.countThreshold {
		delete(d.belowThreshold, word)
		return true, total
	}
	d.belowThreshold[word] = total
	return false, 0
}
