package symspell

// queueItem is one entry in the delete enumerator's breadth-first queue:
// a candidate string together with how many deletions produced it.
type queueItem struct {
	s    string
	dist int
}

// deleteScratch is the reusable, per-caller work buffer the delete
// enumerator writes into. It is deliberately reused across calls (reset
// instead of reallocated) so that neither dictionary loading nor lookup's
// slow path reallocates its seen set, queue or result slice on every word
// or query; each newly produced variant string is still its own allocation.
type deleteScratch struct {
	seen     map[string]struct{}
	queue    []queueItem
	result   []string
	capacity int
}

func newDeleteScratch(capacity int) *deleteScratch {
	if capacity <= 0 {
		capacity = 10_000
	}
	return &deleteScratch{
		seen:     make(map[string]struct{}, capacity),
		queue:    make([]queueItem, 0, capacity),
		result:   make([]string, 0, capacity),
		capacity: capacity,
	}
}

// generate computes the set of unique delete variants of word: truncate
// to the first prefixLength bytes, then delete any subset of 1..maxDistance
// positions from that prefix. The prefix itself is always included, and
// the empty string is included when the (possibly shorter than
// prefixLength) prefix has length <= maxDistance.
//
// Truncation happens before enumeration, not after — doing it the other
// way round changes the output set and silently breaks correctness.
//
// The returned slice is only valid until the next call to generate on
// this scratch.
func (d *deleteScratch) generate(word string, maxDistance, prefixLength int) []string {
	clear(d.seen)
	d.queue = d.queue[:0]
	d.result = d.result[:0]

	if len(word) > prefixLength {
		word = word[:prefixLength]
	}

	if len(word) <= maxDistance && len(d.result) < d.capacity {
		d.seen[""] = struct{}{}
		d.result = append(d.result, "")
	}
	if len(d.result) < d.capacity {
		if _, ok := d.seen[word]; !ok {
			d.seen[word] = struct{}{}
			d.result = append(d.result, word)
		}
	}

	d.queue = append(d.queue, queueItem{word, 0})
	for i := 0; i < len(d.queue) && len(d.result) < d.capacity; i++ {
		cur := d.queue[i]
		if cur.dist >= maxDistance || len(cur.s) <= 1 {
			continue
		}
		for j := 0; j < len(cur.s) && len(d.result) < d.capacity; j++ {
			del := cur.s[:j] + cur.s[j+1:]
			if _, ok := d.seen[del]; ok {
				continue
			}
			d.seen[del] = struct{}{}
			d.result = append(d.result, del)
			if len(d.queue) < d.capacity {
				d.queue = append(d.queue, queueItem{del, cur.dist + 1})
			}
		}
	}
	return d.result
}
