// Package hashing provides the 64-bit content hash used by the exact-match
// and delete-index tables.
package hashing

import "github.com/cespare/xxhash/v2"

// Sum64 returns a stable 64-bit hash of b. The open-addressed tables use 0
// as the empty-slot sentinel; a real hash collision with zero is remapped
// to 1 so a word is never silently dropped because of it.
func Sum64(b []byte) uint64 {
	h := xxhash.Sum64(b)
	if h == 0 {
		return 1
	}
	return h
}

// Sum64String is Sum64 without the caller having to convert to []byte first.
func Sum64String(s string) uint64 {
	h := xxhash.Sum64String(s)
	if h == 0 {
		return 1
	}
	return h
}
