// internal/game/cache.go
//
// Process-wide memoization of Encode.

package game

import "sync"

// PatternCache memoizes Encode per (guess, target) pair.
//
// One cache is shared by every session in the process. Entries are only ever
// added for a key, never changed, so a lost race costs at most a recomputation.
// Once maxEntries pairs are stored, further pairs are computed without being cached.
type PatternCache struct {
	mu         sync.RWMutex
	entries    map[uint64]Pattern
	maxEntries int
}

// NewPatternCache builds an empty cache. maxEntries <= 0 means unbounded.
func NewPatternCache(maxEntries int) *PatternCache {
	return &PatternCache{entries: make(map[uint64]Pattern), maxEntries: maxEntries}
}

// Encode returns Encode(guess, target), consulting the cache first.
func (c *PatternCache) Encode(guess, target string) Pattern {
	k := pairKey(guess, target)

	c.mu.RLock()
	p, ok := c.entries[k]
	c.mu.RUnlock()
	if ok {
		return p
	}

	p = Encode(guess, target)

	c.mu.Lock()
	if c.maxEntries <= 0 || len(c.entries) < c.maxEntries {
		c.entries[k] = p
	}
	c.mu.Unlock()
	return p
}

// Len reports the number of cached pairs.
func (c *PatternCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached pair.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[uint64]Pattern)
	c.mu.Unlock()
}

// pairKey packs two five-letter words into 50 bits (5 bits per letter).
func pairKey(guess, target string) uint64 {
	var k uint64
	for i := 0; i < WordLen; i++ {
		k = k<<5 | uint64(guess[i]-'a')
	}
	for i := 0; i < WordLen; i++ {
		k = k<<5 | uint64(target[i]-'a')
	}
	return k
}
