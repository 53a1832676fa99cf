package classify

import (
	"crypto/md5"
	"encoding/hex"
)

// DefaultFingerprintLength is how many leading bytes of a document feed the
// cache key. Two documents sharing their first kilobyte share an analysis.
const DefaultFingerprintLength = 1000

// Cache stores character analyses keyed by a document fingerprint, so that
// repeated gender lookups against the same story cost a single classifier
// call.
//
// The cache is an unbounded map without internal locking. Hosts running
// concurrent requests must give each request its own Cache (or guard a
// shared one externally).
type Cache struct {
	fingerprintLen int
	entries        map[string]map[string]CharacterInfo
}

// NewCache returns an empty cache. fingerprintLen <= 0 selects
// DefaultFingerprintLength.
func NewCache(fingerprintLen int) *Cache {
	if fingerprintLen <= 0 {
		fingerprintLen = DefaultFingerprintLength
	}
	return &Cache{
		fingerprintLen: fingerprintLen,
		entries:        make(map[string]map[string]CharacterInfo),
	}
}

// Fingerprint derives the cache key for a document from its leading bytes.
func (c *Cache) Fingerprint(text string) string {
	head := text
	if len(head) > c.fingerprintLen {
		head = head[:c.fingerprintLen]
	}
	sum := md5.Sum([]byte(head))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached analysis for a document, or nil.
func (c *Cache) Get(text string) map[string]CharacterInfo {
	return c.entries[c.Fingerprint(text)]
}

// Put stores an analysis for a document, replacing any previous entry.
func (c *Cache) Put(text string, analysis map[string]CharacterInfo) {
	c.entries[c.Fingerprint(text)] = analysis
}

// Clear drops all cached analyses.
func (c *Cache) Clear() {
	c.entries = make(map[string]map[string]CharacterInfo)
}
