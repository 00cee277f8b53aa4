package core

import (
	"fmt"
	"iter"
)

// Library maps keys to Zettels and remembers insertion order, which is the
// order records are exported in.
type Library struct {
	keys    []string
	records map[string]*Zettel
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{records: make(map[string]*Zettel)}
}

// Add stores z under z.Key. A taken key is refused with ErrDuplicateKey and
// the stored record is left untouched.
func (l *Library) Add(z *Zettel) error {
	if _, ok := l.records[z.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, z.Key)
	}
	l.keys = append(l.keys, z.Key)
	l.records[z.Key] = z
	return nil
}

// Get returns the record stored under key.
func (l *Library) Get(key string) (*Zettel, bool) {
	z, ok := l.records[key]
	return z, ok
}

// Has reports whether key is taken.
func (l *Library) Has(key string) bool {
	_, ok := l.records[key]
	return ok
}

// Delete removes the record stored under key, if any.
func (l *Library) Delete(key string) {
	if _, ok := l.records[key]; !ok {
		return
	}
	delete(l.records, key)
	for i, k := range l.keys {
		if k == key {
			l.keys = append(l.keys[:i], l.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (l *Library) Len() int {
	return len(l.keys)
}

// Keys returns the keys in insertion order.
func (l *Library) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// All yields every record in insertion order.
func (l *Library) All() iter.Seq2[string, *Zettel] {
	return func(yield func(string, *Zettel) bool) {
		for _, k := range l.keys {
			if !yield(k, l.records[k]) {
				return
			}
		}
	}
}

// Count returns the number of records of the given kind.
func (l *Library) Count(kind Kind) int {
	n := 0
	for _, z := range l.All() {
		if z.Kind == kind {
			n++
		}
	}
	return n
}

// Orphans returns the keys of records whose parent is neither stored in the
// library nor the given root key.
func (l *Library) Orphans(root string) []string {
	var out []string
	for k, z := range l.All() {
		if z.Parent == root || l.Has(z.Parent) {
			continue
		}
		out = append(out, k)
	}
	return out
}

// PruneEmpty removes every record without title and body and returns how
// many were removed.
func (l *Library) PruneEmpty() int {
	kept := l.keys[:0]
	removed := 0
	for _, k := range l.keys {
		if l.records[k].IsEmpty() {
			delete(l.records, k)
			removed++
			continue
		}
		kept = append(kept, k)
	}
	l.keys = kept
	return removed
}
