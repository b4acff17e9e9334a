package source

import (
	"slices"
)

// StringID is an index into an Interner. The zero ID maps to the empty
// string and doubles as the "no name" sentinel.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier spellings so the rest of the engine can
// compare names as integers.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the ID for s, allocating one on first sight.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	// Copy so the interner does not pin the caller's backing buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup returns the string for id, or ("", false) for an unknown ID.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup is Lookup that panics on an unknown ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// Len counts interned strings, including the reserved empty entry.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of every interned string in ID order.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}

// Restore rebuilds an interner from a Snapshot slice. The first entry must
// be the reserved empty string.
func Restore(strings []string) *Interner {
	in := NewInterner()
	for idx, s := range strings {
		if idx == 0 {
			continue
		}
		in.Intern(s)
	}
	return in
}
