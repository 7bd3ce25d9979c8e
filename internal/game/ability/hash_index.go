package ability

import "log/slog"

// Config is one loaded ability configuration as the hash index and the
// engine's template source see it: the ability name, its base specials
// table and the keys of its modifiers table.
type Config struct {
	Name      string
	Specials  map[string]float64
	Modifiers []string
}

// NameHash computes the client's 32-bit ability name hash.
// The client ships hashes, not strings; the server recovers the originating
// string by hashing every name it loaded and indexing the results.
func NameHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = uint32(s[i]) + 131*h
	}
	return h
}

// NameHashIndex is the reverse lookup from a client-sent name hash to the
// configuration key it was derived from. Built once at startup, read-only
// afterwards; concurrent reads need no synchronization.
type NameHashIndex struct {
	byHash map[uint32]string
}

// BuildHashIndex hashes every ability name, special name and modifier key
// of the given configs. Distinct strings colliding to one hash keep the
// last insertion; collisions are logged, not fatal. None occur in the
// shipped data, but nothing guards new data against them.
func BuildHashIndex(configs []Config) *NameHashIndex {
	idx := &NameHashIndex{byHash: make(map[uint32]string, len(configs)*8)}
	for _, cfg := range configs {
		idx.insert(cfg.Name)
		for name := range cfg.Specials {
			idx.insert(name)
		}
		for _, name := range cfg.Modifiers {
			idx.insert(name)
		}
	}
	slog.Info("built ability name hash index", "entries", len(idx.byHash))
	return idx
}

func (idx *NameHashIndex) insert(name string) {
	h := NameHash(name)
	if prev, ok := idx.byHash[h]; ok && prev != name {
		slog.Warn("ability name hash collision, keeping last",
			"hash", h, "previous", prev, "current", name)
	}
	idx.byHash[h] = name
}

// Lookup returns the originating string for a hash.
func (idx *NameHashIndex) Lookup(h uint32) (string, bool) {
	name, ok := idx.byHash[h]
	return name, ok
}

// Len returns the number of distinct hashes in the index.
func (idx *NameHashIndex) Len() int {
	return len(idx.byHash)
}
