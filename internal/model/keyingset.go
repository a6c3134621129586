package model

import "strings"

// EntryKind tags how an entry's path is addressed. It is computed once when
// the entry is built so replay and capture never re-parse the path string.
type EntryKind int

const (
	// EntryMaterial addresses a path relative to the owning material itself.
	EntryMaterial EntryKind = iota
	// EntryNetwork addresses a path relative to the material's bound network.
	EntryNetwork
)

const (
	// NetworkPrefix marks a path as network-relative.
	NetworkPrefix = "network."
	// SocketValueSuffix is the fixed addressing suffix of a socket's value.
	SocketValueSuffix = ".value"
)

// Entry is one addressable animatable parameter inside a keying set. Owner is
// a non-owning reference: a nil or since-deleted owner makes the entry stale,
// and stale entries are skipped rather than dereferenced.
type Entry struct {
	Owner *Material
	Path  string
	Index int
	Kind  EntryKind
}

// OwnerName returns the owner's name, or "" for a stale entry.
func (e Entry) OwnerName() string {
	if e.Owner == nil {
		return ""
	}

	return e.Owner.Name
}

// NetworkPath strips the network prefix from the entry's full path.
func (e Entry) NetworkPath() string {
	return strings.TrimPrefix(e.Path, NetworkPrefix)
}

// ClassifyPath determines the entry kind for a full path string.
func ClassifyPath(full string) EntryKind {
	if strings.HasPrefix(full, NetworkPrefix) {
		return EntryNetwork
	}

	return EntryMaterial
}

// IsSocketValuePath reports whether a full path addresses a socket value
// inside a network, the one restore sub-kind that writes the value back.
func IsSocketValuePath(full string) bool {
	return strings.HasPrefix(full, NetworkPrefix) && strings.HasSuffix(full, SocketValueSuffix)
}

// SocketBasePath strips both the network prefix and the value suffix,
// yielding the socket's base path within its network.
func SocketBasePath(full string) string {
	return strings.TrimSuffix(strings.TrimPrefix(full, NetworkPrefix), SocketValueSuffix)
}

// KeyingSet is a named, ordered, deduplicated collection of entries. Names
// are unique per scene; re-extracting into an existing name rebuilds the set
// in place.
type KeyingSet struct {
	Name    string
	Entries []Entry
}

// Clear removes all entries while keeping the set registered in the scene.
func (ks *KeyingSet) Clear() {
	ks.Entries = ks.Entries[:0]
}

// Add appends an entry. Deduplication is the caller's responsibility.
func (ks *KeyingSet) Add(e Entry) {
	ks.Entries = append(ks.Entries, e)
}

// Len returns the number of entries.
func (ks *KeyingSet) Len() int {
	return len(ks.Entries)
}
