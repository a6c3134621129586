package model

// Record is one captured parameter value: the owner material by name, the
// full path as stored in the keying set, and the value resolved at capture
// time. Records reference owners by name so a preset survives keying-set
// mutation or deletion.
type Record struct {
	Material string `yaml:"material"`
	Path     string `yaml:"path"`
	Value    Value  `yaml:"value"`
}

// Preset is a named snapshot of a keying set's values, serialized to a single
// text blob.
type Preset struct {
	Name string
	Blob string
}

// PresetStore is the scene-scoped ordered preset collection with a single
// active-index cursor. Entries are appended by capture and removed
// individually; they are never mutated in place.
type PresetStore struct {
	Items       []Preset
	ActiveIndex int
}

// Len returns the number of presets.
func (ps *PresetStore) Len() int {
	return len(ps.Items)
}

// Active returns the active index, normalized to -1 when the store is empty.
func (ps *PresetStore) Active() int {
	if len(ps.Items) == 0 {
		return -1
	}

	if ps.ActiveIndex < 0 || ps.ActiveIndex >= len(ps.Items) {
		return len(ps.Items) - 1
	}

	return ps.ActiveIndex
}

// Get returns the preset at index, reporting whether the index is in range.
func (ps *PresetStore) Get(index int) (Preset, bool) {
	if index < 0 || index >= len(ps.Items) {
		return Preset{}, false
	}

	return ps.Items[index], true
}

// Append adds a preset and moves the active index to it.
func (ps *PresetStore) Append(p Preset) int {
	ps.Items = append(ps.Items, p)
	ps.ActiveIndex = len(ps.Items) - 1

	return ps.ActiveIndex
}

// Remove deletes the preset at index and reclamps the active index to
// min(index, size-1), or -1 when the store becomes empty. It reports whether
// the index was in range.
func (ps *PresetStore) Remove(index int) bool {
	if index < 0 || index >= len(ps.Items) {
		return false
	}

	ps.Items = append(ps.Items[:index], ps.Items[index+1:]...)

	ps.ActiveIndex = min(index, len(ps.Items)-1)

	return true
}

// SkipReason explains why a record was passed over during restore or why an
// entry was passed over during capture.
type SkipReason string

const (
	// SkipUnknownMaterial means the record's owner no longer exists.
	SkipUnknownMaterial SkipReason = "unknown material"
	// SkipUnknownSocket means the socket path no longer resolves.
	SkipUnknownSocket SkipReason = "unknown socket"
	// SkipUnsupportedPath means the target cannot accept a keyframe there.
	SkipUnsupportedPath SkipReason = "unsupported path"
)

// Skip pairs a passed-over record with the reason it was skipped.
type Skip struct {
	Record Record
	Reason SkipReason
}

// RestoreReport summarizes a preset restore: how many records were committed
// and which were skipped, with reasons, instead of being silently discarded.
type RestoreReport struct {
	Preset    string
	Committed int
	Skips     []Skip
}

// Skipped returns the number of skipped records.
func (r *RestoreReport) Skipped() int {
	return len(r.Skips)
}
