package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shadekey.dev/pkg/shadekey/internal/adapter"
	m "shadekey.dev/pkg/shadekey/internal/model"
)

// PresetSuffix is appended to a keying set's name when batch collection
// derives a preset name from it.
const PresetSuffix = "_preset"

// PresetManager defines value capture, restore and preset store maintenance.
type PresetManager interface {
	// SaveCurrent captures the named keying set's live values into a new
	// preset. The set must exist and the preset name must be non-empty; on
	// failure no partial preset is stored.
	SaveCurrent(ctx context.Context, graph adapter.SceneGraph, setName, presetName string) (m.Preset, error)

	// Restore writes a preset's captured values back onto their targets,
	// keying each at the current frame. It reports per-record outcomes and
	// whether the preset could be selected and decoded at all.
	Restore(ctx context.Context, graph adapter.SceneGraph, index int) (m.RestoreReport, bool)

	// Remove deletes the preset at index and reclamps the active cursor. It
	// reports whether the index was in range.
	Remove(ctx context.Context, graph adapter.SceneGraph, index int) bool

	// BatchCollect captures every keying set in the scene into one preset
	// each and returns the number of presets created.
	BatchCollect(ctx context.Context, graph adapter.SceneGraph) (int, error)
}

type presetManager struct {
	codec adapter.PresetCodec
}

// NewPresetManager creates a PresetManager backed by the given codec.
func NewPresetManager(codec adapter.PresetCodec) PresetManager {
	return &presetManager{codec: codec}
}

func (pm *presetManager) SaveCurrent(ctx context.Context, graph adapter.SceneGraph, setName, presetName string) (m.Preset, error) {
	if err := ctx.Err(); err != nil {
		return m.Preset{}, err
	}

	ks, ok := graph.KeyingSet(strings.TrimSpace(setName))
	if !ok {
		return m.Preset{}, fmt.Errorf("%w: %q", ErrNoSuchSet, setName)
	}

	if strings.TrimSpace(presetName) == "" {
		return m.Preset{}, ErrMissingPresetName
	}

	records := collectRecords(graph, ks)

	blob, err := pm.codec.Encode(records)
	if err != nil {
		return m.Preset{}, fmt.Errorf("encode preset: %w", err)
	}

	preset := m.Preset{Name: presetName, Blob: blob}
	graph.Presets().Append(preset)

	return preset, nil
}

// collectRecords resolves the live value at every entry of a keying set.
// Stale owners and unresolvable paths are skipped per entry.
func collectRecords(graph adapter.SceneGraph, ks *m.KeyingSet) []m.Record {
	records := make([]m.Record, 0, ks.Len())

	for _, entry := range ks.Entries {
		if !ownerAlive(graph, entry) {
			slog.Warn("skipping stale entry during capture", "set", ks.Name, "material", entry.OwnerName(), "path", entry.Path)
			continue
		}

		var (
			val m.Value
			err error
		)

		switch entry.Kind {
		case m.EntryNetwork:
			if entry.Owner.Network == nil {
				continue
			}

			val, err = entry.Owner.Network.ResolvePath(entry.NetworkPath())

		case m.EntryMaterial:
			val, err = entry.Owner.ResolvePath(entry.Path)
		}

		if err != nil {
			slog.Warn("skipping unresolvable entry during capture", "material", entry.OwnerName(), "path", entry.Path, "error", err)
			continue
		}

		records = append(records, m.Record{
			Material: entry.Owner.Name,
			Path:     entry.Path,
			Value:    val,
		})
	}

	return records
}

func (pm *presetManager) Restore(ctx context.Context, graph adapter.SceneGraph, index int) (m.RestoreReport, bool) {
	if err := ctx.Err(); err != nil {
		return m.RestoreReport{}, false
	}

	preset, ok := graph.Presets().Get(index)
	if !ok {
		return m.RestoreReport{}, false
	}

	records, err := pm.codec.Decode(preset.Blob)
	if err != nil {
		slog.Error("failed to decode preset", "preset", preset.Name, "error", err)
		return m.RestoreReport{Preset: preset.Name}, false
	}

	frame := graph.Frame()
	report := m.RestoreReport{Preset: preset.Name}

	for _, rec := range records {
		if reason, ok := restoreRecord(graph, rec, frame); !ok {
			report.Skips = append(report.Skips, m.Skip{Record: rec, Reason: reason})
			continue
		}

		report.Committed++
	}

	return report, true
}

// restoreRecord writes one captured record back. Socket values are written
// onto the socket and keyed; anything else is a best-effort key insert on
// the material itself.
func restoreRecord(graph adapter.SceneGraph, rec m.Record, frame float64) (m.SkipReason, bool) {
	mat, ok := graph.Material(rec.Material)
	if !ok {
		return m.SkipUnknownMaterial, false
	}

	if m.IsSocketValuePath(rec.Path) {
		nt := mat.Network
		if nt == nil {
			return m.SkipUnknownSocket, false
		}

		base := m.SocketBasePath(rec.Path)

		sock, ok := nt.Socket(base)
		if !ok {
			return m.SkipUnknownSocket, false
		}

		sock.Value = rec.Value

		if err := nt.InsertKey(base+m.SocketValueSuffix, 0, frame); err != nil {
			return m.SkipUnsupportedPath, false
		}

		return "", true
	}

	if err := mat.InsertKey(rec.Path, 0, frame); err != nil {
		return m.SkipUnsupportedPath, false
	}

	return "", true
}

func (pm *presetManager) Remove(ctx context.Context, graph adapter.SceneGraph, index int) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	return graph.Presets().Remove(index)
}

func (pm *presetManager) BatchCollect(ctx context.Context, graph adapter.SceneGraph) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0

	for _, ks := range graph.KeyingSets() {
		records := collectRecords(graph, ks)

		blob, err := pm.codec.Encode(records)
		if err != nil {
			return count, fmt.Errorf("encode preset for set %q: %w", ks.Name, err)
		}

		graph.Presets().Append(m.Preset{Name: ks.Name + PresetSuffix, Blob: blob})

		count++
	}

	return count, nil
}
