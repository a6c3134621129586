// Package domain contains the core keying-set and preset logic: path
// discovery, replay, value capture and restore.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shadekey.dev/pkg/shadekey/internal/adapter"
	m "shadekey.dev/pkg/shadekey/internal/model"
	"shadekey.dev/pkg/shadekey/pkg"
)

// Keyer defines the discovery and replay operations over keying sets.
type Keyer interface {
	// Extract rebuilds the named keying set from the candidate materials and
	// returns the number of entries added. Zero is a valid, unproductive
	// result, not an error.
	Extract(ctx context.Context, graph adapter.SceneGraph, setName string, explicit []*m.Material) (int, error)

	// Apply walks the named keying set and commits a keyframe for every
	// entry at the current frame. A missing set yields 0 with no error.
	Apply(ctx context.Context, graph adapter.SceneGraph, setName string) (int, error)
}

type keyer struct{}

// NewKeyer creates a new Keyer instance.
func NewKeyer() Keyer {
	return &keyer{}
}

// entryKey is the dedup key for path discovery: owner identity by name, full
// path string and curve index.
type entryKey struct {
	Owner string
	Path  string
	Index int
}

func (k *keyer) Extract(ctx context.Context, graph adapter.SceneGraph, setName string, explicit []*m.Material) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if strings.TrimSpace(setName) == "" {
		return 0, ErrMissingSetName
	}

	if graph == nil {
		return 0, fmt.Errorf("missing scene graph")
	}

	candidates := candidateMaterials(graph, explicit)

	ks := graph.EnsureKeyingSet(setName)
	ks.Clear()
	graph.SetActiveKeyingSet(setName)

	seen := pkg.NewOrderedSet[entryKey]()
	added := 0

	for _, mat := range candidates {
		nt := mat.Network
		if nt == nil || nt.Timeline == nil {
			continue
		}

		for _, curve := range nt.Timeline.Curves {
			if !curve.Animated() {
				continue
			}

			full := m.NetworkPrefix + curve.Path
			if !seen.Add(entryKey{Owner: mat.Name, Path: full, Index: curve.Index}) {
				continue
			}

			ks.Add(m.Entry{
				Owner: mat,
				Path:  full,
				Index: curve.Index,
				Kind:  m.EntryNetwork,
			})

			added++
		}
	}

	slog.Debug("extracted keying set", "set", setName, "entries", added)

	return added, nil
}

// candidateMaterials resolves the discovery candidates: the explicit list if
// given, otherwise the selected materials, otherwise every material bound
// through the selected objects' slots. The result is deduplicated by name,
// first occurrence wins.
func candidateMaterials(graph adapter.SceneGraph, explicit []*m.Material) []*m.Material {
	mats := explicit
	if len(mats) == 0 {
		mats = graph.SelectedMaterials()
	}

	if len(mats) == 0 {
		for _, ob := range graph.SelectedObjects() {
			for _, slot := range ob.Slots {
				if slot.Material != nil {
					mats = append(mats, slot.Material)
				}
			}
		}
	}

	seen := pkg.NewOrderedSet[string]()
	out := make([]*m.Material, 0, len(mats))

	for _, mat := range mats {
		if seen.Add(mat.Name) {
			out = append(out, mat)
		}
	}

	return out
}

func (k *keyer) Apply(ctx context.Context, graph adapter.SceneGraph, setName string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if graph == nil {
		return 0, fmt.Errorf("missing scene graph")
	}

	ks, ok := graph.KeyingSet(setName)
	if !ok {
		return 0, nil
	}

	// Snapshot the frame cursor once so the whole pass is stamped at a
	// single time.
	frame := graph.Frame()
	count := 0

	for _, entry := range ks.Entries {
		if !ownerAlive(graph, entry) {
			slog.Warn("skipping stale keying set entry", "set", setName, "material", entry.OwnerName(), "path", entry.Path)
			continue
		}

		var err error

		switch entry.Kind {
		case m.EntryNetwork:
			nt := entry.Owner.Network
			if nt == nil {
				slog.Warn("skipping entry without network", "material", entry.OwnerName(), "path", entry.Path)
				continue
			}

			err = nt.InsertKey(entry.NetworkPath(), entry.Index, frame)

		case m.EntryMaterial:
			err = entry.Owner.InsertKey(entry.Path, entry.Index, frame)
		}

		if err != nil {
			slog.Warn("failed to key entry", "material", entry.OwnerName(), "path", entry.Path, "error", err)
			continue
		}

		count++
	}

	return count, nil
}

// ownerAlive reports whether the entry's owner still exists in the scene.
// Entries whose owner was deleted after extraction are skipped, never
// dereferenced.
func ownerAlive(graph adapter.SceneGraph, entry m.Entry) bool {
	if entry.Owner == nil {
		return false
	}

	current, ok := graph.Material(entry.Owner.Name)

	return ok && current == entry.Owner
}
