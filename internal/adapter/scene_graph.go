// Package adapter contains the host-graph and infrastructure adapters for
// shadekey. The domain layer talks to the scene exclusively through the
// interfaces defined here.
package adapter

import (
	m "shadekey.dev/pkg/shadekey/internal/model"
)

// SceneGraph is the host object graph the core operates against: selection
// enumeration, material lookup, keying-set management, the frame cursor and
// the preset store. The domain receives it explicitly on every call instead
// of reaching into ambient scene state.
type SceneGraph interface {
	// Frame returns the current frame cursor. Operations snapshot it once
	// so a whole pass is stamped at a single time.
	Frame() float64

	// SelectedMaterials resolves the currently selected materials.
	SelectedMaterials() []*m.Material

	// SelectedObjects resolves the currently selected objects.
	SelectedObjects() []*m.Object

	// Material looks up a material by name.
	Material(name string) (*m.Material, bool)

	// KeyingSets returns every keying set in scene order.
	KeyingSets() []*m.KeyingSet

	// KeyingSet looks up a keying set by name.
	KeyingSet(name string) (*m.KeyingSet, bool)

	// EnsureKeyingSet returns the named set, creating an empty one if absent.
	EnsureKeyingSet(name string) *m.KeyingSet

	// SetActiveKeyingSet marks the named set as the scene's active one.
	SetActiveKeyingSet(name string)

	// ActiveKeyingSet returns the name of the active set, or "".
	ActiveKeyingSet() string

	// Presets returns the scene's preset store.
	Presets() *m.PresetStore
}

// MemoryScene implements SceneGraph over an in-memory model.Scene.
type MemoryScene struct {
	scene *m.Scene
}

// NewMemoryScene wraps a scene in a SceneGraph.
func NewMemoryScene(scene *m.Scene) *MemoryScene {
	return &MemoryScene{scene: scene}
}

// Scene exposes the underlying scene, mainly so callers can persist it after
// an operation completes.
func (g *MemoryScene) Scene() *m.Scene {
	return g.scene
}

// Frame returns the scene's frame cursor.
func (g *MemoryScene) Frame() float64 {
	return g.scene.Frame
}

// SelectedMaterials resolves the selected material names, skipping names that
// no longer exist.
func (g *MemoryScene) SelectedMaterials() []*m.Material {
	mats := make([]*m.Material, 0, len(g.scene.SelectedMaterials))

	for _, name := range g.scene.SelectedMaterials {
		if mat, ok := g.scene.Material(name); ok {
			mats = append(mats, mat)
		}
	}

	return mats
}

// SelectedObjects resolves the selected object names, skipping names that no
// longer exist.
func (g *MemoryScene) SelectedObjects() []*m.Object {
	obs := make([]*m.Object, 0, len(g.scene.SelectedObjects))

	for _, name := range g.scene.SelectedObjects {
		if ob, ok := g.scene.Object(name); ok {
			obs = append(obs, ob)
		}
	}

	return obs
}

// Material looks up a material by name.
func (g *MemoryScene) Material(name string) (*m.Material, bool) {
	return g.scene.Material(name)
}

// KeyingSets returns the scene's keying sets in order.
func (g *MemoryScene) KeyingSets() []*m.KeyingSet {
	return g.scene.Sets
}

// KeyingSet looks up a keying set by name.
func (g *MemoryScene) KeyingSet(name string) (*m.KeyingSet, bool) {
	return g.scene.KeyingSet(name)
}

// EnsureKeyingSet returns the named set, creating it if needed.
func (g *MemoryScene) EnsureKeyingSet(name string) *m.KeyingSet {
	if ks, ok := g.scene.KeyingSet(name); ok {
		return ks
	}

	ks := &m.KeyingSet{Name: name}
	g.scene.Sets = append(g.scene.Sets, ks)

	return ks
}

// SetActiveKeyingSet marks the named set active.
func (g *MemoryScene) SetActiveKeyingSet(name string) {
	g.scene.ActiveSet = name
}

// ActiveKeyingSet returns the active set name.
func (g *MemoryScene) ActiveKeyingSet() string {
	return g.scene.ActiveSet
}

// Presets returns the scene's preset store.
func (g *MemoryScene) Presets() *m.PresetStore {
	return &g.scene.Presets
}
