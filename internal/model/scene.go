// Package model defines the data structures for shader keying sets and
// presets: the scene graph the tool operates on, the keying sets extracted
// from it, and the preset store that snapshots parameter values.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// Path represents a file system path to a scene document.
type Path string

// Keyframe is one committed (frame, value) sample on a curve.
type Keyframe struct {
	Frame float64
	Value Value
}

// Curve is a time-indexed value track addressed by a (path, index) pair
// relative to its owning target.
type Curve struct {
	Path  string
	Index int
	Keys  []Keyframe
}

// Animated reports whether the curve carries at least one keyframe. Curves
// without keyframes are ignored by discovery.
func (c *Curve) Animated() bool {
	return len(c.Keys) > 0
}

// Insert commits a keyframe at frame, replacing an existing sample on the
// same frame. Keys stay ordered by frame.
func (c *Curve) Insert(frame float64, v Value) {
	for i := range c.Keys {
		if c.Keys[i].Frame == frame {
			c.Keys[i].Value = v
			return
		}
	}

	c.Keys = append(c.Keys, Keyframe{Frame: frame, Value: v})

	sort.Slice(c.Keys, func(i, j int) bool {
		return c.Keys[i].Frame < c.Keys[j].Frame
	})
}

// Timeline is an ordered collection of curves owned by one keyable target.
type Timeline struct {
	Curves []*Curve
}

// Curve returns the curve addressed by (path, index), or nil.
func (t *Timeline) Curve(path string, index int) *Curve {
	for _, c := range t.Curves {
		if c.Path == path && c.Index == index {
			return c
		}
	}

	return nil
}

// Ensure returns the curve addressed by (path, index), creating it if needed.
func (t *Timeline) Ensure(path string, index int) *Curve {
	if c := t.Curve(path, index); c != nil {
		return c
	}

	c := &Curve{Path: path, Index: index}
	t.Curves = append(t.Curves, c)

	return c
}

// Socket is a shader parameter slot inside a network. Its current value is
// what capture resolves and restore writes back.
type Socket struct {
	Value Value
}

// Network is the animatable shader component bound to a material. Sockets are
// keyed by their base path within the network (without the value suffix).
type Network struct {
	Sockets  map[string]*Socket
	Timeline *Timeline
}

// Socket returns the socket at the given base path.
func (n *Network) Socket(base string) (*Socket, bool) {
	s, ok := n.Sockets[base]
	return s, ok
}

// ResolvePath resolves the live value at a network-relative path. Only the
// fixed socket value addressing scheme is supported.
func (n *Network) ResolvePath(path string) (Value, error) {
	base, ok := strings.CutSuffix(path, SocketValueSuffix)
	if !ok {
		return Value{}, fmt.Errorf("cannot resolve network path %q", path)
	}

	sock, ok := n.Socket(base)
	if !ok {
		return Value{}, fmt.Errorf("no socket at %q", base)
	}

	return sock.Value, nil
}

// InsertKey resolves the current value at path and commits it as a keyframe
// at the given frame. The timeline is created on demand.
func (n *Network) InsertKey(path string, index int, frame float64) error {
	val, err := n.ResolvePath(path)
	if err != nil {
		return err
	}

	if n.Timeline == nil {
		n.Timeline = &Timeline{}
	}

	n.Timeline.Ensure(path, index).Insert(frame, val)

	return nil
}

// Material is a source object in the addressing scheme: it owns at most one
// network and may carry directly animatable properties of its own.
type Material struct {
	Name     string
	Network  *Network
	Props    map[string]Value
	Timeline *Timeline
}

// ResolvePath resolves a path relative to the material itself.
func (m *Material) ResolvePath(path string) (Value, error) {
	val, ok := m.Props[path]
	if !ok {
		return Value{}, fmt.Errorf("material %q: cannot resolve path %q", m.Name, path)
	}

	return val, nil
}

// InsertKey commits the current value at path onto the material's own
// timeline. Paths that do not resolve are rejected so callers can skip them.
func (m *Material) InsertKey(path string, index int, frame float64) error {
	val, err := m.ResolvePath(path)
	if err != nil {
		return err
	}

	if m.Timeline == nil {
		m.Timeline = &Timeline{}
	}

	m.Timeline.Ensure(path, index).Insert(frame, val)

	return nil
}

// Slot binds an object to one material.
type Slot struct {
	Material *Material
}

// Object is a scene element carrying material slots.
type Object struct {
	Name  string
	Slots []Slot
}

// Scene is the root document: objects, materials, selection state, the frame
// cursor, the named keying sets and the preset store. Keying sets and the
// preset store live and die with the scene.
type Scene struct {
	Frame             float64
	Objects           []*Object
	Materials         []*Material
	SelectedObjects   []string
	SelectedMaterials []string
	Sets              []*KeyingSet
	ActiveSet         string
	Presets           PresetStore
}

// Material looks up a material by name.
func (s *Scene) Material(name string) (*Material, bool) {
	for _, m := range s.Materials {
		if m.Name == name {
			return m, true
		}
	}

	return nil, false
}

// Object looks up an object by name.
func (s *Scene) Object(name string) (*Object, bool) {
	for _, o := range s.Objects {
		if o.Name == name {
			return o, true
		}
	}

	return nil, false
}

// KeyingSet looks up a keying set by name.
func (s *Scene) KeyingSet(name string) (*KeyingSet, bool) {
	for _, ks := range s.Sets {
		if ks.Name == name {
			return ks, true
		}
	}

	return nil, false
}
