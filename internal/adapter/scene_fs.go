package adapter

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	m "shadekey.dev/pkg/shadekey/internal/model"
)

// SceneFS abstracts scene document persistence so the workflow can be tested
// without touching the disk.
type SceneFS interface {
	// Load reads and binds a scene document.
	Load(path m.Path) (*m.Scene, error)

	// Save writes a scene document back to disk.
	Save(path m.Path, scene *m.Scene) error
}

// sceneDoc is the on-disk YAML shape of a scene.
type sceneDoc struct {
	Frame        float64       `yaml:"frame"`
	Objects      []objectDoc   `yaml:"objects,omitempty"`
	Materials    []materialDoc `yaml:"materials,omitempty"`
	Selection    selectionDoc  `yaml:"selection,omitempty"`
	KeyingSets   []setDoc      `yaml:"keying_sets,omitempty"`
	ActiveSet    string        `yaml:"active_set,omitempty"`
	Presets      []presetDoc   `yaml:"presets,omitempty"`
	ActivePreset int           `yaml:"active_preset"`
}

type selectionDoc struct {
	Objects   []string `yaml:"objects,omitempty"`
	Materials []string `yaml:"materials,omitempty"`
}

type objectDoc struct {
	Name  string   `yaml:"name"`
	Slots []string `yaml:"slots,omitempty"`
}

type materialDoc struct {
	Name    string             `yaml:"name"`
	Props   map[string]m.Value `yaml:"props,omitempty"`
	Curves  []curveDoc         `yaml:"curves,omitempty"`
	Network *networkDoc        `yaml:"network,omitempty"`
}

type networkDoc struct {
	Sockets map[string]m.Value `yaml:"sockets,omitempty"`
	Curves  []curveDoc         `yaml:"curves,omitempty"`
}

type curveDoc struct {
	Path  string   `yaml:"path"`
	Index int      `yaml:"index,omitempty"`
	Keys  []keyDoc `yaml:"keys,omitempty"`
}

type keyDoc struct {
	Frame float64 `yaml:"frame"`
	Value m.Value `yaml:"value"`
}

type setDoc struct {
	Name    string     `yaml:"name"`
	Entries []entryDoc `yaml:"entries,omitempty"`
}

type entryDoc struct {
	Material string `yaml:"material"`
	Path     string `yaml:"path"`
	Index    int    `yaml:"index,omitempty"`
}

type presetDoc struct {
	Name   string `yaml:"name"`
	Values string `yaml:"values"`
}

// YAMLSceneFS is the concrete SceneFS backed by YAML files on disk.
type YAMLSceneFS struct{}

// NewYAMLSceneFS constructs a YAMLSceneFS.
func NewYAMLSceneFS() *YAMLSceneFS {
	return &YAMLSceneFS{}
}

// Load reads a scene document and rebinds references: slots and keying-set
// entries are bound to materials by name. Entries whose material no longer
// exists keep a nil owner and are treated as stale by the domain.
func (fs *YAMLSceneFS) Load(path m.Path) (*m.Scene, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	var doc sceneDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	return bindScene(&doc), nil
}

// Save writes the scene document, replacing the file contents.
func (fs *YAMLSceneFS) Save(path m.Path, scene *m.Scene) error {
	content, err := yaml.Marshal(buildDoc(scene))
	if err != nil {
		return fmt.Errorf("encode scene %s: %w", path, err)
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}

	return nil
}

func bindScene(doc *sceneDoc) *m.Scene {
	scene := &m.Scene{
		Frame:             doc.Frame,
		SelectedObjects:   doc.Selection.Objects,
		SelectedMaterials: doc.Selection.Materials,
		ActiveSet:         doc.ActiveSet,
	}

	byName := make(map[string]*m.Material, len(doc.Materials))

	for _, md := range doc.Materials {
		mat := &m.Material{
			Name:     md.Name,
			Props:    md.Props,
			Timeline: bindTimeline(md.Curves),
		}

		if md.Network != nil {
			sockets := make(map[string]*m.Socket, len(md.Network.Sockets))
			for base, val := range md.Network.Sockets {
				sockets[base] = &m.Socket{Value: val}
			}

			mat.Network = &m.Network{
				Sockets:  sockets,
				Timeline: bindTimeline(md.Network.Curves),
			}
		}

		scene.Materials = append(scene.Materials, mat)
		byName[mat.Name] = mat
	}

	for _, od := range doc.Objects {
		ob := &m.Object{Name: od.Name}
		for _, slot := range od.Slots {
			ob.Slots = append(ob.Slots, m.Slot{Material: byName[slot]})
		}

		scene.Objects = append(scene.Objects, ob)
	}

	for _, sd := range doc.KeyingSets {
		ks := &m.KeyingSet{Name: sd.Name}
		for _, ed := range sd.Entries {
			owner := byName[ed.Material]
			if owner == nil {
				slog.Warn("keying set entry references unknown material",
					"set", sd.Name, "material", ed.Material)
			}

			ks.Add(m.Entry{
				Owner: owner,
				Path:  ed.Path,
				Index: ed.Index,
				Kind:  m.ClassifyPath(ed.Path),
			})
		}

		scene.Sets = append(scene.Sets, ks)
	}

	for _, pd := range doc.Presets {
		scene.Presets.Items = append(scene.Presets.Items, m.Preset{
			Name: pd.Name,
			Blob: pd.Values,
		})
	}

	scene.Presets.ActiveIndex = doc.ActivePreset
	if scene.Presets.Len() == 0 {
		scene.Presets.ActiveIndex = -1
	}

	return scene
}

func bindTimeline(curves []curveDoc) *m.Timeline {
	if len(curves) == 0 {
		return nil
	}

	tl := &m.Timeline{}

	for _, cd := range curves {
		c := tl.Ensure(cd.Path, cd.Index)
		for _, kd := range cd.Keys {
			c.Insert(kd.Frame, kd.Value)
		}
	}

	return tl
}

func buildDoc(scene *m.Scene) *sceneDoc {
	doc := &sceneDoc{
		Frame: scene.Frame,
		Selection: selectionDoc{
			Objects:   scene.SelectedObjects,
			Materials: scene.SelectedMaterials,
		},
		ActiveSet:    scene.ActiveSet,
		ActivePreset: scene.Presets.Active(),
	}

	for _, mat := range scene.Materials {
		md := materialDoc{
			Name:   mat.Name,
			Props:  mat.Props,
			Curves: buildCurves(mat.Timeline),
		}

		if mat.Network != nil {
			sockets := make(map[string]m.Value, len(mat.Network.Sockets))
			for base, sock := range mat.Network.Sockets {
				sockets[base] = sock.Value
			}

			md.Network = &networkDoc{
				Sockets: sockets,
				Curves:  buildCurves(mat.Network.Timeline),
			}
		}

		doc.Materials = append(doc.Materials, md)
	}

	for _, ob := range scene.Objects {
		od := objectDoc{Name: ob.Name}
		for _, slot := range ob.Slots {
			if slot.Material != nil {
				od.Slots = append(od.Slots, slot.Material.Name)
			}
		}

		doc.Objects = append(doc.Objects, od)
	}

	for _, ks := range scene.Sets {
		sd := setDoc{Name: ks.Name}
		for _, e := range ks.Entries {
			sd.Entries = append(sd.Entries, entryDoc{
				Material: e.OwnerName(),
				Path:     e.Path,
				Index:    e.Index,
			})
		}

		doc.KeyingSets = append(doc.KeyingSets, sd)
	}

	for _, p := range scene.Presets.Items {
		doc.Presets = append(doc.Presets, presetDoc{Name: p.Name, Values: p.Blob})
	}

	return doc
}

func buildCurves(tl *m.Timeline) []curveDoc {
	if tl == nil {
		return nil
	}

	curves := make([]curveDoc, 0, len(tl.Curves))

	for _, c := range tl.Curves {
		cd := curveDoc{Path: c.Path, Index: c.Index}
		for _, k := range c.Keys {
			cd.Keys = append(cd.Keys, keyDoc{Frame: k.Frame, Value: k.Value})
		}

		curves = append(curves, cd)
	}

	return curves
}
