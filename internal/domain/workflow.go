package domain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"shadekey.dev/pkg/shadekey/internal/adapter"
	"shadekey.dev/pkg/shadekey/internal/controller"
	m "shadekey.dev/pkg/shadekey/internal/model"
)

// ExtractArgs contains the arguments for rebuilding a keying set.
type ExtractArgs struct {
	Scene     m.Path
	Set       string
	Materials []string
}

// ApplyArgs contains the arguments for replaying a keying set.
type ApplyArgs struct {
	Scene m.Path
	Set   string
}

// SaveArgs contains the arguments for capturing a preset. An empty Set falls
// back to the scene's active keying set.
type SaveArgs struct {
	Scene  m.Path
	Set    string
	Preset string
}

// RestoreArgs contains the arguments for restoring a preset by index.
type RestoreArgs struct {
	Scene m.Path
	Index int
}

// RemoveArgs contains the arguments for removing a preset by index.
type RemoveArgs struct {
	Scene m.Path
	Index int
}

// BatchArgs contains the arguments for batch collection across scene files.
// Each scene is processed on its own; Threads caps how many run at once.
type BatchArgs struct {
	Scenes  []m.Path
	Threads uint
}

// ListArgs contains the arguments for listing keying sets or presets.
type ListArgs struct {
	Scene   m.Path
	Presets bool
}

// ViewArgs contains the arguments for the interactive preset browser.
type ViewArgs struct {
	Scene m.Path
}

// DiffArgs contains the arguments for diffing two presets by index.
type DiffArgs struct {
	Scene m.Path
	A     int
	B     int
}

// Workflow ties the core operations to scene documents on disk: each
// operation loads the scene, runs against it to completion, persists the
// result and reports through the UI.
type Workflow interface {
	Extract(ctx context.Context, args ExtractArgs) error
	Apply(ctx context.Context, args ApplyArgs) error
	SavePreset(ctx context.Context, args SaveArgs) error
	RestorePreset(ctx context.Context, args RestoreArgs) error
	RemovePreset(ctx context.Context, args RemoveArgs) error
	BatchCollect(ctx context.Context, args BatchArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	DiffPresets(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.SceneFS

	ui      controller.UI
	keyer   Keyer
	presets PresetManager
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	sceneFS adapter.SceneFS,
	ui controller.UI,
	keyer Keyer,
	presets PresetManager,
) Workflow {
	return &workflow{
		SceneFS: sceneFS,
		ui:      ui,
		keyer:   keyer,
		presets: presets,
	}
}

func (w *workflow) Extract(ctx context.Context, args ExtractArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	explicit, err := resolveMaterials(graph, args.Materials)
	if err != nil {
		return err
	}

	count, err := w.keyer.Extract(ctx, graph, args.Set, explicit)
	if err != nil {
		return err
	}

	if err := w.Save(args.Scene, scene); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}

	w.ui.DisplayExtract(ctx, args.Set, count)

	return nil
}

// resolveMaterials maps explicit material names to live materials. An unknown
// name is a caller error, not a silent skip.
func resolveMaterials(graph adapter.SceneGraph, names []string) ([]*m.Material, error) {
	if len(names) == 0 {
		return nil, nil
	}

	mats := make([]*m.Material, 0, len(names))

	for _, name := range names {
		mat, ok := graph.Material(name)
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}

		mats = append(mats, mat)
	}

	return mats, nil
}

func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	count, err := w.keyer.Apply(ctx, graph, args.Set)
	if err != nil {
		return err
	}

	if count == 0 {
		return fmt.Errorf("no keys inserted from %q", args.Set)
	}

	if err := w.Save(args.Scene, scene); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}

	w.ui.DisplayApply(ctx, args.Set, count)

	return nil
}

func (w *workflow) SavePreset(ctx context.Context, args SaveArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	set := args.Set
	if strings.TrimSpace(set) == "" {
		set = graph.ActiveKeyingSet()
	}

	preset, err := w.presets.SaveCurrent(ctx, graph, set, args.Preset)
	if err != nil {
		return err
	}

	if err := w.Save(args.Scene, scene); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}

	w.ui.DisplaySaved(ctx, preset, graph.Presets().Active())

	return nil
}

func (w *workflow) RestorePreset(ctx context.Context, args RestoreArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	report, ok := w.presets.Restore(ctx, graph, args.Index)
	if !ok {
		return fmt.Errorf("cannot apply preset %d", args.Index)
	}

	if err := w.Save(args.Scene, scene); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}

	w.ui.DisplayRestore(ctx, report)

	return nil
}

func (w *workflow) RemovePreset(ctx context.Context, args RemoveArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	if !w.presets.Remove(ctx, graph, args.Index) {
		return fmt.Errorf("preset index %d out of range", args.Index)
	}

	if err := w.Save(args.Scene, scene); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}

	w.ui.DisplayRemoved(ctx, args.Index, graph.Presets().Active())

	return nil
}

func (w *workflow) BatchCollect(ctx context.Context, args BatchArgs) error {
	var (
		mu    sync.Mutex
		total int
	)

	var group errgroup.Group
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for _, scenePath := range args.Scenes {
		group.Go(func() error {
			count, err := w.collectScene(ctx, scenePath)
			if err != nil {
				return fmt.Errorf("%s: %w", scenePath, err)
			}

			mu.Lock()
			total += count
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	w.ui.DisplayBatch(ctx, len(args.Scenes), total)

	return nil
}

// collectScene runs batch collection for one scene document. The scene itself
// is walked sequentially; only distinct scene files run concurrently.
func (w *workflow) collectScene(ctx context.Context, path m.Path) (int, error) {
	scene, err := w.Load(path)
	if err != nil {
		return 0, fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	count, err := w.presets.BatchCollect(ctx, graph)
	if err != nil {
		return count, err
	}

	if err := w.Save(path, scene); err != nil {
		return count, fmt.Errorf("save scene: %w", err)
	}

	return count, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	if args.Presets {
		return w.ui.DisplayPresets(ctx, graph.Presets())
	}

	return w.ui.DisplayKeyingSets(ctx, graph.KeyingSets(), graph.ActiveKeyingSet())
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)

	return w.ui.BrowsePresets(ctx, graph.Presets())
}

func (w *workflow) DiffPresets(ctx context.Context, args DiffArgs) error {
	scene, err := w.Load(args.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	graph := adapter.NewMemoryScene(scene)
	store := graph.Presets()

	left, ok := store.Get(args.A)
	if !ok {
		return fmt.Errorf("preset index %d out of range", args.A)
	}

	right, ok := store.Get(args.B)
	if !ok {
		return fmt.Errorf("preset index %d out of range", args.B)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(left.Blob),
		B:        difflib.SplitLines(right.Blob),
		FromFile: left.Name,
		ToFile:   right.Name,
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff presets: %w", err)
	}

	w.ui.DisplayDiff(ctx, diff)

	return nil
}
