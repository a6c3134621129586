package domain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/adapter"
	"shadekey.dev/pkg/shadekey/internal/controller"
	m "shadekey.dev/pkg/shadekey/internal/model"
)

const workflowFixture = `frame: 12
objects:
  - name: head
    slots: [skin]
materials:
  - name: skin
    network:
      sockets:
        base: 0.8
        rough: [0.1, 0.2, 0.3]
      curves:
        - path: base.value
          keys:
            - frame: 1
              value: 0.5
selection:
  objects: [head]
`

func newTestWorkflow(t *testing.T) (Workflow, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	codec := adapter.NewYAMLPresetCodec()

	wf := NewWorkflow(
		adapter.NewYAMLSceneFS(),
		controller.NewSimpleUI(cmd),
		NewKeyer(),
		NewPresetManager(codec),
	)

	return wf, out
}

func writeScene(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return m.Path(path)
}

func TestWorkflowExtractAndApply(t *testing.T) {
	wf, out := newTestWorkflow(t)
	ctx := context.Background()
	scenePath := writeScene(t, workflowFixture)

	err := wf.Extract(ctx, ExtractArgs{Scene: scenePath, Set: "look"})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if !strings.Contains(out.String(), `Keying set "look" has 1 paths`) {
		t.Errorf("unexpected extract output: %s", out.String())
	}

	err = wf.Apply(ctx, ApplyArgs{Scene: scenePath, Set: "look"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	scene, err := adapter.NewYAMLSceneFS().Load(scenePath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	skin, _ := scene.Material("skin")

	curve := skin.Network.Timeline.Curve("base.value", 0)
	if curve == nil {
		t.Fatal("base curve missing after apply")
	}

	last := curve.Keys[len(curve.Keys)-1]
	if last.Frame != 12 || !last.Value.Equal(m.Number(0.8)) {
		t.Errorf("expected key (12, 0.8), got (%g, %s)", last.Frame, last.Value)
	}
}

func TestWorkflowApplyUnknownSet(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	scenePath := writeScene(t, workflowFixture)

	err := wf.Apply(context.Background(), ApplyArgs{Scene: scenePath, Set: "nope"})
	if err == nil {
		t.Error("expected an error when no keys are inserted")
	}
}

func TestWorkflowExtractUnknownMaterial(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	scenePath := writeScene(t, workflowFixture)

	err := wf.Extract(context.Background(), ExtractArgs{
		Scene:     scenePath,
		Set:       "look",
		Materials: []string{"nope"},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown material") {
		t.Errorf("expected unknown material error, got %v", err)
	}
}

func TestWorkflowSaveAndRestore(t *testing.T) {
	wf, out := newTestWorkflow(t)
	ctx := context.Background()
	scenePath := writeScene(t, workflowFixture)

	if err := wf.Extract(ctx, ExtractArgs{Scene: scenePath, Set: "look"}); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	// Empty Set falls back to the active keying set from the extract above.
	if err := wf.SavePreset(ctx, SaveArgs{Scene: scenePath, Preset: "bright"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.Contains(out.String(), `Preset "bright" saved at index 0`) {
		t.Errorf("unexpected save output: %s", out.String())
	}

	if err := wf.RestorePreset(ctx, RestoreArgs{Scene: scenePath, Index: 0}); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if !strings.Contains(out.String(), `Applied preset "bright": 1 keyed, 0 skipped`) {
		t.Errorf("unexpected restore output: %s", out.String())
	}

	scene, err := adapter.NewYAMLSceneFS().Load(scenePath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if scene.Presets.Len() != 1 || scene.Presets.Active() != 0 {
		t.Errorf("preset store not persisted: len %d active %d",
			scene.Presets.Len(), scene.Presets.Active())
	}
}

func TestWorkflowRemovePreset(t *testing.T) {
	wf, _ := newTestWorkflow(t)
	ctx := context.Background()
	scenePath := writeScene(t, workflowFixture)

	if err := wf.Extract(ctx, ExtractArgs{Scene: scenePath, Set: "look"}); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if err := wf.SavePreset(ctx, SaveArgs{Scene: scenePath, Preset: "bright"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := wf.RemovePreset(ctx, RemoveArgs{Scene: scenePath, Index: 0}); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if err := wf.RemovePreset(ctx, RemoveArgs{Scene: scenePath, Index: 0}); err == nil {
		t.Error("expected an error removing from an empty store")
	}
}

func TestWorkflowBatchCollect(t *testing.T) {
	wf, out := newTestWorkflow(t)
	ctx := context.Background()

	const batchFixture = workflowFixture + `keying_sets:
  - name: look
    entries:
      - material: skin
        path: network.base.value
`

	first := writeScene(t, batchFixture)
	second := writeScene(t, batchFixture)

	err := wf.BatchCollect(ctx, BatchArgs{Scenes: []m.Path{first, second}, Threads: 2})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	if !strings.Contains(out.String(), "Collected 2 preset(s) across 2 scene(s)") {
		t.Errorf("unexpected batch output: %s", out.String())
	}

	for _, path := range []m.Path{first, second} {
		scene, err := adapter.NewYAMLSceneFS().Load(path)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}

		preset, ok := scene.Presets.Get(0)
		if !ok || preset.Name != "look"+PresetSuffix {
			t.Errorf("%s: expected one derived preset, got %+v", path, scene.Presets.Items)
		}
	}
}

func TestWorkflowBatchCollectMissingScene(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.BatchCollect(context.Background(), BatchArgs{
		Scenes: []m.Path{"does-not-exist.yaml"},
	})
	if err == nil {
		t.Error("expected an error for a missing scene file")
	}
}

func TestWorkflowListAndDiff(t *testing.T) {
	wf, out := newTestWorkflow(t)
	ctx := context.Background()
	scenePath := writeScene(t, workflowFixture)

	if err := wf.Extract(ctx, ExtractArgs{Scene: scenePath, Set: "look"}); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if err := wf.SavePreset(ctx, SaveArgs{Scene: scenePath, Preset: "before"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := wf.SavePreset(ctx, SaveArgs{Scene: scenePath, Preset: "after"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out.Reset()

	if err := wf.List(ctx, ListArgs{Scene: scenePath, Presets: true}); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"before", "after", "Total 2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()

	if err := wf.DiffPresets(ctx, DiffArgs{Scene: scenePath, A: 0, B: 1}); err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	// Both captures see identical socket values, so the diff is empty.
	if !strings.Contains(out.String(), "Presets are identical") {
		t.Errorf("unexpected diff output: %s", out.String())
	}

	if err := wf.DiffPresets(ctx, DiffArgs{Scene: scenePath, A: 0, B: 9}); err == nil {
		t.Error("expected an error for an out-of-range index")
	}
}
