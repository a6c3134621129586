package domain

import (
	"context"
	"errors"
	"testing"

	"shadekey.dev/pkg/shadekey/internal/adapter"
	m "shadekey.dev/pkg/shadekey/internal/model"
)

// keyingScene builds a scene with one animated material shared by two
// objects and one material without a network.
func keyingScene() *m.Scene {
	skin := &m.Material{
		Name: "skin",
		Network: &m.Network{
			Sockets: map[string]*m.Socket{
				"base":  {Value: m.Number(0.8)},
				"rough": {Value: m.Number(0.25)},
				"flat":  {Value: m.Number(1)},
			},
			Timeline: &m.Timeline{Curves: []*m.Curve{
				{Path: "base.value", Index: 0, Keys: []m.Keyframe{{Frame: 1, Value: m.Number(0.5)}}},
				{Path: "rough.value", Index: 0, Keys: []m.Keyframe{{Frame: 1, Value: m.Number(0.2)}}},
				{Path: "flat.value", Index: 0},
			}},
		},
	}

	cloth := &m.Material{Name: "cloth"}

	return &m.Scene{
		Frame:     10,
		Materials: []*m.Material{skin, cloth},
		Objects: []*m.Object{
			{Name: "head", Slots: []m.Slot{{Material: skin}}},
			{Name: "body", Slots: []m.Slot{{Material: skin}, {Material: cloth}}},
		},
		SelectedObjects: []string{"head", "body"},
	}
}

func TestExtract(t *testing.T) {
	k := NewKeyer()

	t.Run("builds entries from selected objects", func(t *testing.T) {
		graph := adapter.NewMemoryScene(keyingScene())

		count, err := k.Extract(context.Background(), graph, "look", nil)
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}

		// skin is shared by both objects and contributes two animated
		// curves; the unanimated one is ignored.
		if count != 2 {
			t.Fatalf("expected 2 entries, got %d", count)
		}

		ks, ok := graph.KeyingSet("look")
		if !ok {
			t.Fatal("keying set was not created")
		}

		want := []string{"network.base.value", "network.rough.value"}
		for i, entry := range ks.Entries {
			if entry.Path != want[i] {
				t.Errorf("entry %d: expected path %q, got %q", i, want[i], entry.Path)
			}

			if entry.Kind != m.EntryNetwork {
				t.Errorf("entry %d: expected network kind, got %v", i, entry.Kind)
			}

			if entry.OwnerName() != "skin" {
				t.Errorf("entry %d: expected owner skin, got %q", i, entry.OwnerName())
			}
		}

		if graph.ActiveKeyingSet() != "look" {
			t.Errorf("expected look to become active, got %q", graph.ActiveKeyingSet())
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		graph := adapter.NewMemoryScene(keyingScene())
		ctx := context.Background()

		first, err := k.Extract(ctx, graph, "look", nil)
		if err != nil {
			t.Fatalf("first extract failed: %v", err)
		}

		second, err := k.Extract(ctx, graph, "look", nil)
		if err != nil {
			t.Fatalf("second extract failed: %v", err)
		}

		if first != second {
			t.Errorf("expected identical counts, got %d then %d", first, second)
		}

		ks, _ := graph.KeyingSet("look")
		if ks.Len() != second {
			t.Errorf("expected %d entries after rebuild, got %d", second, ks.Len())
		}
	})

	t.Run("prefers explicit materials over selection", func(t *testing.T) {
		scene := keyingScene()
		graph := adapter.NewMemoryScene(scene)

		cloth, _ := scene.Material("cloth")

		count, err := k.Extract(context.Background(), graph, "look", []*m.Material{cloth})
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}

		if count != 0 {
			t.Errorf("cloth has no network, expected 0 entries, got %d", count)
		}
	})

	t.Run("rejects empty set name", func(t *testing.T) {
		graph := adapter.NewMemoryScene(keyingScene())

		_, err := k.Extract(context.Background(), graph, "  ", nil)
		if !errors.Is(err, ErrMissingSetName) {
			t.Errorf("expected ErrMissingSetName, got %v", err)
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		graph := adapter.NewMemoryScene(keyingScene())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := k.Extract(ctx, graph, "look", nil); err == nil {
			t.Error("expected context error")
		}
	})
}

func TestApply(t *testing.T) {
	k := NewKeyer()

	t.Run("missing set is a no-op", func(t *testing.T) {
		graph := adapter.NewMemoryScene(keyingScene())

		count, err := k.Apply(context.Background(), graph, "nope")
		if err != nil {
			t.Fatalf("apply failed: %v", err)
		}

		if count != 0 {
			t.Errorf("expected 0 keys, got %d", count)
		}
	})

	t.Run("commits every entry at the current frame", func(t *testing.T) {
		scene := keyingScene()
		graph := adapter.NewMemoryScene(scene)
		ctx := context.Background()

		if _, err := k.Extract(ctx, graph, "look", nil); err != nil {
			t.Fatalf("extract failed: %v", err)
		}

		scene.Frame = 42

		count, err := k.Apply(ctx, graph, "look")
		if err != nil {
			t.Fatalf("apply failed: %v", err)
		}

		if count != 2 {
			t.Fatalf("expected 2 keys, got %d", count)
		}

		skin, _ := scene.Material("skin")

		base := skin.Network.Timeline.Curve("base.value", 0)
		if base == nil {
			t.Fatal("base curve missing")
		}

		last := base.Keys[len(base.Keys)-1]
		if last.Frame != 42 {
			t.Errorf("expected key at frame 42, got %g", last.Frame)
		}

		if !last.Value.Equal(m.Number(0.8)) {
			t.Errorf("expected the socket's current value, got %s", last.Value)
		}
	})

	t.Run("skips entries whose owner left the scene", func(t *testing.T) {
		scene := keyingScene()
		graph := adapter.NewMemoryScene(scene)
		ctx := context.Background()

		if _, err := k.Extract(ctx, graph, "look", nil); err != nil {
			t.Fatalf("extract failed: %v", err)
		}

		// Remove skin from the scene; its entries turn stale.
		scene.Materials = []*m.Material{scene.Materials[1]}

		count, err := k.Apply(ctx, graph, "look")
		if err != nil {
			t.Fatalf("apply failed: %v", err)
		}

		if count != 0 {
			t.Errorf("expected all entries skipped, got %d keys", count)
		}
	})
}
