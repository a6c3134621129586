package model

import "testing"

func TestPresetStoreRemove(t *testing.T) {
	t.Run("reclamps active index to min(index, size-1)", func(t *testing.T) {
		var store PresetStore
		store.Append(Preset{Name: "a"})
		store.Append(Preset{Name: "b"})
		store.Append(Preset{Name: "c"})

		if !store.Remove(2) {
			t.Fatal("expected removal to succeed")
		}

		if store.Active() != 1 {
			t.Errorf("expected active index 1, got %d", store.Active())
		}
	})

	t.Run("active index is -1 once empty", func(t *testing.T) {
		var store PresetStore
		store.Append(Preset{Name: "only"})

		if !store.Remove(0) {
			t.Fatal("expected removal to succeed")
		}

		if store.Active() != -1 {
			t.Errorf("expected active index -1, got %d", store.Active())
		}
	})

	t.Run("out-of-range removal has no effect", func(t *testing.T) {
		var store PresetStore
		store.Append(Preset{Name: "a"})

		if store.Remove(1) || store.Remove(-1) {
			t.Error("expected out-of-range removal to fail")
		}

		if store.Len() != 1 {
			t.Errorf("store size changed: %d", store.Len())
		}
	})
}

func TestPresetStoreAppend(t *testing.T) {
	var store PresetStore

	if store.Active() != -1 {
		t.Errorf("empty store must report active -1, got %d", store.Active())
	}

	if idx := store.Append(Preset{Name: "a"}); idx != 0 {
		t.Errorf("expected active index 0, got %d", idx)
	}

	if idx := store.Append(Preset{Name: "b"}); idx != 1 {
		t.Errorf("expected active index 1, got %d", idx)
	}
}
