package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "shadekey.dev/pkg/shadekey/internal/model"
)

func browserFixture() presetListModel {
	var store m.PresetStore
	store.Append(m.Preset{Name: "bright"})
	store.Append(m.Preset{Name: "dark"})
	store.Append(m.Preset{Name: "night"})

	return newPresetListModel(&store)
}

func TestPresetListModelStartsOnActive(t *testing.T) {
	pm := browserFixture()

	if pm.cursor != 2 {
		t.Errorf("expected cursor on active preset 2, got %d", pm.cursor)
	}
}

func TestPresetListModelNavigation(t *testing.T) {
	pm := browserFixture()

	next, _ := pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	pm = next.(presetListModel)

	if pm.cursor != 0 {
		t.Fatalf("expected cursor 0 after home, got %d", pm.cursor)
	}

	next, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	pm = next.(presetListModel)

	if pm.cursor != 1 {
		t.Errorf("expected cursor 1 after down, got %d", pm.cursor)
	}

	next, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	pm = next.(presetListModel)

	if pm.cursor != 0 {
		t.Errorf("expected cursor 0 after up, got %d", pm.cursor)
	}

	// Cursor clamps at the top.
	next, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	pm = next.(presetListModel)

	if pm.cursor != 0 {
		t.Errorf("cursor escaped the list: %d", pm.cursor)
	}
}

func TestPresetListModelView(t *testing.T) {
	pm := browserFixture()

	view := pm.View()

	for _, want := range []string{"Shader Presets", "bright", "dark", "night"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPresetListModelQuit(t *testing.T) {
	pm := browserFixture()

	next, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	pm = next.(presetListModel)

	if !pm.quitting {
		t.Error("expected quitting state")
	}

	if cmd == nil {
		t.Error("expected a quit command")
	}

	if pm.View() != "" {
		t.Error("expected empty view when quitting")
	}
}
