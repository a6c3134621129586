package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "shadekey.dev/pkg/shadekey/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive preset browsing. All
// non-interactive displays are delegated to the embedded SimpleUI.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI on top of a SimpleUI.
func NewTUI(simple *SimpleUI, output io.Writer) *TUI {
	return &TUI{SimpleUI: simple, output: output}
}

// BrowsePresets opens an interactive list over the preset store.
func (p *TUI) BrowsePresets(ctx context.Context, store *m.PresetStore) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if store.Len() == 0 {
		_, err := fmt.Fprintln(p.output, "No presets in this scene")
		return err
	}

	model := newPresetListModel(store)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// presetKeyMap holds the key bindings of the preset browser.
type presetKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding
	Quit key.Binding
}

func defaultPresetKeyMap() presetKeyMap {
	return presetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k presetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k presetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Home, k.End}, {k.Quit}}
}

// presetListModel is the Bubble Tea model for the preset browser.
type presetListModel struct {
	items    []m.Preset
	active   int
	cursor   int
	height   int
	width    int
	keys     presetKeyMap
	help     help.Model
	quitting bool
}

func newPresetListModel(store *m.PresetStore) presetListModel {
	cursor := store.Active()
	if cursor < 0 {
		cursor = 0
	}

	return presetListModel{
		items:  store.Items,
		active: store.Active(),
		cursor: cursor,
		keys:   defaultPresetKeyMap(),
		help:   help.New(),
	}
}

func (pm presetListModel) Init() tea.Cmd {
	return nil
}

func (pm presetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.help.Width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pm.keys.Quit):
			pm.quitting = true
			return pm, tea.Quit

		case key.Matches(msg, pm.keys.Down):
			if pm.cursor < len(pm.items)-1 {
				pm.cursor++
			}

			return pm, nil

		case key.Matches(msg, pm.keys.Up):
			if pm.cursor > 0 {
				pm.cursor--
			}

			return pm, nil

		case key.Matches(msg, pm.keys.Home):
			pm.cursor = 0
			return pm, nil

		case key.Matches(msg, pm.keys.End):
			pm.cursor = len(pm.items) - 1
			return pm, nil
		}
	}

	return pm, nil
}

func (pm presetListModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Shader Presets"))
	b.WriteString("\n\n")

	for i, p := range pm.items {
		line := fmt.Sprintf("%3d  %s", i, p.Name)

		switch {
		case i == pm.cursor && i == pm.active:
			line = cursorStyle.Render("> ") + activeStyle.Render(line+" *")
		case i == pm.cursor:
			line = cursorStyle.Render("> " + line)
		case i == pm.active:
			line = "  " + activeStyle.Render(line+" *")
		default:
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d preset(s), active %d", len(pm.items), pm.active)))
	b.WriteString("\n")
	b.WriteString(pm.help.View(pm.keys))
	b.WriteString("\n")

	return b.String()
}
