// Package controller provides output adapters for displaying keying-set and
// preset operations.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	m "shadekey.dev/pkg/shadekey/internal/model"
)

// UI defines the interface for reporting operation results. Implementations
// can use different output methods (plain text, TUI, etc).
type UI interface {
	DisplayExtract(ctx context.Context, set string, count int)
	DisplayApply(ctx context.Context, set string, count int)
	DisplaySaved(ctx context.Context, preset m.Preset, activeIndex int)
	DisplayRestore(ctx context.Context, report m.RestoreReport)
	DisplayRemoved(ctx context.Context, index int, activeIndex int)
	DisplayBatch(ctx context.Context, scenes int, presets int)
	DisplayKeyingSets(ctx context.Context, sets []*m.KeyingSet, active string) error
	DisplayPresets(ctx context.Context, store *m.PresetStore) error
	BrowsePresets(ctx context.Context, store *m.PresetStore) error
	DisplayDiff(ctx context.Context, diff string)
}

// NewUI selects the UI implementation: interactive preset browsing when
// attached to a terminal, plain tables otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	simple := NewSimpleUI(cmd)
	if tty {
		return NewTUI(simple, cmd.OutOrStdout())
	}

	return simple
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
