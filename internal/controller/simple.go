package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "shadekey.dev/pkg/shadekey/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayExtract reports how many entries discovery produced.
func (s *SimpleUI) DisplayExtract(ctx context.Context, set string, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Keying set %q has %d paths\n", set, count)
}

// DisplayApply reports how many keyframes replay committed.
func (s *SimpleUI) DisplayApply(ctx context.Context, set string, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Inserted %d keys from %q\n", count, set)
}

// DisplaySaved reports the preset created by a capture.
func (s *SimpleUI) DisplaySaved(ctx context.Context, preset m.Preset, activeIndex int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Preset %q saved at index %d\n", preset.Name, activeIndex)
}

// DisplayRestore summarizes a preset restore, including per-record skips.
func (s *SimpleUI) DisplayRestore(ctx context.Context, report m.RestoreReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Applied preset %q: %d keyed, %d skipped\n",
		report.Preset, report.Committed, report.Skipped())

	for _, skip := range report.Skips {
		s.printf("  skipped %s %s: %s\n", skip.Record.Material, skip.Record.Path, skip.Reason)
	}
}

// DisplayRemoved reports a preset removal and the reclamped active index.
func (s *SimpleUI) DisplayRemoved(ctx context.Context, index int, activeIndex int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Removed preset %d (active index now %d)\n", index, activeIndex)
}

// DisplayBatch reports a batch collection over one or more scenes.
func (s *SimpleUI) DisplayBatch(ctx context.Context, scenes int, presets int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Collected %d preset(s) across %d scene(s)\n", presets, scenes)
}

// DisplayKeyingSets renders the scene's keying sets as a table.
func (s *SimpleUI) DisplayKeyingSets(ctx context.Context, sets []*m.KeyingSet, active string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Keying Set", "Paths", "Active"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	total := 0

	for _, ks := range sets {
		marker := ""
		if ks.Name == active {
			marker = "*"
		}

		table.Append([]string{ks.Name, fmt.Sprintf("%d", ks.Len()), marker})

		total += ks.Len()
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sets %d", len(sets)),
		fmt.Sprintf("%d", total),
		"",
	})

	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// DisplayPresets renders the preset store as a table.
func (s *SimpleUI) DisplayPresets(ctx context.Context, store *m.PresetStore) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Preset", "Active"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for i, p := range store.Items {
		marker := ""
		if i == store.Active() {
			marker = "*"
		}

		table.Append([]string{fmt.Sprintf("%d", i), p.Name, marker})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", store.Len()), ""})

	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// BrowsePresets falls back to the table view; SimpleUI is non-interactive.
func (s *SimpleUI) BrowsePresets(ctx context.Context, store *m.PresetStore) error {
	return s.DisplayPresets(ctx, store)
}

// DisplayDiff prints a rendered preset diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("Presets are identical\n")
		return
	}

	s.printf("%s", diff)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
