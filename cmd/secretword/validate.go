package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"secretword/internal/app"
	"secretword/internal/puzzle"
	"secretword/internal/puzzles"

	"github.com/spf13/cobra"
)

func newValidateCmd(stdout io.Writer, fv *flagValues, environ map[string]string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a puzzle set and print its grid layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv, environ)
			if err != nil {
				return err
			}
			set, err := app.LoadSet(cmd.Context(), puzzles.NewLoader(), cfg)
			if err != nil {
				return err
			}
			d := set.Countdown()
			if cfg.Countdown > 0 {
				d = cfg.Countdown
			}
			layout, err := renderLayout(set, d)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, layout)

			configured, spelled, mismatch := set.KeywordMismatch()
			if mismatch {
				return fmt.Errorf("%w: reward keyword %q but the highlighted column spells %q", errInvalidConfig, configured, spelled)
			}
			fmt.Fprintf(stdout, "ok: %s (%d entries, keyword %s)\n", set.SetID, len(set.Entries), spelled)
			return nil
		},
	}
}

// renderLayout prints every answer at its start column with the shared column
// bracketed.
func renderLayout(set puzzles.Set, countdown time.Duration) (string, error) {
	entries := set.PuzzleEntries()
	g, err := puzzle.ComputeGeometry(entries)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", set.Title, set.Path)
	fmt.Fprintf(&b, "center column %d, %d columns, countdown %s\n", g.CenterColumn, g.TotalColumns, countdown)
	for _, e := range entries {
		start := g.Start(e)
		answer := []rune(puzzle.Normalize(e.Answer))
		fmt.Fprintf(&b, "%3d ", e.ID)
		for col := 0; col < g.TotalColumns; col++ {
			ch := ' '
			if col >= start && col < start+len(answer) {
				ch = answer[col-start]
			}
			if col == g.CenterColumn {
				fmt.Fprintf(&b, "[%c]", ch)
				continue
			}
			fmt.Fprintf(&b, " %c ", ch)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
