package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/orchestrators/format"
)

const rule = "================================================================================"

var applyTooltip bool

var tooltipCmd = &cobra.Command{
	Use:   "tooltip <file>",
	Short: "Compare a weapon or spell tooltip with the generated one",
	Long: `Tooltip prints the tooltip stored in a weapon or spell file next to the one
generated from its combat fields, line by line. With --apply the file is
rewritten with the generated tooltip and canonical key order.`,
	Args: cobra.ExactArgs(1),
	RunE: runTooltip,
}

func init() {
	tooltipCmd.Flags().BoolVar(&applyTooltip, "apply", false, "write the generated tooltip back to the file")
}

func runTooltip(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orchestrator, release, err := newFormatOrchestrator(ctx, events.NewBus())
	if err != nil {
		return err
	}
	defer release()

	input := &format.FormatFileInput{
		DataDir:            cfg.DataDir,
		Path:               args[0],
		RegenerateTooltips: true,
		DryRun:             true,
	}

	preview, err := orchestrator.FormatFile(ctx, input)
	if err != nil {
		return err
	}
	if !preview.Composed {
		return errors.InvalidArgumentf("%s is not a weapon item or spell under %s", args[0], cfg.DataDir)
	}

	name := preview.Record.String("name")
	writeComparison(cmd.OutOrStdout(), name, preview.PreviousTooltip, preview.Tooltip)

	if !applyTooltip {
		return nil
	}

	input.DryRun = false
	applied, err := orchestrator.FormatFile(ctx, input)
	if err != nil {
		return err
	}
	if applied.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "\nUpdated %s\n", applied.Path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s is already up to date\n", applied.Path)
	}
	return nil
}

// writeComparison prints the stored and generated tooltips and a line by
// line diff of the two
func writeComparison(w io.Writer, name string, current, generated []string) {
	thin := strings.Repeat("-", len(rule))

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CURRENT TOOLTIP:")
	fmt.Fprintln(w, thin)
	for _, line := range current {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "GENERATED TOOLTIP:")
	fmt.Fprintln(w, thin)
	for _, line := range generated {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "COMPARISON:")
	fmt.Fprintln(w, thin)
	if equalLines(current, generated) {
		fmt.Fprintln(w, "Generated tooltip matches the current tooltip.")
		return
	}

	fmt.Fprintln(w, "Differences found")
	fmt.Fprintf(w, "  Current lines: %d\n", len(current))
	fmt.Fprintf(w, "  Generated lines: %d\n", len(generated))
	fmt.Fprintln(w)

	for i := 0; i < max(len(current), len(generated)); i++ {
		cur, gen := lineAt(current, i), lineAt(generated, i)
		if cur == gen {
			fmt.Fprintf(w, "  Line %d: (same)\n", i+1)
			continue
		}
		fmt.Fprintf(w, "  Line %d:\n", i+1)
		fmt.Fprintf(w, "      Current:   %s\n", cur)
		fmt.Fprintf(w, "      Generated: %s\n", gen)
	}
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return "(missing)"
}
