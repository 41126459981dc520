package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/internal/orchestrators/format"
	"github.com/KirkDiggler/rpg-content/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-content/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-content/internal/tooltip"
)

var (
	regenerateTooltips bool
	dryRun             bool
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Order keys canonically in every data file",
	Long: `Format walks the data directory, optionally regenerates weapon and spell
tooltips, orders record keys canonically and rewrites files whose text
changed. Files that cannot be parsed are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVar(&regenerateTooltips, "regenerate-tooltips", false, "rebuild weapon and spell tooltips before formatting")
	formatCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
}

// newFormatOrchestrator wires the tooltip composer and the format
// orchestrator over the configured property repository
func newFormatOrchestrator(ctx context.Context, bus events.EventBus) (format.Service, func(), error) {
	repo, release, err := propertyRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	composer, err := tooltip.NewComposer(&tooltip.Config{Properties: repo})
	if err != nil {
		release()
		return nil, nil, err
	}

	orchestrator, err := format.NewOrchestrator(&format.Config{
		Composer:    composer,
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("run"),
		Clock:       clock.New(),
		Workers:     cfg.Workers,
	})
	if err != nil {
		release()
		return nil, nil, err
	}

	return orchestrator, release, nil
}

func runFormat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	regenerate := cfg.RegenerateTooltips
	if cmd.Flags().Changed("regenerate-tooltips") {
		regenerate = regenerateTooltips
	}

	bus := events.NewBus()
	var changed []string
	bus.SubscribeFunc(format.EventRecordChanged, 0, func(_ context.Context, e events.Event) error {
		if rec, ok := format.RecordFromEvent(e); ok {
			changed = append(changed, rec.Path)
		}
		return nil
	})

	orchestrator, release, err := newFormatOrchestrator(ctx, bus)
	if err != nil {
		return err
	}
	defer release()

	result, err := orchestrator.Run(ctx, &format.RunInput{
		DataDir:            cfg.DataDir,
		RegenerateTooltips: regenerate,
		DryRun:             dryRun,
	})
	if err != nil {
		return err
	}

	printFormatReport(out, changed, result, dryRun)
	return nil
}

func printFormatReport(w io.Writer, changed []string, result *format.RunOutput, dry bool) {
	for _, failure := range result.Failed {
		fmt.Fprintf(w, "Skipping %s\n  Error: %v\n", failure.Path, failure.Err)
	}

	if len(changed) == 0 {
		fmt.Fprintln(w, "No JSON files needed formatting/order changes.")
		return
	}

	if dry {
		fmt.Fprintln(w, "Files that would be reformatted & re-ordered:")
	} else {
		fmt.Fprintln(w, "Reformatted & re-ordered files:")
	}
	for _, path := range changed {
		fmt.Fprintln(w, path)
	}
	fmt.Fprintf(w, "%d of %d files changed in %s (%d workers)\n",
		len(changed), result.Processed, result.Duration.Round(time.Millisecond), workerCount())
}

func workerCount() int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.NumCPU()
}
