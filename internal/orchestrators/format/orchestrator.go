// Package format implements the batch formatter for the game data tree:
// tooltip regeneration, canonical key order and write-back.
package format

//go:generate mockgen -destination=mock/mock_service.go -package=formatmock github.com/KirkDiggler/rpg-content/internal/orchestrators/format Service

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-content/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-content/internal/tooltip"
)

const jsonExt = ".json"

// Service formats game data files
type Service interface {
	// Run formats every JSON file under the data directory. A file that
	// cannot be read, parsed or composed is skipped and reported; it does
	// not stop the run.
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)

	// FormatFile formats a single file
	FormatFile(ctx context.Context, input *FormatFileInput) (*FormatFileOutput, error)
}

// Config holds the dependencies for the format orchestrator
type Config struct {
	Composer    tooltip.Service
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Workers bounds how many files are processed at once. Zero means one
	// per CPU.
	Workers int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Composer == nil {
		vb.RequiredField("Composer")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Workers < 0 {
		vb.Field("Workers", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	composer tooltip.Service
	eventBus events.EventBus
	idGen    idgen.Generator
	clock    clock.Clock
	workers  int
}

// NewOrchestrator creates a new format orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return &orchestrator{
		composer: cfg.Composer,
		eventBus: cfg.EventBus,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		workers:  workers,
	}, nil
}

var _ Service = (*orchestrator)(nil)

func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkDataDir(input.DataDir); err != nil {
		return nil, err
	}

	runID := o.idGen.Generate()
	started := o.clock.Now()
	logger := slog.With("run_id", runID, "data_dir", input.DataDir)

	paths, err := listJSONFiles(input.DataDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		logger.WarnContext(ctx, "no JSON files found")
	}

	var (
		mu      sync.Mutex
		results []*FormatFileOutput
		failed  []*FileFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := o.FormatFile(gctx, &FormatFileInput{
				DataDir:            input.DataDir,
				Path:               path,
				RegenerateTooltips: input.RegenerateTooltips,
				DryRun:             input.DryRun,
			})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if errors.GetCode(err) == errors.CodeCanceled {
					return err
				}
				rel := relPath(input.DataDir, path)
				logger.WarnContext(gctx, "skipping file", "path", rel, "error", err)
				failed = append(failed, &FileFailure{Path: rel, Err: err})
				return nil
			}
			results = append(results, out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "format run canceled")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "format run canceled")
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	sort.Slice(failed, func(i, j int) bool { return failed[i].Path < failed[j].Path })

	output := &RunOutput{
		RunID:     runID,
		Processed: len(results),
		Changed:   []string{},
		Failed:    failed,
	}

	for _, res := range results {
		if !res.Changed {
			continue
		}
		output.Changed = append(output.Changed, res.Path)
		logger.DebugContext(ctx, "file changed", "path", res.Path, "kind", res.Kind, "written", res.Written)
		o.publish(ctx, EventRecordChanged, res.Record)
	}
	for _, f := range failed {
		stub := entities.NewRecord()
		stub.Path = f.Path
		stub.Kind = entities.KindFromPath(f.Path)
		o.publish(ctx, EventRecordFailed, stub)
	}

	output.Duration = o.clock.Now().Sub(started)

	logger.InfoContext(ctx, "format run complete",
		"processed", output.Processed,
		"changed", len(output.Changed),
		"failed", len(output.Failed),
		"dry_run", input.DryRun,
		"duration", output.Duration)

	return output, nil
}

func (o *orchestrator) FormatFile(ctx context.Context, input *FormatFileInput) (*FormatFileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dataDir", input.DataDir, vb)
	errors.ValidateRequired("path", input.Path, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	info, err := os.Stat(input.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("file %s not found", input.Path)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", input.Path)
	}

	original, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", input.Path)
	}

	rec, err := entities.Decode(original)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", input.Path)
	}
	rec.Path = relPath(input.DataDir, input.Path)
	rec.Kind = entities.KindFromPath(rec.Path)

	output := &FormatFileOutput{
		Path:            rec.Path,
		Kind:            rec.Kind,
		PreviousTooltip: rec.Strings("tooltip"),
	}

	if input.RegenerateTooltips {
		composed, err := o.composer.Compose(ctx, &tooltip.ComposeInput{Record: rec})
		if err != nil {
			return nil, err
		}
		output.Composed = composed.Composed
		output.Tooltip = composed.Lines
		// an empty result leaves a hand-written tooltip in place
		if composed.Composed && len(composed.Lines) > 0 {
			rec.SetTooltip(composed.Lines)
		}
	}

	output.Record = Canonicalize(rec)
	formatted, err := entities.Encode(output.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", rec.Path)
	}

	output.Changed = !bytes.Equal(formatted, original)
	if !output.Changed || input.DryRun {
		return output, nil
	}

	if err := os.WriteFile(input.Path, formatted, info.Mode().Perm()); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", rec.Path)
	}
	output.Written = true

	return output, nil
}

func checkDataDir(dir string) error {
	if dir == "" {
		return errors.InvalidArgument("data directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("data directory %s not found", dir)
		}
		return errors.Wrapf(err, "failed to stat data directory %s", dir)
	}
	if !info.IsDir() {
		return errors.InvalidArgumentf("data directory %s is not a directory", dir)
	}
	return nil
}

// listJSONFiles returns every .json file under dir in lexical order
func listJSONFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == jsonExt {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list files in %s", dir)
	}
	return paths, nil
}

// relPath returns path relative to root with forward slashes, or path
// itself when the two cannot be related
func relPath(root, path string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.ToSlash(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
