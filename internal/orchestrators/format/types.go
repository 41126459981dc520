package format

import (
	"time"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// RunInput defines the request for formatting a data directory
type RunInput struct {
	// DataDir is the root holding items/, creatures/, properties/ and spells/
	DataDir string
	// RegenerateTooltips rebuilds weapon and spell tooltips before ordering
	RegenerateTooltips bool
	// DryRun reports what would change without writing
	DryRun bool
}

// RunOutput defines the result of a format run
type RunOutput struct {
	RunID string
	// Processed counts files that were read and parsed
	Processed int
	// Changed lists files, relative to DataDir and sorted, whose text changed
	Changed []string
	// Failed lists files that were skipped, sorted by path
	Failed   []*FileFailure
	Duration time.Duration
}

// FileFailure records a file the run skipped
type FileFailure struct {
	Path string
	Err  error
}

// FormatFileInput defines the request for formatting one file
type FormatFileInput struct {
	DataDir            string
	Path               string
	RegenerateTooltips bool
	DryRun             bool
}

// FormatFileOutput defines the result of formatting one file
type FormatFileOutput struct {
	// Path is relative to the data directory
	Path string
	Kind entities.Kind

	// Record is the canonical record that was, or would be, written
	Record *entities.Record

	// PreviousTooltip holds the tooltip lines found in the file
	PreviousTooltip []string
	// Tooltip holds the generated lines when a tooltip was composed
	Tooltip  []string
	Composed bool

	Changed bool
	Written bool
}
