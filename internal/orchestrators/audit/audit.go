// Package audit reports property records whose names collide.
package audit

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
)

// FindDuplicatesInput defines the request for a duplicate-name audit
type FindDuplicatesInput struct {
	// Dir is the properties directory
	Dir string
}

// DuplicateGroup is a normalized name shared by more than one file
type DuplicateGroup struct {
	Key   string
	Paths []string
}

// FileFailure is a file the audit could not parse
type FileFailure struct {
	Path string
	Err  error
}

// FindDuplicatesOutput holds the audit report. Paths are relative to the
// audited directory and use forward slashes.
type FindDuplicatesOutput struct {
	Duplicates []*DuplicateGroup
	Unnamed    []string
	Unparsed   []*FileFailure
}

// HasFindings reports whether the audit found anything to fix
func (o *FindDuplicatesOutput) HasFindings() bool {
	return len(o.Duplicates) > 0 || len(o.Unnamed) > 0 || len(o.Unparsed) > 0
}

// NormalizeName lowercases name and collapses runs of whitespace
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// FindDuplicates groups the property files under the directory by
// normalized name
func FindDuplicates(ctx context.Context, input *FindDuplicatesInput) (*FindDuplicatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", input.Dir, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	groups := map[string][]string{}
	output := &FindDuplicatesOutput{}

	err := properties.Walk(ctx, input.Dir, func(path string, rec *entities.Record, err error) bool {
		rel := relPath(input.Dir, path)
		if err != nil {
			output.Unparsed = append(output.Unparsed, &FileFailure{Path: rel, Err: err})
			return true
		}

		key := NormalizeName(rec.String("name"))
		if key == "" {
			output.Unnamed = append(output.Unnamed, rel)
			return true
		}
		groups[key] = append(groups[key], rel)
		return true
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(groups))
	for key, paths := range groups {
		if len(paths) > 1 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		output.Duplicates = append(output.Duplicates, &DuplicateGroup{Key: key, Paths: groups[key]})
	}

	slog.DebugContext(ctx, "property audit complete",
		"dir", input.Dir,
		"names", len(groups),
		"duplicates", len(output.Duplicates),
		"unnamed", len(output.Unnamed),
		"unparsed", len(output.Unparsed))

	return output, nil
}

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
