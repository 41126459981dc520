package properties

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// Scan reads every JSON file under dir in lexical path order. Files that
// cannot be read or parsed are skipped. A missing directory yields no
// properties.
func Scan(ctx context.Context, dir string) ([]*entities.Property, error) {
	var found []*entities.Property

	err := walk(ctx, dir, func(path string, rec *entities.Record) bool {
		found = append(found, entities.NewProperty(rec))
		return true
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// WalkFunc is called for each JSON file under a properties directory.
// err is set when the file could not be read or parsed; rec is nil then.
// Returning false stops the walk.
type WalkFunc func(path string, rec *entities.Record, err error) bool

// walk calls fn for each parsed record under dir until fn returns false.
// Unreadable and malformed files are logged and skipped.
func walk(ctx context.Context, dir string, fn func(path string, rec *entities.Record) bool) error {
	return Walk(ctx, dir, func(path string, rec *entities.Record, err error) bool {
		if err != nil {
			slog.DebugContext(ctx, "skipping malformed property file", "path", path, "error", err)
			return true
		}
		return fn(path, rec)
	})
}

// Walk visits every JSON file under dir in lexical path order. A missing
// directory is not an error and visits nothing.
func Walk(ctx context.Context, dir string, fn WalkFunc) error {
	if dir == "" {
		return errors.InvalidArgument("properties directory is required")
	}

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			slog.DebugContext(ctx, "properties directory does not exist", "dir", dir)
			return nil
		}
		return errors.Wrapf(err, "failed to stat properties directory %s", dir)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.DebugContext(ctx, "skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		rec, err := readRecord(path)
		if !fn(path, rec, err) {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.WrapWithCode(ctxErr, errors.CodeCanceled, "property scan canceled")
		}
		return errors.Wrapf(err, "failed to scan properties in %s", dir)
	}

	return nil
}

func readRecord(path string) (*entities.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	rec, err := entities.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	rec.Path = path
	rec.Kind = entities.KindProperty
	return rec, nil
}
