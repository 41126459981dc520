package properties

import (
	"context"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// FilesystemConfig configures the scanning repository
type FilesystemConfig struct {
	// Dir is the properties directory, usually <data>/properties
	Dir string
}

// Validate validates the FilesystemConfig
func (cfg *FilesystemConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	return vb.Build()
}

type filesystemRepository struct {
	dir string
}

// NewFilesystem creates a repository that rescans the directory on every
// lookup. Edits on disk are visible immediately.
func NewFilesystem(cfg *FilesystemConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &filesystemRepository{dir: cfg.Dir}, nil
}

var _ Repository = (*filesystemRepository)(nil)

func (r *filesystemRepository) FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var match *entities.Property
	err := walk(ctx, r.dir, func(_ string, rec *entities.Record) bool {
		if rec.String("name") != input.Name {
			return true
		}
		match = entities.NewProperty(rec)
		return false
	})
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.NotFoundf("property %q not found", input.Name)
	}

	return &FindByNameOutput{Property: match}, nil
}
