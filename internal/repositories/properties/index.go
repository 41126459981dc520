package properties

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// IndexConfig configures the in-memory repository
type IndexConfig struct {
	Properties []*entities.Property
}

type indexRepository struct {
	byName map[string]*entities.Property
}

// NewIndex creates a read-only in-memory repository. The first property
// with a given name wins, matching scan order.
func NewIndex(cfg *IndexConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	byName, _ := indexByName(cfg.Properties)
	return &indexRepository{byName: byName}, nil
}

// BuildIndex scans dir once and returns an in-memory repository over it
func BuildIndex(ctx context.Context, dir string) (Repository, error) {
	found, err := Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "built property index", "dir", dir, "count", len(found))

	return NewIndex(&IndexConfig{Properties: found})
}

var _ Repository = (*indexRepository)(nil)

func (r *indexRepository) FindByName(_ context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	prop, ok := r.byName[input.Name]
	if !ok {
		return nil, errors.NotFoundf("property %q not found", input.Name)
	}

	return &FindByNameOutput{Property: prop}, nil
}

// indexByName keys properties by name, keeping the first of each name and
// returning the rest as shadowed. Unnamed properties are ignored.
func indexByName(props []*entities.Property) (map[string]*entities.Property, []*entities.Property) {
	byName := make(map[string]*entities.Property, len(props))
	var shadowed []*entities.Property
	for _, prop := range props {
		if prop == nil || prop.Name == "" {
			continue
		}
		if _, exists := byName[prop.Name]; exists {
			shadowed = append(shadowed, prop)
			continue
		}
		byName[prop.Name] = prop
	}
	return byName, shadowed
}
