// Package properties resolves status-effect records by name
package properties

//go:generate mockgen -destination=mock/mock_repository.go -package=propertiesmock github.com/KirkDiggler/rpg-content/internal/repositories/properties Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// Repository looks up properties referenced from attacks and spells
type Repository interface {
	// FindByName returns the first property whose name equals the query exactly
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if no property has that name
	// Returns errors.Unavailable or errors.Internal for storage failures
	FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error)
}

// CacheRepository is a Repository whose contents are loaded from a scan
type CacheRepository interface {
	Repository

	// Store replaces the cached index with the given properties. When two
	// properties share a name the earlier one wins.
	Store(ctx context.Context, input StoreInput) (*StoreOutput, error)
}

// FindByNameInput defines the input for a name lookup
type FindByNameInput struct {
	Name string
}

// FindByNameOutput defines the output for a name lookup
type FindByNameOutput struct {
	Property *entities.Property
}

// StoreInput defines the input for storing an index
type StoreInput struct {
	Properties []*entities.Property
}

// StoreOutput defines the output for storing an index
type StoreOutput struct {
	// Stored is the number of distinct names written
	Stored int
	// Shadowed lists properties dropped because an earlier one had the same name
	Shadowed []*entities.Property
}

const errNameEmpty = "property name cannot be empty"
