// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
	propertiesmock "github.com/KirkDiggler/rpg-content/internal/repositories/properties/mock"
)

// ExpectPropertyLookups answers FindByName from known, keyed by name. Any
// other name returns NotFound. Lookups may happen any number of times.
func ExpectPropertyLookups(mockRepo *propertiesmock.MockRepository, known ...*entities.Property) {
	byName := make(map[string]*entities.Property, len(known))
	for _, prop := range known {
		byName[prop.Name] = prop
	}

	mockRepo.EXPECT().
		FindByName(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input properties.FindByNameInput) (*properties.FindByNameOutput, error) {
			prop, ok := byName[input.Name]
			if !ok {
				return nil, errors.NotFoundf("property %q not found", input.Name)
			}
			return &properties.FindByNameOutput{Property: prop}, nil
		}).
		AnyTimes()
}

// ExpectPropertyLookup expects exactly one lookup of name returning prop
func ExpectPropertyLookup(mockRepo *propertiesmock.MockRepository, name string, prop *entities.Property) {
	mockRepo.EXPECT().
		FindByName(gomock.Any(), properties.FindByNameInput{Name: name}).
		Return(&properties.FindByNameOutput{Property: prop}, nil)
}
