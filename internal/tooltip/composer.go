// Package tooltip composes player-facing tooltip lines from weapon and
// spell records.
package tooltip

//go:generate mockgen -destination=mock/mock_service.go -package=tooltipmock github.com/KirkDiggler/rpg-content/internal/tooltip Service

import (
	"context"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
)

var (
	errWeaponRequired = errors.InvalidArgument("weapon is required")
	errSpellRequired  = errors.InvalidArgument("spell is required")
)

// Service composes tooltips. Output depends only on the input record and
// the properties it references.
type Service interface {
	// ComposeWeapon returns the tooltip for a weapon item
	ComposeWeapon(ctx context.Context, input *ComposeWeaponInput) (*ComposeOutput, error)

	// ComposeSpell returns the tooltip for a spell
	ComposeSpell(ctx context.Context, input *ComposeSpellInput) (*ComposeOutput, error)

	// Compose picks the composer for a loaded record. Records that are
	// neither weapon items nor spells come back with Composed false.
	Compose(ctx context.Context, input *ComposeInput) (*ComposeOutput, error)
}

// ComposeWeaponInput defines the input for composing a weapon tooltip
type ComposeWeaponInput struct {
	Weapon *entities.Weapon
}

// ComposeSpellInput defines the input for composing a spell tooltip
type ComposeSpellInput struct {
	Spell *entities.Spell
}

// ComposeInput defines the input for composing any record
type ComposeInput struct {
	Record *entities.Record
}

// ComposeOutput holds the composed lines. Lines never start or end with a
// blank line and never hold two blank lines in a row.
type ComposeOutput struct {
	Lines    []string
	Composed bool
}

// Config holds the dependencies for the composer
type Config struct {
	Properties properties.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Properties == nil {
		vb.RequiredField("Properties")
	}
	return vb.Build()
}

type composer struct {
	properties properties.Repository
}

// NewComposer creates a tooltip composer that resolves properties through
// the given repository
func NewComposer(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &composer{properties: cfg.Properties}, nil
}

var _ Service = (*composer)(nil)

func (c *composer) Compose(ctx context.Context, input *ComposeInput) (*ComposeOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	rec := input.Record

	var (
		out *ComposeOutput
		err error
	)
	switch {
	case rec.Kind == entities.KindItem && entities.IsWeapon(rec):
		out, err = c.ComposeWeapon(ctx, &ComposeWeaponInput{Weapon: entities.NewWeapon(rec)})
	case rec.Kind == entities.KindSpell:
		out, err = c.ComposeSpell(ctx, &ComposeSpellInput{Spell: entities.NewSpell(rec)})
	default:
		return &ComposeOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compose tooltip for %s", rec.Path).
			WithMeta("path", rec.Path).
			WithMeta("kind", string(rec.Kind))
	}

	return out, nil
}
