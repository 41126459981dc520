package tooltip_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	propertiesmock "github.com/KirkDiggler/rpg-content/internal/repositories/properties/mock"
	"github.com/KirkDiggler/rpg-content/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-content/internal/testutils/mocks"
	"github.com/KirkDiggler/rpg-content/internal/tooltip"
)

type SpellTooltipTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockProps *propertiesmock.MockRepository
	composer  tooltip.Service
	ctx       context.Context
}

func (s *SpellTooltipTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProps = propertiesmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	composer, err := tooltip.NewComposer(&tooltip.Config{Properties: s.mockProps})
	s.Require().NoError(err)
	s.composer = composer

	mocks.ExpectPropertyLookups(s.mockProps, bleed, burn, haste)
}

func (s *SpellTooltipTestSuite) compose(b *builders.RecordBuilder) []string {
	out, err := s.composer.ComposeSpell(s.ctx, &tooltip.ComposeSpellInput{
		Spell: entities.NewSpell(b.Build()),
	})
	s.Require().NoError(err)
	assertWellFormed(s.T(), out.Lines)
	return out.Lines
}

func (s *SpellTooltipTestSuite) TestCostPhrasing() {
	testCases := []struct {
		name  string
		spell *builders.RecordBuilder
		want  string
	}{
		{
			name:  "stamina only",
			spell: builders.NewSpellBuilder("Cleave").WithInt("staminaCost", 4),
			want:  "Costs 4 stamina.",
		},
		{
			name:  "mana only",
			spell: builders.NewSpellBuilder("Spark").WithInt("manaCost", 5),
			want:  "Costs 5 mana.",
		},
		{
			name: "stamina wins over mana",
			spell: builders.NewSpellBuilder("Surge").
				WithInt("manaCost", 5).
				WithInt("staminaCost", 2),
			want: "Costs 2 stamina.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal([]string{tc.want}, s.compose(tc.spell))
		})
	}
}

func (s *SpellTooltipTestSuite) TestFireball() {
	lines := s.compose(builders.NewSpellBuilder("Fireball").
		WithInt("manaCost", 5).
		WithString("damageType", "FIRE").
		WithString("damageDice", "2d6").
		WithString("onHitProperty", "Burn"))

	s.Equal([]string{
		"Costs 5 mana.",
		"",
		"Deals 2-12 + 5 * INT bonus fire damage. This spell has a chance to inflict the Burn condition.",
		"",
		"Burn: Takes fire damage each turn.",
	}, lines)
}

func (s *SpellTooltipTestSuite) TestMultipleComponents() {
	lines := s.compose(builders.NewSpellBuilder("Tempest").
		WithInt("times", 2).
		WithString("damageType", "LIGHTNING").
		WithString("damageDice", "1d6").
		WithString("damageType2", "WIND").
		WithString("damageDice2", "1d4").
		WithString("damageType3", "WATER").
		WithNumber("damageMult", 1.25).
		WithString("critMod", "-5").
		WithInt("accuracy", 4).
		WithString("buffProperty", "Haste").
		WithStrings("statBonuses", "WISDOM", "CHARISMA").
		WithInt("buildUpMod", 1).
		WithNumber("buildUpMod2", 1.5))

	s.Equal([]string{
		"Deals 2-12 + 5 * WIS or CHA bonus lightning damage and 2-8 + 5 * WIS or CHA bonus wind damage (x1.5 build-up)." +
			" This spell has a -5% critical chance and +4 accuracy and a x1.25 damage multiplier.",
		"",
		"Haste: Move faster.",
	}, lines)
}

func (s *SpellTooltipTestSuite) TestModifiersWithoutDamage() {
	lines := s.compose(builders.NewSpellBuilder("Hex").
		WithString("onHitProperty", "Slow"))

	s.Equal([]string{"This spell has a chance to inflict the Slow condition."}, lines)
}

func (s *SpellTooltipTestSuite) TestSharedBuffAndOnHit() {
	lines := s.compose(builders.NewSpellBuilder("Bloodlust").
		WithString("onHitProperty", "Bleed").
		WithString("buffProperty", "Bleed"))

	s.Equal([]string{
		"This spell has a chance to inflict the Bleed condition.",
		"",
		"Bleed: Take 1d4 slashing damage each turn.",
	}, lines)
}

func (s *SpellTooltipTestSuite) TestEmptySpell() {
	s.Empty(s.compose(builders.NewSpellBuilder("Nothing")))
}

func TestSpellTooltipSuite(t *testing.T) {
	suite.Run(t, new(SpellTooltipTestSuite))
}
