package tooltip

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// ComposeSpell builds the tooltip lines for a spell
func (c *composer) ComposeSpell(ctx context.Context, input *ComposeSpellInput) (*ComposeOutput, error) {
	if input == nil || input.Spell == nil {
		return nil, errSpellRequired
	}
	s := input.Spell

	var b lineBuilder

	switch {
	case s.StaminaCost > 0:
		b.block(fmt.Sprintf("Costs %s stamina.", entities.FormatNumber(s.StaminaCost)))
	case s.ManaCost > 0:
		b.block(fmt.Sprintf("Costs %s mana.", entities.FormatNumber(s.ManaCost)))
	}

	b.block(spellLine(s))

	blurbs, err := propertyBlurbs(ctx, c.properties, s.OnHitProperty, s.BuffProperty)
	if err != nil {
		return nil, err
	}
	for _, blurb := range blurbs {
		b.block(blurb)
	}

	return &ComposeOutput{Lines: b.lines(), Composed: true}, nil
}

// spellLine renders "Deals <c1> and <c2>." and the modifier sentence, or
// only "This spell has ...." when no damage slot is set
func spellLine(s *entities.Spell) string {
	stat := SpellStat(s)

	var parts []string
	for _, slot := range s.Damage {
		if slot.Dice == "" || slot.Type == "" {
			continue
		}
		phrase := damagePhrase(rangeText(slot.Dice, s.Times, "", 0), stat, DamageTypeDisplay(slot.Type))
		if slot.HasBuildUpMod && slot.BuildUpMod != 1 {
			phrase += fmt.Sprintf(" (x%s build-up)", entities.FormatNumber(slot.BuildUpMod))
		}
		parts = append(parts, phrase)
	}

	var modifiers []string
	if s.OnHitProperty != "" {
		modifiers = append(modifiers, conditionPhrase(s.OnHitProperty))
	}
	if phrase, ok := critPhrase(s.CritMod, ""); ok {
		modifiers = append(modifiers, phrase)
	}
	if phrase, ok := bonusPhrase(s.Accuracy, 0, "accuracy"); ok {
		modifiers = append(modifiers, phrase)
	}
	if s.DamageMult != 1 {
		modifiers = append(modifiers, fmt.Sprintf("a x%s damage multiplier", entities.FormatNumber(s.DamageMult)))
	}

	if len(parts) == 0 {
		return strings.TrimPrefix(sentence("This spell has", modifiers), " ")
	}
	return "Deals " + strings.Join(parts, " and ") + "." + sentence("This spell has", modifiers)
}
