package tooltip

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

const wieldSuffix = "while wielding this weapon."

// ComposeWeapon builds the tooltip lines for a weapon
func (c *composer) ComposeWeapon(ctx context.Context, input *ComposeWeaponInput) (*ComposeOutput, error) {
	if input == nil || input.Weapon == nil {
		return nil, errWeaponRequired
	}
	w := input.Weapon

	var b lineBuilder
	weaponBonuses(&b, w)

	if len(w.Attacks) == 0 {
		return &ComposeOutput{Lines: b.lines(), Composed: true}, nil
	}

	total := 0.0
	for _, atk := range w.Attacks {
		total += attackWeight(atk)
	}

	var conditions []string
	for i, atk := range w.Attacks {
		var alt *entities.Attack
		if i < len(w.VersatileAttacks) {
			alt = &w.VersatileAttacks[i]
		}
		b.block(attackLine(w, atk, alt, percent(attackWeight(atk), total)))
		conditions = append(conditions, atk.PhysicalOnHitProperty, atk.MagicOnHitProperty)
	}

	blurbs, err := propertyBlurbs(ctx, c.properties, conditions...)
	if err != nil {
		return nil, err
	}
	for _, blurb := range blurbs {
		b.block(blurb)
	}

	return &ComposeOutput{Lines: b.lines(), Composed: true}, nil
}

// weaponBonuses adds the passive bonus blocks granted while wielding
func weaponBonuses(b *lineBuilder, w *entities.Weapon) {
	for _, bonus := range []struct {
		value float64
		label string
	}{
		{w.Crit, "critical chance"},
		{w.Block, "block chance"},
		{w.Dodge, "dodge chance"},
		{w.MagicResist, "magic resistance"},
	} {
		if bonus.value != 0 {
			b.block(fmt.Sprintf("You gain %d%% %s %s", int(bonus.value), bonus.label, wieldSuffix))
		}
	}

	var stats []string
	for _, stat := range w.Stats {
		if stat.Value != 0 {
			stats = append(stats, fmt.Sprintf("%s %s", signedNumber(stat.Value), StatAbbrev(stat.Key)))
		}
	}
	if len(stats) > 0 {
		b.block(fmt.Sprintf("You gain %s %s", strings.Join(stats, ", "), wieldSuffix))
	}

	for _, res := range w.Resistances {
		switch {
		case res.Value > 0:
			b.block(fmt.Sprintf("You take %s%% more %s damage %s",
				entities.FormatNumber(res.Value), DamageTypeDisplay(res.Key), wieldSuffix))
		case res.Value < 0:
			b.block(fmt.Sprintf("You take %s%% less %s damage %s",
				entities.FormatNumber(math.Abs(res.Value)), DamageTypeDisplay(res.Key), wieldSuffix))
		}
	}

	switch {
	case w.Accuracy != 0 && w.Accuracy == w.MagicAccuracy:
		b.block(fmt.Sprintf("You gain %s accuracy and magic accuracy %s", signedNumber(w.Accuracy), wieldSuffix))
	default:
		if w.Accuracy != 0 {
			b.block(fmt.Sprintf("You gain %s accuracy %s", signedNumber(w.Accuracy), wieldSuffix))
		}
		if w.MagicAccuracy != 0 {
			b.block(fmt.Sprintf("You gain %s magic accuracy %s", signedNumber(w.MagicAccuracy), wieldSuffix))
		}
	}
}

func attackWeight(atk entities.Attack) float64 {
	if atk.Weight <= 0 {
		return 1
	}
	return atk.Weight
}

// attackLine renders "<Name> (<pct>%): Deals <damage>." plus the modifier
// sentence. alt is the versatile counterpart, if any.
func attackLine(w *entities.Weapon, atk entities.Attack, alt *entities.Attack, pct int) string {
	var versatile entities.Attack
	if alt != nil {
		versatile = *alt
	}

	var parts []string
	if atk.PhysicalDamageDice != "" {
		damageType := w.DamageType
		if atk.HasDamageType {
			damageType = atk.DamageType
		}
		phrase := damagePhrase(
			rangeText(atk.PhysicalDamageDice, atk.Times, versatile.PhysicalDamageDice, versatile.Times),
			PhysicalStat(w),
			DamageTypeDisplay(damageType),
		)
		if atk.PhysicalDamageDice2 != "" && w.DamageType2 != "" {
			phrase += fmt.Sprintf(" and %s %s damage",
				rangeText(atk.PhysicalDamageDice2, atk.Times, versatile.PhysicalDamageDice2, versatile.Times),
				DamageTypeDisplay(w.DamageType2))
		}
		parts = append(parts, phrase)
	}

	if atk.MagicDamageDice != "" {
		element := atk.MagicDamageType
		if w.HasMagicElement {
			element = w.MagicElement
		}
		display := genericMagic
		if element != "" {
			display = DamageTypeDisplay(element)
		}
		phrase := damagePhrase(
			rangeText(atk.MagicDamageDice, atk.Times, versatile.MagicDamageDice, versatile.Times),
			MagicStat(w),
			display,
		)
		if atk.MagicDamageDice2 != "" && w.MagicElement2 != "" {
			phrase += fmt.Sprintf(" and %s %s damage",
				rangeText(atk.MagicDamageDice2, atk.Times, versatile.MagicDamageDice2, versatile.Times),
				DamageTypeDisplay(w.MagicElement2))
		}
		parts = append(parts, phrase)
	}

	line := fmt.Sprintf("%s (%d%%): Deals %s.", atk.Name, pct, strings.Join(parts, " and "))

	var modifiers []string
	if name := atk.OnHitProperty(); name != "" {
		modifiers = append(modifiers, conditionPhrase(name))
	}
	if phrase, ok := critPhrase(atk.CritMod, versatile.CritMod); ok {
		modifiers = append(modifiers, phrase)
	}
	if phrase, ok := bonusPhrase(atk.Accuracy, versatile.Accuracy, "accuracy"); ok {
		modifiers = append(modifiers, phrase)
	}
	if phrase, ok := bonusPhrase(atk.MagicAccuracy, versatile.MagicAccuracy, "magic accuracy"); ok {
		modifiers = append(modifiers, phrase)
	}

	return line + sentence("This attack has", modifiers)
}
