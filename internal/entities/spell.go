package entities

import "strconv"

// MaxSpellDamageSlots is how many damage components a spell can carry
const MaxSpellDamageSlots = 4

// SpellDamage is one typed damage component of a spell
type SpellDamage struct {
	Type string
	Dice string

	// BuildUpMod scales status build-up applied by this component
	BuildUpMod    float64
	HasBuildUpMod bool
}

// Spell is the tooltip-relevant view of a spell record
type Spell struct {
	ID   string
	Name string

	Times       int
	ManaCost    float64
	StaminaCost float64

	Damage     [MaxSpellDamageSlots]SpellDamage
	DamageMult float64

	CritMod  string
	Accuracy float64

	OnHitProperty string
	BuffProperty  string
	StatBonuses   []string
}

// NewSpell reads the spell view from a spell record
func NewSpell(rec *Record) *Spell {
	s := &Spell{
		ID:            rec.Text("id"),
		Name:          rec.String("name"),
		Times:         rec.Int("times", defaultTimes),
		CritMod:       rec.Text("critMod"),
		OnHitProperty: rec.String("onHitProperty"),
		BuffProperty:  rec.String("buffProperty"),
		StatBonuses:   rec.Strings("statBonuses"),
		DamageMult:    1,
	}

	s.ManaCost, _ = rec.Float("manaCost")
	s.StaminaCost, _ = rec.Float("staminaCost")
	s.Accuracy, _ = rec.Float("accuracy")
	if mult, ok := rec.Float("damageMult"); ok {
		s.DamageMult = mult
	}

	for i := range s.Damage {
		suffix := slotSuffix(i)
		slot := SpellDamage{
			Type:       rec.String("damageType" + suffix),
			Dice:       rec.String("damageDice" + suffix),
			BuildUpMod: 1,
		}
		if mod, ok := rec.Float("buildUpMod" + suffix); ok {
			slot.BuildUpMod = mod
			slot.HasBuildUpMod = true
		}
		s.Damage[i] = slot
	}

	return s
}

// slotSuffix maps slot 0 to "" and slot n to "n+1", matching damageDice,
// damageDice2, damageDice3 and damageDice4
func slotSuffix(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i + 1)
}
