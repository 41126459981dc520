package tooltip

import (
	"strings"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

var statAbbrev = map[string]string{
	"STRENGTH":     "STR",
	"DEXTERITY":    "DEX",
	"CONSTITUTION": "CON",
	"INTELLIGENCE": "INT",
	"WISDOM":       "WIS",
	"CHARISMA":     "CHA",
	"LUCK":         "LUCK",
}

var damageTypeDisplay = map[string]string{
	"SLASHING":    "slashing",
	"PIERCING":    "piercing",
	"BLUDGEONING": "bludgeoning",
	"FIRE":        "fire",
	"WATER":       "water",
	"WIND":        "wind",
	"ICE":         "ice",
	"NATURE":      "nature",
	"LIGHTNING":   "lightning",
	"LIGHT":       "light",
	"DARKNESS":    "darkness",
	"TRUE":        "true",
}

const (
	statStrength     = "STR"
	statDexterity    = "DEX"
	statStrOrDex     = "STR or DEX"
	statIntelligence = "INT"
	statChaOrInt     = "CHA or INT"

	// shown when a magic attack has no element
	genericMagic = "magic"
)

// StatAbbrev returns the short form of an ability score. Unknown stats pass
// through unchanged.
func StatAbbrev(stat string) string {
	if abbrev, ok := statAbbrev[stat]; ok {
		return abbrev
	}
	return stat
}

// DamageTypeDisplay returns the prose noun for a damage type
func DamageTypeDisplay(damageType string) string {
	if display, ok := damageTypeDisplay[damageType]; ok {
		return display
	}
	return strings.ToLower(damageType)
}

// PhysicalStat names the stat that scales a weapon's physical damage
func PhysicalStat(w *entities.Weapon) string {
	switch {
	case w.Finesse:
		return statStrOrDex
	case w.WeaponClass == entities.WeaponClassRanged:
		return statDexterity
	default:
		return statStrength
	}
}

// MagicStat names the stat that scales a weapon's magic damage
func MagicStat(w *entities.Weapon) string {
	fallback := statIntelligence
	if w.WeaponClass == entities.WeaponClassMagic && w.WeaponType == entities.WeaponTypeArcane {
		fallback = statChaOrInt
	}
	return joinStats(w.MagicStatBonuses, fallback)
}

// SpellStat names the stat that scales a spell's damage
func SpellStat(s *entities.Spell) string {
	return joinStats(s.StatBonuses, statIntelligence)
}

func joinStats(stats []string, fallback string) string {
	if len(stats) == 0 {
		return fallback
	}
	abbrevs := make([]string, len(stats))
	for i, stat := range stats {
		abbrevs[i] = StatAbbrev(stat)
	}
	return strings.Join(abbrevs, " or ")
}
