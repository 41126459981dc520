package tooltip_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
	"github.com/KirkDiggler/rpg-content/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-content/internal/tooltip"
)

// assertWellFormed checks the blank-line layout every tooltip must keep
func assertWellFormed(t *testing.T, lines []string) {
	t.Helper()

	if len(lines) == 0 {
		return
	}
	assert.NotEqual(t, "", lines[0], "tooltip starts with a blank line")
	assert.NotEqual(t, "", lines[len(lines)-1], "tooltip ends with a blank line")
	for i := 1; i < len(lines); i++ {
		if lines[i] == "" && lines[i-1] == "" {
			t.Errorf("adjacent blank lines at %d", i)
		}
	}
}

func TestNewComposer(t *testing.T) {
	_, err := tooltip.NewComposer(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = tooltip.NewComposer(&tooltip.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestComposeDispatch(t *testing.T) {
	ctx := context.Background()

	index, err := properties.NewIndex(&properties.IndexConfig{
		Properties: []*entities.Property{burn},
	})
	require.NoError(t, err)

	composer, err := tooltip.NewComposer(&tooltip.Config{Properties: index})
	require.NoError(t, err)

	testCases := []struct {
		name         string
		record       *entities.Record
		wantComposed bool
		wantLines    []string
	}{
		{
			name: "weapon item",
			record: builders.NewWeaponBuilder("Sword").
				WithNumber("crit", 2).
				Build(),
			wantComposed: true,
			wantLines:    []string{"You gain 2% critical chance while wielding this weapon."},
		},
		{
			name: "spell",
			record: builders.NewSpellBuilder("Ember").
				WithString("damageType", "FIRE").
				WithString("damageDice", "1d4").
				WithString("onHitProperty", "Burn").
				Build(),
			wantComposed: true,
			wantLines: []string{
				"Deals 1-4 + 5 * INT bonus fire damage. This spell has a chance to inflict the Burn condition.",
				"",
				"Burn: Takes fire damage each turn.",
			},
		},
		{
			name: "armor item",
			record: builders.NewRecordBuilder(entities.KindItem).
				WithString("itemType", "ARMOR").
				WithNumber("crit", 2).
				Build(),
		},
		{
			name: "weapon shape outside items",
			record: builders.NewRecordBuilder(entities.KindCreature).
				WithString("itemType", entities.ItemTypeWeapon).
				Build(),
		},
		{
			name:   "property",
			record: builders.NewPropertyBuilder("Burn").Build(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := composer.Compose(ctx, &tooltip.ComposeInput{Record: tc.record})
			require.NoError(t, err)
			assert.Equal(t, tc.wantComposed, out.Composed)
			assert.Equal(t, tc.wantLines, out.Lines)
		})
	}

	_, err = composer.Compose(ctx, &tooltip.ComposeInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDisplayTables(t *testing.T) {
	assert.Equal(t, "STR", tooltip.StatAbbrev("STRENGTH"))
	assert.Equal(t, "LUCK", tooltip.StatAbbrev("LUCK"))
	assert.Equal(t, "SPEED", tooltip.StatAbbrev("SPEED"))

	assert.Equal(t, "bludgeoning", tooltip.DamageTypeDisplay("BLUDGEONING"))
	assert.Equal(t, "true", tooltip.DamageTypeDisplay("TRUE"))
	assert.Equal(t, "poison", tooltip.DamageTypeDisplay("POISON"))

	testCases := []struct {
		name     string
		weapon   entities.Weapon
		physical string
		magic    string
	}{
		{name: "melee default", weapon: entities.Weapon{}, physical: "STR", magic: "INT"},
		{name: "finesse beats ranged", weapon: entities.Weapon{Finesse: true, WeaponClass: entities.WeaponClassRanged}, physical: "STR or DEX", magic: "INT"},
		{name: "ranged", weapon: entities.Weapon{WeaponClass: entities.WeaponClassRanged}, physical: "DEX", magic: "INT"},
		{name: "arcane", weapon: entities.Weapon{WeaponClass: entities.WeaponClassMagic, WeaponType: entities.WeaponTypeArcane}, physical: "STR", magic: "CHA or INT"},
		{name: "other magic", weapon: entities.Weapon{WeaponClass: entities.WeaponClassMagic, WeaponType: "NATURE"}, physical: "STR", magic: "INT"},
		{name: "explicit list wins", weapon: entities.Weapon{WeaponClass: entities.WeaponClassMagic, WeaponType: entities.WeaponTypeArcane, MagicStatBonuses: []string{"WISDOM", "LUCK"}}, physical: "STR", magic: "WIS or LUCK"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.physical, tooltip.PhysicalStat(&tc.weapon))
			assert.Equal(t, tc.magic, tooltip.MagicStat(&tc.weapon))
		})
	}
}
