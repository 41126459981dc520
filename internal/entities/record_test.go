package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

func TestKindFromPath(t *testing.T) {
	testCases := []struct {
		path string
		want entities.Kind
	}{
		{path: "items/weapons/melee/sword.json", want: entities.KindItem},
		{path: "creatures/goblin.json", want: entities.KindCreature},
		{path: "properties/bleed.json", want: entities.KindProperty},
		{path: "spells/fire/fireball.json", want: entities.KindSpell},
		{path: "misc/notes.json", want: entities.KindUnknown},
		{path: "item.json", want: entities.KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.KindFromPath(tc.path))
		})
	}
}

func TestRecordAccessors(t *testing.T) {
	rec, err := entities.Decode([]byte(`{
		"id": 42,
		"name": "Axe",
		"crit": "5",
		"block": 2.5,
		"times": 2.9,
		"empty": "",
		"zero": 0,
		"list": ["a", 1, "b"],
		"none": []
	}`))
	require.NoError(t, err)
	rec.Kind = entities.KindItem

	assert.Equal(t, "42", rec.GetID())
	assert.Equal(t, "item", rec.GetType())
	assert.Equal(t, "Axe", rec.String("name"))
	assert.Equal(t, "", rec.String("id"))
	assert.Equal(t, "5", rec.Text("crit"))

	block, ok := rec.Float("block")
	assert.True(t, ok)
	assert.InDelta(t, 2.5, block, 0.0001)

	_, ok = rec.Float("crit")
	assert.False(t, ok, "numeric strings are not numbers")

	assert.Equal(t, 2, rec.Int("times", 1))
	assert.Equal(t, 1, rec.Int("missing", 1))

	assert.True(t, rec.Truthy("name"))
	assert.True(t, rec.Truthy("crit"))
	assert.False(t, rec.Truthy("empty"))
	assert.False(t, rec.Truthy("zero"))
	assert.False(t, rec.Truthy("none"))
	assert.False(t, rec.Truthy("missing"))

	assert.Equal(t, []string{"a", "b"}, rec.Strings("list"))
}

func TestRecordSetKeepsPosition(t *testing.T) {
	rec := entities.NewRecord()
	rec.Set("a", 1)
	rec.Set("tooltip", []any{})
	rec.Set("b", 2)

	rec.SetTooltip([]string{"one", "two"})
	assert.Equal(t, []string{"a", "tooltip", "b"}, rec.Keys())
	assert.Equal(t, []string{"one", "two"}, rec.Strings("tooltip"))

	assert.True(t, rec.Delete("a"))
	assert.False(t, rec.Delete("a"))
	assert.Equal(t, []string{"tooltip", "b"}, rec.Keys())
}

func TestUnknownKindType(t *testing.T) {
	assert.Equal(t, "record", entities.NewRecord().GetType())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", entities.FormatNumber(5))
	assert.Equal(t, "-3", entities.FormatNumber(-3.0))
	assert.Equal(t, "1.5", entities.FormatNumber(1.5))
	assert.Equal(t, "0.1", entities.FormatNumber(0.1))
}
