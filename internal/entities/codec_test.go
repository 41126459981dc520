package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

func TestDecodeKeepsKeyOrder(t *testing.T) {
	rec, err := entities.Decode([]byte(`{"zeta": 1, "alpha": "a", "mid": {"y": true, "x": null}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, rec.Keys())
	assert.Equal(t, []string{"y", "x"}, rec.Object("mid").Keys())
	assert.True(t, rec.Object("mid").Has("x"))
}

func TestDecodeRejects(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "truncated", input: `{"name": "Sword"`},
		{name: "array", input: `[1, 2]`},
		{name: "string", input: `"text"`},
		{name: "empty", input: ``},
		{name: "invalid utf-8", input: "{\"name\": \"bad\xffbyte\"}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entities.Decode([]byte(tc.input))
			require.Error(t, err)
			assert.True(t, errors.IsDataLoss(err))
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	input := `{
  "id": 12,
  "name": "Flämmen Blade",
  "crit": 2.5,
  "finesse": false,
  "rarity": null,
  "stats": {
    "STRENGTH": 3,
    "WISDOM": -1
  },
  "attacks": [
    {
      "name": "Slash",
      "physicalDamageDice": "1d8"
    }
  ],
  "properties": [],
  "resistances": {},
  "tooltip": [
    "Deals <b>fire</b> & more.",
    ""
  ]
}
`
	rec, err := entities.Decode([]byte(input))
	require.NoError(t, err)

	out, err := entities.Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestEncodeEscapes(t *testing.T) {
	rec := entities.NewRecord()
	rec.Set("text", "line\nbreak \"quoted\"")
	rec.Set("count", 3)
	rec.Set("ratio", 0.25)
	rec.Set("lines", []string{"a"})

	out, err := entities.Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"text\": \"line\\nbreak \\\"quoted\\\"\",\n  \"count\": 3,\n  \"ratio\": 0.25,\n  \"lines\": [\n    \"a\"\n  ]\n}\n", string(out))
}

func TestEncodeKeepsLineSeparatorsRaw(t *testing.T) {
	input := "{\n  \"a\": \"line\u2028break\u2029end\",\n  \"b\": \"not\\\\u2028an escape\"\n}\n"

	rec, err := entities.Decode([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "line\u2028break\u2029end", rec.String("a"))
	assert.Equal(t, `not\u2028an escape`, rec.String("b"))

	out, err := entities.Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestEncodeUnsupportedValue(t *testing.T) {
	rec := entities.NewRecord()
	rec.Set("bad", struct{}{})

	_, err := entities.Encode(rec)
	assert.True(t, errors.IsInternal(err))
}
