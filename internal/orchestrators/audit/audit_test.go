package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/orchestrators/audit"
	"github.com/KirkDiggler/rpg-content/internal/testutils"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "Bleed", want: "bleed"},
		{in: "  Deep   Wound ", want: "deep wound"},
		{in: "FROST\tBITE", want: "frost bite"},
		{in: "   ", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, audit.NormalizeName(tc.in))
		})
	}
}

func TestFindDuplicates(t *testing.T) {
	dir := testutils.CreateDataDir(t, map[string]string{
		"buffs/haste.json":      `{"name": "Haste"}`,
		"debuffs/bleed.json":    testutils.FixtureBleedProperty,
		"debuffs/burn.json":     testutils.FixtureBurnProperty,
		"legacy/BLEED.json":     `{"name": "  bleed "}`,
		"legacy/burning.json":   `{"name": "Burn"}`,
		"legacy/blank.json":     `{"id": 7}`,
		"legacy/broken.json":    `{"name": `,
		"legacy/readme.md":      "Bleed",
		"other/deep/haste.json": `{"name": "haste"}`,
	})

	out, err := audit.FindDuplicates(context.Background(), &audit.FindDuplicatesInput{Dir: dir})
	require.NoError(t, err)

	require.Len(t, out.Duplicates, 3)
	assert.Equal(t, "bleed", out.Duplicates[0].Key)
	assert.Equal(t, []string{"debuffs/bleed.json", "legacy/BLEED.json"}, out.Duplicates[0].Paths)
	assert.Equal(t, "burn", out.Duplicates[1].Key)
	assert.Equal(t, []string{"debuffs/burn.json", "legacy/burning.json"}, out.Duplicates[1].Paths)
	assert.Equal(t, "haste", out.Duplicates[2].Key)
	assert.Equal(t, []string{"buffs/haste.json", "other/deep/haste.json"}, out.Duplicates[2].Paths)

	assert.Equal(t, []string{"legacy/blank.json"}, out.Unnamed)
	require.Len(t, out.Unparsed, 1)
	assert.Equal(t, "legacy/broken.json", out.Unparsed[0].Path)
	assert.True(t, errors.IsDataLoss(out.Unparsed[0].Err))
	assert.True(t, out.HasFindings())
}

func TestFindDuplicatesClean(t *testing.T) {
	dir := testutils.CreateDataDir(t, map[string]string{
		"bleed.json": testutils.FixtureBleedProperty,
		"burn.json":  testutils.FixtureBurnProperty,
	})

	out, err := audit.FindDuplicates(context.Background(), &audit.FindDuplicatesInput{Dir: dir})
	require.NoError(t, err)
	assert.Empty(t, out.Duplicates)
	assert.False(t, out.HasFindings())
}

func TestFindDuplicatesValidation(t *testing.T) {
	_, err := audit.FindDuplicates(context.Background(), nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = audit.FindDuplicates(context.Background(), &audit.FindDuplicatesInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
