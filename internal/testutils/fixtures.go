package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture records written in canonical form. Each ends with a newline, as
// the formatter writes them.
const (
	FixtureBleedProperty = `{
  "id": 1,
  "type": "ON_HIT",
  "name": "Bleed",
  "description": "Loses health each turn.",
  "duration": 3,
  "tooltip": [
    "Take 1d4 slashing damage each turn for 3 turns."
  ]
}
`

	FixtureBurnProperty = `{
  "id": 2,
  "type": "ON_HIT",
  "name": "Burn",
  "description": "Takes fire damage each turn.",
  "duration": 2
}
`

	FixtureSwordWeapon = `{
  "id": 100,
  "name": "Test Sword",
  "itemType": "WEAPON",
  "weaponClass": "MELEE",
  "damageType": "SLASHING",
  "crit": 5,
  "attacks": [
    {
      "name": "Slash",
      "physicalDamageDice": "1d8",
      "physicalOnHitProperty": "Bleed",
      "weight": 3
    },
    {
      "name": "Stab",
      "damageType": "PIERCING",
      "physicalDamageDice": "1d6",
      "critMod": "+10",
      "weight": 1
    }
  ],
  "tooltip": []
}
`

	FixtureFireballSpell = `{
  "id": 200,
  "name": "Fireball",
  "manaCost": 5,
  "damageType": "FIRE",
  "damageDice": "2d6",
  "onHitProperty": "Burn",
  "tooltip": []
}
`
)

// WriteFile writes content to rel under root, creating parent directories,
// and returns the full path
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// CreateDataDir creates a temporary data root holding files, keyed by path
// relative to the root
func CreateDataDir(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		WriteFile(t, root, rel, content)
	}
	return root
}

// ReadFile returns the contents of rel under root
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}
