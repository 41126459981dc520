package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("run").Generate()
	require.True(t, strings.HasPrefix(id, "run_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "run_"))
	assert.NoError(t, err)

	assert.NotEqual(t, id, idgen.NewUUID("run").Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("run")
	assert.Equal(t, "run_1", gen.Generate())
	assert.Equal(t, "run_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
