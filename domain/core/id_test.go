package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()

	assert.False(t, a.IsEmpty())
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a.String())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestRunIDEmpty(t *testing.T) {
	assert.True(t, RunID("").IsEmpty())
	assert.Equal(t, "Age", VarAge.String())
}
