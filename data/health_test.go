package data_test

import (
	"context"
	"testing"

	"github.com/ncobase/yatube/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	d := testdb.New(t)

	require.NoError(t, d.Ping(context.Background()))

	health, ok := d.Health(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "healthy", health["status"])

	services := health["services"].(map[string]any)
	assert.Contains(t, services, "database")
	assert.NotContains(t, services, "redis")
}

func TestHealthAfterClose(t *testing.T) {
	d := testdb.New(t)
	require.NoError(t, d.Close())

	health, ok := d.Health(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "degraded", health["status"])
	assert.Error(t, d.Ping(context.Background()))
}
