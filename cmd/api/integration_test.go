//go:build integration
// +build integration

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/storage/postgres"
)

// Integration tests that require a real PostgreSQL database
// Run with: go test -tags=integration

func TestPostgresSlotRoundTrip(t *testing.T) {
	cfg := config.Load()

	if testDB := os.Getenv("TEST_DB_NAME"); testDB != "" {
		cfg.DB.Name = testDB
	}

	store, err := postgres.NewStore(cfg)
	require.NoError(t, err, "Should be able to connect to test database")
	defer store.Close()

	require.NoError(t, store.Save("tablingEvents", []string{"integration"}))

	var got []string
	found, err := store.Load("tablingEvents", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"integration"}, got)
}
