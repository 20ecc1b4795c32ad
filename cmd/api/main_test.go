package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/backend/internal/database"

	"task-manager/backend/testutil"
)

func TestNewServer(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.HTTPPort = "8081"

	srv := newServer(cfg, http.NotFoundHandler())
	assert.Equal(t, ":8081", srv.Addr)
	assert.NotZero(t, srv.ReadTimeout)
	assert.NotZero(t, srv.WriteTimeout)
	assert.NotNil(t, srv.Handler)
}

func TestCloseDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, closeDatabase(db))
	assert.Error(t, database.Ping(context.Background(), db))
}
