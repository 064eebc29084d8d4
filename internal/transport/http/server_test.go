package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngxtri/wordwheel-server/internal/core"
)

func TestHealth(t *testing.T) {
	logger := testLogger()
	srv := NewServer(":0", &core.Stats{}, logger)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStatusReportsCounters(t *testing.T) {
	stats := &core.Stats{}
	stats.ActiveRooms.Add(2)
	stats.GamesFinished.Add(5)
	stats.GamesSolved.Add(3)
	stats.LobbyJoined.Store(1)

	srv := NewServer(":0", stats, testLogger())

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/status", nil))
	require.Equal(t, 200, rec.Code)

	var snap core.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, int64(2), snap.ActiveRooms)
	assert.Equal(t, int64(5), snap.GamesFinished)
	assert.Equal(t, int64(3), snap.GamesSolved)
	assert.Equal(t, int64(1), snap.LobbyJoined)
}
