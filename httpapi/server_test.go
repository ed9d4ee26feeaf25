package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/puyo/httpapi"
	"github.com/lixenwraith/puyo/scoreboard"
	"github.com/lixenwraith/puyo/status"
)

type failingStore struct{}

func (failingStore) Load(context.Context) ([]scoreboard.Entry, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Save(context.Context, scoreboard.Entry) error {
	return errors.New("disk on fire")
}

func (failingStore) Close() error { return nil }

func newStore(t *testing.T, entries ...scoreboard.Entry) scoreboard.Store {
	t.Helper()
	store := scoreboard.NewFileStore(filepath.Join(t.TempDir(), "scoreboard.txt"))
	for _, e := range entries {
		require.NoError(t, store.Save(context.Background(), e))
	}
	return store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s := httpapi.New(nil, nil, zerolog.Nop())

	rec := get(t, s.Router(), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestStatus(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get("score.total").Store(360)
	reg.Bools.Get("game.paused").Store(true)
	reg.Strings.Get("game.state").Store("paused")

	s := httpapi.New(reg, nil, zerolog.Nop())
	rec := get(t, s.Router(), "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 360, body["score.total"])
	assert.Equal(t, true, body["game.paused"])
	assert.Equal(t, "paused", body["game.state"])
}

func TestRoutesNotMountedWithoutBackends(t *testing.T) {
	s := httpapi.New(nil, nil, zerolog.Nop())

	for _, path := range []string{"/status", "/scores", "/scores/top", "/nope"} {
		rec := get(t, s.Router(), path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String(), path)
	}
}

func TestScores(t *testing.T) {
	store := newStore(t,
		scoreboard.Entry{Name: "low", Score: 40},
		scoreboard.Entry{Name: "high", Score: 1200},
		scoreboard.Entry{Name: "mid", Score: 500},
	)
	s := httpapi.New(nil, store, zerolog.Nop())

	rec := get(t, s.Router(), "/scores")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []scoreboard.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Equal(t, []scoreboard.Entry{
		{Name: "high", Score: 1200},
		{Name: "mid", Score: 500},
		{Name: "low", Score: 40},
	}, entries)

	rec = get(t, s.Router(), "/scores?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 2)

	rec = get(t, s.Router(), "/scores/top")
	require.Equal(t, http.StatusOK, rec.Code)
	var top scoreboard.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	assert.Equal(t, scoreboard.Entry{Name: "high", Score: 1200}, top)
}

func TestScoresEmpty(t *testing.T) {
	s := httpapi.New(nil, newStore(t), zerolog.Nop())

	rec := get(t, s.Router(), "/scores")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = get(t, s.Router(), "/scores/top")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"no_scores"}`, rec.Body.String())
}

func TestScoresBadLimit(t *testing.T) {
	s := httpapi.New(nil, newStore(t), zerolog.Nop())

	for _, q := range []string{"abc", "-1"} {
		rec := get(t, s.Router(), "/scores?limit="+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.JSONEq(t, `{"error":"bad_limit"}`, rec.Body.String(), q)
	}
}

func TestScoresStoreFailure(t *testing.T) {
	s := httpapi.New(nil, failingStore{}, zerolog.Nop())

	for _, path := range []string{"/scores", "/scores/top"} {
		rec := get(t, s.Router(), path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.JSONEq(t, `{"error":"load_failed"}`, rec.Body.String(), path)
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	s := httpapi.New(nil, nil, zerolog.Nop())
	assert.NoError(t, s.Shutdown(context.Background()))
}
