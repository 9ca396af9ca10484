package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(t *testing.T, endpoint http.HandlerFunc) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestReadyEndpoint_GateDown(t *testing.T) {
	h := New()

	code, body := probe(t, h.ReadyEndpoint)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unavailable", body["status"])
}

func TestReadyEndpoint_GateUp(t *testing.T) {
	h := New()
	h.SetReady(true)

	code, body := probe(t, h.ReadyEndpoint)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestFailingCheckMakesProbeUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := New()
	h.SetReady(true)
	h.AddReadinessCheck("catalog", time.Second, func(context.Context) error {
		return errors.New("store down")
	})
	h.Start(ctx, time.Hour)
	defer h.Stop()

	code, body := probe(t, h.ReadyEndpoint)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "store down", checks["catalog"])
}

func TestPassingChecks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := New()
	h.SetReady(true)
	h.AddLivenessCheck("goroutines", time.Second, GoroutineCountCheck(100000))
	h.AddReadinessCheck("noop", time.Second, func(context.Context) error { return nil })
	h.Start(ctx, time.Hour)
	defer h.Stop()

	liveCode, _ := probe(t, h.LiveEndpoint)
	readyCode, body := probe(t, h.ReadyEndpoint)

	assert.Equal(t, http.StatusOK, liveCode)
	assert.Equal(t, http.StatusOK, readyCode)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "ok", checks["noop"])
}
