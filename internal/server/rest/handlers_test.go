package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		BcryptCost:            4,
	}
	rm := repomanager.NewMemoryRepositoryManager()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	s, err := NewServer(":0", logger, services.NewUserService(rm, cfg), services.NewTaskService(rm))
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func registerAnn(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := payload["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, payload := doJSON(t, ts, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", payload["status"])
}

func TestRegisterLoginAndMe(t *testing.T) {
	ts := newTestServer(t)

	token := registerAnn(t, ts)

	// Registration response never carries the password hash.
	resp, payload := doJSON(t, ts, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := payload["data"].(map[string]any)
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")

	// Login with the same credentials works and mints a usable token.
	resp, payload = doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loginToken := payload["data"].(map[string]any)["token"].(string)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/auth/me", loginToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	registerAnn(t, ts)

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Ann Again", "email": "a@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestRegister_ValidationFailure(t *testing.T) {
	ts := newTestServer(t)

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "A", "email": "not-an-email", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, payload["details"], 3)
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	registerAnn(t, ts)

	respUnknown, payloadUnknown := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ghost@x.com", "password": "secret1",
	})
	respWrongPw, payloadWrongPw := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong!",
	})

	// Unknown account and wrong password are indistinguishable on the wire.
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrongPw.StatusCode)
	assert.Equal(t, payloadUnknown["error"], payloadWrongPw["error"])
}

func TestTasks_CreateAndListScenario(t *testing.T) {
	ts := newTestServer(t)

	token := registerAnn(t, ts)

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/tasks", token, map[string]string{
		"title": "Buy milk",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := payload["data"].(map[string]any)
	assert.Equal(t, "Buy milk", created["title"])
	assert.Equal(t, false, created["completed"])
	assert.Equal(t, "medium", created["priority"])

	resp, payload = doJSON(t, ts, http.MethodGet, "/api/v1/tasks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["count"])
	list := payload["data"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "Buy milk", list[0].(map[string]any)["title"])
}

func TestTasks_ListFilters(t *testing.T) {
	ts := newTestServer(t)

	token := registerAnn(t, ts)

	for _, task := range []map[string]string{
		{"title": "Buy milk", "priority": "high"},
		{"title": "Walk dog", "description": "around the park"},
	} {
		resp, _ := doJSON(t, ts, http.MethodPost, "/api/v1/tasks", token, task)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, payload := doJSON(t, ts, http.MethodGet, "/api/v1/tasks?priority=high", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["count"])

	resp, payload = doJSON(t, ts, http.MethodGet, "/api/v1/tasks?search=PARK", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["count"])

	resp, payload = doJSON(t, ts, http.MethodGet, "/api/v1/tasks?completed=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), payload["count"])
}

func TestTasks_UpdateCompletedOnly(t *testing.T) {
	ts := newTestServer(t)

	token := registerAnn(t, ts)

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/tasks", token, map[string]string{
		"title": "Buy milk",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int64(payload["data"].(map[string]any)["id"].(float64))

	resp, payload = doJSON(t, ts, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d", id), token, map[string]any{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := payload["data"].(map[string]any)
	assert.Equal(t, true, updated["completed"])
	assert.Equal(t, "Buy milk", updated["title"])
}

func TestTasks_CrossUserAccessIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	tokenA := registerAnn(t, ts)

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/tasks", tokenA, map[string]string{
		"title": "owned by A",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int64(payload["data"].(map[string]any)["id"].(float64))

	resp, payload = doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Bob", "email": "b@x.com", "password": "secret2",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	tokenB := payload["data"].(map[string]any)["token"].(string)

	// B probing A's task looks exactly like a missing task.
	resp, _ = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", id), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, payload = doJSON(t, ts, http.MethodGet, "/api/v1/tasks", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), payload["count"])
}

func TestTasks_DeleteTwice(t *testing.T) {
	ts := newTestServer(t)

	token := registerAnn(t, ts)

	resp, payload := doJSON(t, ts, http.MethodPost, "/api/v1/tasks", token, map[string]string{
		"title": "Buy milk",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int64(payload["data"].(map[string]any)["id"].(float64))

	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTasks_RequireAuth(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, ts, http.MethodGet, "/api/v1/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/tasks", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
