package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ann", body["name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"user":  map[string]any{"id": 1, "name": "Ann", "email": "ann@example.com"},
				"token": "tok-123",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Register(context.Background(), "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.True(t, c.LoggedIn())
}

func TestTasksSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"count":   2,
			"data": []map[string]any{
				{"id": 2, "title": "Walk the dog", "priority": "high"},
				{"id": 1, "title": "Buy milk", "priority": "medium", "completed": true},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.token = "tok-123"

	tasks, err := c.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Walk the dog", tasks[0].Title)
	assert.True(t, tasks[1].Completed)
}

func TestErrorEnvelopeBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "invalid credentials",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "ann@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, c.LoggedIn())
}

func TestLogoutDropsToken(t *testing.T) {
	c := New("http://unused")
	c.token = "tok"
	c.Logout()
	assert.False(t, c.LoggedIn())
}
