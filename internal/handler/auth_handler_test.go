package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"username": "alice", "password": "s3cret-pw", "email": "alice@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/auth/login",
		`{"username": "alice", "password": "s3cret-pw"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile["username"])
	assert.NotContains(t, profile, "password_hash")
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/auth/register",
		`{"username": "bob", "password": "s3cret-pw", "email": "bob@example.com"}`)

	w := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"username": "bob", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/auth/register",
		`{"username": "carol", "password": "s3cret-pw", "email": "carol@example.com"}`)

	w := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"username": "carol", "password": "s3cret-pw", "email": "other@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/auth/profile", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
