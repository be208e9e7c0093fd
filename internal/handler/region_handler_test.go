package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create
	w := doJSON(t, router, http.MethodPost, "/regions",
		`{"NOC": "NEW", "region": "A new region", "notes": null}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "NEW")

	// Read back
	w = doJSON(t, router, http.MethodGet, "/regions/NEW", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"NOC": "NEW", "region": "A new region", "notes": null}`, w.Body.String())

	// Delete
	w = doJSON(t, router, http.MethodDelete, "/regions/NEW", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Region NEW deleted"}`, w.Body.String())

	// Gone
	w = doJSON(t, router, http.MethodGet, "/regions/NEW", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRegionsReturnsArray(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/regions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	doJSON(t, router, http.MethodPost, "/regions", `{"NOC": "GBR", "region": "Great Britain"}`)
	doJSON(t, router, http.MethodPost, "/regions", `{"NOC": "FRA", "region": "France"}`)

	w = doJSON(t, router, http.MethodGet, "/regions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var regions []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regions))
	assert.Len(t, regions, 2)
}

func TestGetRegionNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/regions/ZZZ", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestAddRegionMissingMandatoryField(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/regions", `{"NOC": "NEW"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "region")
	assert.NotEmpty(t, body["region"])
}

func TestAddRegionMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/regions", `{"NOC": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRegionPartialBody(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/regions",
		`{"NOC": "NEW", "region": "A new region", "notes": "original"}`)

	w := doJSON(t, router, http.MethodPatch, "/regions/NEW", `{"notes": "updated"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"NOC": "NEW", "region": "A new region", "notes": "updated"}`, w.Body.String())

	// The change is durable
	w = doJSON(t, router, http.MethodGet, "/regions/NEW", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"NOC": "NEW", "region": "A new region", "notes": "updated"}`, w.Body.String())
}

func TestUpdateRegionNullClearsNotes(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/regions",
		`{"NOC": "NEW", "region": "A new region", "notes": "set"}`)

	w := doJSON(t, router, http.MethodPatch, "/regions/NEW", `{"notes": null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"NOC": "NEW", "region": "A new region", "notes": null}`, w.Body.String())
}

func TestUpdateRegionNotFoundBeforeApply(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/regions/ZZZ", `{"notes": "whatever"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRegionCannotChangePrimaryKey(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/regions", `{"NOC": "NEW", "region": "A new region"}`)

	w := doJSON(t, router, http.MethodPatch, "/regions/NEW", `{"NOC": "OTH"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/regions/NEW", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/regions/OTH", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRegionTwiceReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)
	doJSON(t, router, http.MethodPost, "/regions", `{"NOC": "NEW", "region": "A new region"}`)

	w := doJSON(t, router, http.MethodDelete, "/regions/NEW", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/regions/NEW", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}
