package api

import (
	"bytes"
	"encoding/json"
	"github.com/fpawel/ltool/internal/inductor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodePost(t *testing.T) {
	body, _ := json.Marshal(map[string][]string{"bands": {"Green", "Blue", "Yellow"}})
	rec := serve(t, httptest.NewRequest(http.MethodPost, "/api/decode", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var r inductor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, 560.0, r.Value)
	assert.Equal(t, "mH", r.Unit)
	assert.Equal(t, "±20%", r.Tolerance)
	assert.Equal(t, 560000.0, r.RawMicrohenries)
}

func TestDecodeGet(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet,
		"/api/decode?band=Brown&band=Black&band=Red&band=Silver", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var r inductor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "1 mH ±10%", r.Display)
}

func TestDecodeBadBands(t *testing.T) {
	body, _ := json.Marshal(map[string][]string{"bands": {"Gold", "Pink", "Red"}})
	rec := serve(t, httptest.NewRequest(http.MethodPost, "/api/decode", bytes.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Contains(t, e.Error, "band 1")
	assert.Contains(t, e.Error, "band 2")
}

func TestDecodeBadBody(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodPost, "/api/decode", bytes.NewReader([]byte("{"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestColors(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/api/colors", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var xs []inductor.Color
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &xs))
	assert.Equal(t, inductor.Colors(), xs)
}

func TestColorsByRole(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/api/colors/digit", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var xs []inductor.Color
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &xs))
	assert.Contains(t, xs, inductor.Black)
	assert.NotContains(t, xs, inductor.Gold)
	assert.NotContains(t, xs, inductor.Pink)

	rec = serve(t, httptest.NewRequest(http.MethodGet, "/api/colors/multiplier", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &xs))
	assert.Contains(t, xs, inductor.Pink)

	rec = serve(t, httptest.NewRequest(http.MethodGet, "/api/colors/banana", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIndexPage(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Inductor color code")

	rec = serve(t, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, httptest.NewRequest(http.MethodDelete, "/api/decode", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = serve(t, httptest.NewRequest(http.MethodPost, "/api/colors", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler().ServeHTTP(rec, req)
	return rec
}
