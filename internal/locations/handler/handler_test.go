package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inquiry_portal_backend/internal/locations/repository"
	"inquiry_portal_backend/internal/locations/service"
	"inquiry_portal_backend/internal/locations/transport"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p, err := repository.Load("")
	require.NoError(t, err)

	r := gin.New()
	New(service.New(p)).RegisterRoutes(r.Group("/api/v1/locations"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCascadingRoutes(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/api/v1/locations/countries")
	require.Equal(t, http.StatusOK, w.Code)
	var countries []transport.CountryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countries))
	assert.NotEmpty(t, countries)

	w = get(r, "/api/v1/locations/countries/ae/states")
	require.Equal(t, http.StatusOK, w.Code)
	var states []transport.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &states))
	assert.Len(t, states, 7)

	w = get(r, "/api/v1/locations/countries/AE/states/DU/cities")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Dubai"`)

	w = get(r, "/api/v1/locations/defaults")
	assert.JSONEq(t, `{"countryCode":"AE","stateCode":"DU"}`, w.Body.String())
}

func TestUnknownCountry(t *testing.T) {
	w := get(newRouter(t), "/api/v1/locations/countries/ZZ/states")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"country not found","code":"not_found"}`, w.Body.String())
}
