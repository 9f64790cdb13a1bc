package get

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
)

func TestGetLocales(t *testing.T) {
	handler := GetLocales(slog.Default(), "KO")

	req := httptest.NewRequest(http.MethodGet, "/api/locales", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp ResponseLocales
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, []string{"KO", "EN"}, resp.Locales)
	assert.Equal(t, "KO", resp.Default)
}

func TestGetLabels_FallsBackToDefaultLocale(t *testing.T) {
	handler := GetLabels(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/labels?locale=FR", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var labels map[string]string
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &labels))
	assert.Equal(t, "데이터가 없습니다", labels["no_data"])
}
