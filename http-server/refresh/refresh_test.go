package refresh

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Refresh() { f.calls++ }

func TestRefresh_InvalidatesCache(t *testing.T) {
	inv := &fakeInvalidator{}
	handler := Refresh(slog.Default(), inv)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, inv.calls)
	assert.Contains(t, rr.Body.String(), "ok")
}
