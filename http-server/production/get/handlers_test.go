package get

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

// MockLoader implements the Loader interface for tests.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, dateFrom, dateTo string) ([]storage.ProductionRecord, error) {
	args := m.Called(ctx, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductionRecord), args.Error(1)
}

func i64(v int64) *int64 { return &v }

func fixtureRows() []storage.ProductionRecord {
	return []storage.ProductionRecord{
		{ProductionDate: "2024-01-01", Line: "A", Category: "TOPS", StyleNumber: "S1", T0830: i64(5), DailyTotal: i64(100)},
		{ProductionDate: "2024-01-01", Line: "B", Category: "TOPS", StyleNumber: "S2", T0830: i64(7), DailyTotal: i64(200)},
	}
}

func TestGetSummary_Success(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(fixtureRows(), nil)

	handler := GetSummary(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/summary?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseSummary
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(300), resp.KPI.TotalOutput)
	assert.Len(t, resp.TopStyles, 2)
	assert.Equal(t, "S2", resp.TopStyles[0].StyleNumber)

	loader.AssertExpectations(t)
}

func TestGetSummary_ClientSideLineFilter(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(fixtureRows(), nil)

	handler := GetSummary(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/summary?date_from=2024-01-01&line=A", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp ResponseSummary
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	// Only the date range goes to the store; the line filter narrows here.
	assert.Equal(t, int64(100), resp.KPI.TotalOutput)
}

func TestGetSummary_NoData(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return([]storage.ProductionRecord{}, nil)

	handler := GetSummary(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/summary?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseSummary
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "no_data", resp.Status)
}

func TestGetSummary_TableMissing(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(nil, fmt.Errorf("storage.postgres.FetchProduction: public.production_data: %w", storage.ErrTableNotFound))

	handler := GetSummary(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/summary?date_from=2024-01-01&locale=EN", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp ResponseError
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "production_data")
}

func TestGetSummary_StorageError(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(nil, errors.New("connection refused"))

	handler := GetSummary(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/summary?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetSummary_InvalidDate(t *testing.T) {
	loader := new(MockLoader)
	handler := GetSummary(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/summary?date_from=01-01-2024", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	loader.AssertNotCalled(t, "Load")
}

func TestGetProduction_DateToDefaultsToDateFrom(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(fixtureRows(), nil)

	handler := GetProduction(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	loader.AssertExpectations(t)
}

func TestGetHourlyTrend_MeltsRows(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(fixtureRows(), nil)

	handler := GetHourlyTrend(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/hourly?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp ResponseHourly
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Len(t, resp.Points, 1)
	assert.Equal(t, "08:30", resp.Points[0].TimeLabel)
	assert.Equal(t, int64(12), resp.Points[0].Qty)
}

func TestGetDetailGrid_TopStylesLead(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(fixtureRows(), nil)

	handler := GetDetailGrid(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/detail?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp ResponseDetail
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, []string{"08:30"}, resp.Grid.Columns)
	assert.Len(t, resp.Grid.Rows, 2)
	// S2 has the larger daily total, so it leads the grid.
	assert.Equal(t, "S2", resp.Grid.Rows[0].StyleNumber)
}

func TestGetFilterOptions(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "2024-01-01", "2024-01-01").
		Return(fixtureRows(), nil)

	handler := GetFilterOptions(slog.Default(), loader)

	req := httptest.NewRequest(http.MethodGet, "/api/production/options?date_from=2024-01-01", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp struct {
		Lines      []string `json:"lines"`
		Categories []string `json:"categories"`
		Styles     []string `json:"styles"`
	}
	assert.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, []string{"A", "B"}, resp.Lines)
	assert.Equal(t, []string{"TOPS"}, resp.Categories)
	assert.Equal(t, []string{"S1", "S2"}, resp.Styles)
}
