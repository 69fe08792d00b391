package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/stockpilot/dashboard/internal/http/handlers"
	"github.com/stockpilot/dashboard/internal/models"
)

func TestAlertsHandler_Remote(t *testing.T) {
	stockAPI := newFakeStockAPI(nil)
	defer stockAPI.srv.Close()
	stockAPI.alerts = []models.Alert{
		{ProductID: "P3", Name: "Gaming Keyboard", Quantity: 0, MinThreshold: 5, Severity: models.SeverityCritical},
	}
	r := setup(stockAPI.srv.URL, "")

	w := doJSON(r, http.MethodGet, "/dashboard/alerts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp handler.AlertsResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.False(t, resp.Fallback)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, models.SeverityCritical, resp.Alerts[0].Severity)
}

func TestAlertsHandler_FallbackDerivesFromSnapshot(t *testing.T) {
	r := setup("", "")
	productRepo.ReplaceAll(seedProducts())

	w := doJSON(r, http.MethodGet, "/dashboard/alerts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp handler.AlertsResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.True(t, resp.Fallback)
	assert.Equal(t, 2, resp.Count)

	byID := map[string]models.Alert{}
	for _, a := range resp.Alerts {
		byID[a.ProductID] = a
	}
	assert.Equal(t, models.SeverityLow, byID["P1"].Severity)
	assert.Equal(t, models.SeverityCritical, byID["P3"].Severity)
}

func TestAlertsHandler_FallbackEmptySnapshot(t *testing.T) {
	r := setup("", "")

	w := doJSON(r, http.MethodGet, "/dashboard/alerts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp handler.AlertsResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Alerts)
}
