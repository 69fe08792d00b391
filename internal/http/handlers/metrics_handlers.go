package handlers

import (
	"log"
	"net/http"

	"github.com/stockpilot/dashboard/internal/stock"
)

// StatsHandler godoc
// @Summary Aggregate dashboard figures
// @Description Computes product count, low-stock count and total stock value from the current snapshot.
// @Tags metrics
// @Produce json
// @Success 200 {object} stock.Stats
// @Router /dashboard/stats [get]
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stock.ComputeStats(productRepo.GetAll()))
}

// OutageSummaryHandler godoc
// @Summary Remote-service outage summary
// @Tags metrics
// @Produce json
// @Success 200 {object} outage.Summary
// @Failure 500 {string} string "Internal error"
// @Router /outages/summary [get]
func OutageSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := outageLog.Summarize(false)
	if err != nil {
		log.Printf("Failed to read outage log: %v", err)
		http.Error(w, "failed to read outage log", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags metrics
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
