package handlers

import (
	"log"
	"net/http"

	"github.com/stockpilot/dashboard/internal/stock"
)

// AlertsHandler godoc
// @Summary Stock alerts for low and out-of-stock products
// @Description Fetches alerts from the stock service; when it is unreachable the alerts are derived locally from the current snapshot.
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsResult
// @Router /dashboard/alerts [get]
func AlertsHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := stockSvc.GetAlerts(r.Context())
	if err != nil {
		outageLog.Record("stock", "get alerts", err)
		log.Printf("Failed to load alerts, deriving locally: %v", err)

		local := stock.GenerateAlerts(productRepo.GetAll())
		writeJSON(w, http.StatusOK, AlertsResult{
			Alerts:   local,
			Count:    len(local),
			Fallback: true,
			Notice:   "Stock service unavailable. Alerts derived from the last snapshot.",
		})
		return
	}

	writeJSON(w, http.StatusOK, AlertsResult{Alerts: alerts, Count: len(alerts)})
}
