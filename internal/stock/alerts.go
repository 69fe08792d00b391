package stock

import (
	"github.com/stockpilot/dashboard/internal/models"
)

// GenerateAlerts derives an alert for every low-stock product. Input order is
// preserved; presentation sorting is the caller's concern. An empty result
// means no product needs attention.
func GenerateAlerts(products []models.Product) []models.Alert {
	alerts := []models.Alert{}
	for _, p := range products {
		if !IsLowStock(p) {
			continue
		}
		severity := models.SeverityLow
		if QuantityStatus(p.Quantity, p.MinThreshold) == StatusOutOfStock {
			severity = models.SeverityCritical
		}
		alerts = append(alerts, models.Alert{
			ProductID:    p.ID,
			Name:         p.Name,
			Quantity:     p.Quantity,
			MinThreshold: p.MinThreshold,
			Severity:     severity,
		})
	}
	return alerts
}
