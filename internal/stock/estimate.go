package stock

import (
	"github.com/stockpilot/dashboard/internal/models"
)

// EstimateDemand produces a deterministic demand forecast for every low-stock
// product, used when the remote estimation service is unreachable. Weekly
// demand is approximated as half the current stock (at least one unit) and
// days-until-stockout follows from it.
func EstimateDemand(products []models.Product) []models.Estimate {
	estimates := []models.Estimate{}
	for _, p := range products {
		if !IsLowStock(p) {
			continue
		}

		weekly := p.Quantity / 2
		if weekly < 1 {
			weekly = 1
		}

		urgency := models.UrgencyMedium
		switch {
		case p.Quantity == 0:
			urgency = models.UrgencyCritical
		case float64(p.Quantity) <= float64(p.MinThreshold)/2:
			urgency = models.UrgencyHigh
		}

		days := 0
		if p.Quantity > 0 {
			days = p.Quantity * 7 / weekly
		}

		estimates = append(estimates, models.Estimate{
			ProductID:             p.ID,
			ProductName:           p.Name,
			CurrentStock:          p.Quantity,
			EstimatedWeeklyDemand: weekly,
			DaysUntilStockout:     days,
			UrgencyLevel:          urgency,
		})
	}
	return estimates
}
