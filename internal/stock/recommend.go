package stock

import (
	"github.com/shopspring/decimal"

	"github.com/stockpilot/dashboard/internal/models"
)

// Recommend derives reorder suggestions for every low-stock product. It is
// the local fallback for the remote recommendation service; the remote
// response, when available, is authoritative and passed through unmodified.
//
// The urgency boundary quantity <= minThreshold/2 uses real division, so a
// threshold of 5 puts the High boundary at 2.5.
func Recommend(products []models.Product) []models.Recommendation {
	recs := []models.Recommendation{}
	for _, p := range products {
		if !IsLowStock(p) {
			continue
		}
		order := p.MinThreshold * 3
		if order < 10 {
			order = 10
		}

		urgency := models.UrgencyMedium
		switch {
		case p.Quantity == 0:
			urgency = models.UrgencyCritical
		case float64(p.Quantity) <= float64(p.MinThreshold)/2:
			urgency = models.UrgencyHigh
		}

		cost := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(order)))
		recs = append(recs, models.Recommendation{
			ProductID:        p.ID,
			ProductName:      p.Name,
			CurrentQuantity:  p.Quantity,
			RecommendedOrder: order,
			Urgency:          urgency,
			EstimatedCost:    cost.InexactFloat64(),
		})
	}
	return recs
}
