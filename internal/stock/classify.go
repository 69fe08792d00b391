package stock

import (
	"github.com/shopspring/decimal"

	"github.com/stockpilot/dashboard/internal/models"
)

// Status is the quantity tier of a product relative to its reorder threshold.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLow        Status = "low"
	StatusMedium     Status = "medium"
	StatusGood       Status = "good"
)

// QuantityStatus classifies a quantity against a threshold. The four tiers
// partition the non-negative integers for any fixed threshold; with a zero
// threshold every positive quantity lands in good.
func QuantityStatus(quantity, minThreshold int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minThreshold:
		return StatusLow
	case quantity <= 2*minThreshold:
		return StatusMedium
	default:
		return StatusGood
	}
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func IsLowStock(p models.Product) bool {
	return p.Quantity <= p.MinThreshold
}

// Stats are the aggregate dashboard figures for one snapshot.
type Stats struct {
	TotalProducts int     `json:"total_products"`
	LowStockCount int     `json:"low_stock_count"`
	TotalValue    float64 `json:"total_value"`
}

// ComputeStats aggregates count, low-stock count and total stock value.
// The value sum is carried in decimal so repeated price additions do not
// accumulate float drift.
func ComputeStats(products []models.Product) Stats {
	s := Stats{TotalProducts: len(products)}
	total := decimal.Zero
	for _, p := range products {
		if IsLowStock(p) {
			s.LowStockCount++
		}
		value := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(value)
	}
	s.TotalValue = total.InexactFloat64()
	return s
}
