package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/dashboard/internal/models"
)

func TestEstimateDemand_Empty(t *testing.T) {
	assert.Empty(t, EstimateDemand([]models.Product{}))
}

func TestEstimateDemand_OnlyLowStockProducts(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "Mouse", Quantity: 2, MinThreshold: 10},
		{ID: "b", Name: "Laptop", Quantity: 15, MinThreshold: 5},
	}

	estimates := EstimateDemand(products)

	require.Len(t, estimates, 1)
	assert.Equal(t, "a", estimates[0].ProductID)
}

func TestEstimateDemand_OutOfStock(t *testing.T) {
	estimates := EstimateDemand([]models.Product{{ID: "a", Quantity: 0, MinThreshold: 5}})

	require.Len(t, estimates, 1)
	assert.Equal(t, models.UrgencyCritical, estimates[0].UrgencyLevel)
	assert.Equal(t, 0, estimates[0].DaysUntilStockout)
	assert.Equal(t, 1, estimates[0].EstimatedWeeklyDemand)
}

func TestEstimateDemand_Deterministic(t *testing.T) {
	products := []models.Product{{ID: "a", Quantity: 4, MinThreshold: 10}}

	first := EstimateDemand(products)
	second := EstimateDemand(products)

	assert.Equal(t, first, second)
}

func TestEstimateDemand_WeeklyDemandIsHalfStock(t *testing.T) {
	estimates := EstimateDemand([]models.Product{{ID: "a", Quantity: 6, MinThreshold: 10}})

	require.Len(t, estimates, 1)
	assert.Equal(t, 3, estimates[0].EstimatedWeeklyDemand)
	assert.Equal(t, 14, estimates[0].DaysUntilStockout)
}
