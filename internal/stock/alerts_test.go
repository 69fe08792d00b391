package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/dashboard/internal/models"
)

func TestGenerateAlerts_Empty(t *testing.T) {
	assert.Empty(t, GenerateAlerts([]models.Product{}))
}

func TestGenerateAlerts_Scenario(t *testing.T) {
	products := []models.Product{
		{ID: "A", Name: "Keyboard", Quantity: 0, MinThreshold: 5, Price: 10},
		{ID: "B", Name: "Monitor", Quantity: 15, MinThreshold: 5, Price: 20},
	}

	alerts := GenerateAlerts(products)

	require.Len(t, alerts, 1)
	assert.Equal(t, "A", alerts[0].ProductID)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
}

func TestGenerateAlerts_SizeMatchesLowStockCount(t *testing.T) {
	products := []models.Product{
		{ID: "a", Quantity: 0, MinThreshold: 5},
		{ID: "b", Quantity: 5, MinThreshold: 5},
		{ID: "c", Quantity: 2, MinThreshold: 10},
		{ID: "d", Quantity: 20, MinThreshold: 5},
	}

	alerts := GenerateAlerts(products)

	want := 0
	for _, p := range products {
		if IsLowStock(p) {
			want++
		}
	}
	assert.Len(t, alerts, want)
}

func TestGenerateAlerts_SeverityMatchesStatus(t *testing.T) {
	products := []models.Product{
		{ID: "a", Quantity: 0, MinThreshold: 5},
		{ID: "b", Quantity: 3, MinThreshold: 5},
		{ID: "c", Quantity: 5, MinThreshold: 5},
	}

	for _, a := range GenerateAlerts(products) {
		if QuantityStatus(a.Quantity, a.MinThreshold) == StatusOutOfStock {
			assert.Equal(t, models.SeverityCritical, a.Severity)
		} else {
			assert.Equal(t, models.SeverityLow, a.Severity)
		}
	}
}

func TestGenerateAlerts_PreservesInputOrder(t *testing.T) {
	products := []models.Product{
		{ID: "z", Quantity: 1, MinThreshold: 5},
		{ID: "m", Quantity: 0, MinThreshold: 5},
		{ID: "a", Quantity: 2, MinThreshold: 5},
	}

	alerts := GenerateAlerts(products)

	require.Len(t, alerts, 3)
	assert.Equal(t, "z", alerts[0].ProductID)
	assert.Equal(t, "m", alerts[1].ProductID)
	assert.Equal(t, "a", alerts[2].ProductID)
}
