package stock

import (
	"fmt"
	"strings"

	"github.com/stockpilot/dashboard/internal/models"
)

// FallbackResponse answers a free-text inventory question from the snapshot
// alone. It is used when the remote chat service is unreachable. Rules are
// checked in order and the first match wins.
func FallbackResponse(query string, products []models.Product) string {
	q := strings.ToLower(query)

	if strings.Contains(q, "low") || strings.Contains(q, "alert") {
		var names []string
		for _, p := range products {
			if IsLowStock(p) {
				names = append(names, p.Name)
			}
		}
		shown := names
		if len(shown) > 3 {
			shown = shown[:3]
		}
		return fmt.Sprintf("I found %d products with low stock: %s", len(names), strings.Join(shown, ", "))
	}

	if strings.Contains(q, "total") || strings.Contains(q, "count") {
		return fmt.Sprintf("You have %d products in inventory.", len(products))
	}

	if strings.Contains(q, "value") || strings.Contains(q, "worth") {
		return fmt.Sprintf("Your total inventory value is $%.2f.", ComputeStats(products).TotalValue)
	}

	return "I'm here to help with your inventory! Try asking about stock levels, alerts, or product information."
}
