package handlers

import (
	"github.com/stockpilot/dashboard/internal/models"
)

// demoProducts is the substitution set shown when the stock service cannot be
// reached and no snapshot exists yet.
func demoProducts() []models.Product {
	return []models.Product{
		{
			ID:           "DEMO001",
			Name:         "Laptop Dell XPS",
			Quantity:     15,
			Price:        999.00,
			MinThreshold: 5,
			Category:     "Electronics",
			Description:  "High-performance laptop",
		},
		{
			ID:           "DEMO002",
			Name:         "Wireless Mouse",
			Quantity:     2,
			Price:        25.00,
			MinThreshold: 10,
			Category:     "Electronics",
			Description:  "Ergonomic wireless mouse",
		},
		{
			ID:           "DEMO003",
			Name:         "Gaming Keyboard",
			Quantity:     0,
			Price:        50.00,
			MinThreshold: 5,
			Category:     "Electronics",
			Description:  "Mechanical gaming keyboard",
		},
		{
			ID:           "DEMO004",
			Name:         "iPhone 15",
			Quantity:     8,
			Price:        799.00,
			MinThreshold: 3,
			Category:     "Electronics",
			Description:  "Latest iPhone model",
		},
	}
}
