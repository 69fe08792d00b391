package handlers

import (
	"github.com/stockpilot/dashboard/internal/models"
	"github.com/stockpilot/dashboard/internal/stock"
)

type ProductRequest struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	MinThreshold int     `json:"min_threshold"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
}

type ProductResponse struct {
	models.Product
	Status   stock.Status `json:"status"`
	LowStock bool         `json:"low_stock"`
}

type ProductsResult struct {
	Products []ProductResponse `json:"products"`
	Stats    stock.Stats       `json:"stats"`
	Fallback bool              `json:"fallback,omitempty"`
	Notice   string            `json:"notice,omitempty"`
}

type AlertsResult struct {
	Alerts   []models.Alert `json:"alerts"`
	Count    int            `json:"count"`
	Fallback bool           `json:"fallback,omitempty"`
	Notice   string         `json:"notice,omitempty"`
}

type RecommendationsResult struct {
	Recommendations []models.Recommendation `json:"recommendations"`
	Fallback        bool                    `json:"fallback,omitempty"`
	Notice          string                  `json:"notice,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResult struct {
	Response string `json:"response"`
	Fallback bool   `json:"fallback,omitempty"`
}

type EstimatesResult struct {
	Estimations []models.Estimate `json:"estimations"`
	Fallback    bool              `json:"fallback,omitempty"`
	Notice      string            `json:"notice,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
