package models

// Product represents one inventory item as exchanged with the stock service.
type Product struct {
	ID           string  `json:"product_id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	MinThreshold int     `json:"min_threshold"`
	Category     string  `json:"category,omitempty"`
	Description  string  `json:"description,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// AlertSeverity classifies a stock alert. Critical means out of stock.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityLow      AlertSeverity = "low"
)

// Alert is derived from a low-stock product; it is never stored.
type Alert struct {
	ProductID    string        `json:"product_id"`
	Name         string        `json:"name"`
	Quantity     int           `json:"quantity"`
	MinThreshold int           `json:"min_threshold"`
	Severity     AlertSeverity `json:"severity"`
}

// Urgency is the ordinal reorder priority used by recommendations and
// estimates. It is distinct from alert severity.
type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyHigh     Urgency = "High"
	UrgencyMedium   Urgency = "Medium"
)

// Recommendation is a reorder suggestion for a low-stock product.
type Recommendation struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	CurrentQuantity  int     `json:"current_quantity"`
	RecommendedOrder int     `json:"recommended_order"`
	Urgency          Urgency `json:"urgency"`
	EstimatedCost    float64 `json:"estimated_cost"`
}

// Estimate is a demand forecast for a low-stock product.
type Estimate struct {
	ProductID             string  `json:"product_id"`
	ProductName           string  `json:"product_name"`
	CurrentStock          int     `json:"current_stock"`
	EstimatedWeeklyDemand int     `json:"estimated_weekly_demand"`
	DaysUntilStockout     int     `json:"estimated_days_until_stockout"`
	UrgencyLevel          Urgency `json:"urgency_level"`
}
