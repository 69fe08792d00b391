package handlers

import (
	"context"

	"github.com/stockpilot/dashboard/internal/models"
	"github.com/stockpilot/dashboard/internal/outage"
	"github.com/stockpilot/dashboard/internal/repo"
)

// StockService is the remote stock API as the handlers consume it.
type StockService interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetAlerts(ctx context.Context) ([]models.Alert, error)
}

// AIService is the remote AI assistant as the handlers consume it.
type AIService interface {
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
	Chat(ctx context.Context, message string) (string, error)
	Estimate(ctx context.Context) ([]models.Estimate, error)
}

var (
	productRepo repo.ProductRepository
	stockSvc    StockService
	aiSvc       AIService
	outageLog   *outage.Log
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetStockService(s StockService) {
	stockSvc = s
}

func SetAIService(s AIService) {
	aiSvc = s
}

func SetOutageLog(l *outage.Log) {
	outageLog = l
}
