package repo

import (
	"errors"

	"github.com/stockpilot/dashboard/internal/models"
)

// ErrProductNotFound is returned when a product is not in the snapshot.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository holds the last product snapshot loaded from the stock
// service. It is replaced wholesale on every successful load; writes go to
// the remote service first and the snapshot is reloaded afterwards.
type ProductRepository interface {
	ReplaceAll(products []models.Product)
	GetByID(id string) (models.Product, error)
	Upsert(product models.Product)
	Remove(id string)
	GetAll() []models.Product
}
