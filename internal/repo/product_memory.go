package repo

import (
	"github.com/stockpilot/dashboard/internal/models"
)

// InMemoryProductRepository is the in-memory implementation of
// ProductRepository. It is only ever mutated from the request goroutine that
// owns a load cycle, mirroring the single event-loop model of the dashboard.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new empty snapshot repository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

var _ ProductRepository = (*InMemoryProductRepository)(nil)

func (r *InMemoryProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ReplaceAll discards the prior snapshot and stores the given products keyed
// by id. On duplicate ids the last occurrence wins.
func (r *InMemoryProductRepository) ReplaceAll(products []models.Product) {
	r.products = []models.Product{}
	for _, p := range products {
		r.Upsert(p)
	}
}

// GetByID retrieves a product by its id.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// Upsert inserts the product or overwrites the existing entry with the same id.
func (r *InMemoryProductRepository) Upsert(product models.Product) {
	if i := r.indexOf(product.ID); i >= 0 {
		r.products[i] = product
		return
	}
	r.products = append(r.products, product)
}

// Remove deletes a product by id. Removing an absent id is a no-op.
func (r *InMemoryProductRepository) Remove(id string) {
	if i := r.indexOf(id); i >= 0 {
		r.products = append(r.products[:i], r.products[i+1:]...)
	}
}

// GetAll returns the current snapshot. Callers must not rely on order.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
