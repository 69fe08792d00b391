package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot/dashboard/internal/models"
	"github.com/stockpilot/dashboard/internal/stock"
)

// refreshSnapshot reloads the repository from the stock service. The snapshot
// is always replaced wholesale; there is no incremental merge.
func refreshSnapshot(ctx context.Context) error {
	products, err := stockSvc.GetProducts(ctx)
	if err != nil {
		return err
	}
	productRepo.ReplaceAll(products)
	return nil
}

func snapshotResult(fallback bool, notice string) ProductsResult {
	products := productRepo.GetAll()
	result := ProductsResult{
		Products: make([]ProductResponse, len(products)),
		Stats:    stock.ComputeStats(products),
		Fallback: fallback,
		Notice:   notice,
	}
	for i, p := range products {
		result.Products[i] = ProductResponse{
			Product:  p,
			Status:   stock.QuantityStatus(p.Quantity, p.MinThreshold),
			LowStock: stock.IsLowStock(p),
		}
	}
	return result
}

// LoadProductsHandler godoc
// @Summary Load the product grid and aggregate stats
// @Description Fetches products from the stock service and replaces the local snapshot. When the service is unreachable the last snapshot is served, or demo data if none exists yet.
// @Tags products
// @Produce json
// @Success 200 {object} ProductsResult
// @Router /dashboard/products [get]
func LoadProductsHandler(w http.ResponseWriter, r *http.Request) {
	if err := refreshSnapshot(r.Context()); err != nil {
		outageLog.Record("stock", "get products", err)
		log.Printf("Failed to load products, serving fallback: %v", err)

		if len(productRepo.GetAll()) == 0 {
			productRepo.ReplaceAll(demoProducts())
		}
		writeJSON(w, http.StatusOK, snapshotResult(true, "Failed to load products. Using locally cached data."))
		return
	}

	writeJSON(w, http.StatusOK, snapshotResult(false, ""))
}

func productFromRequest(req ProductRequest) models.Product {
	threshold := req.MinThreshold
	if threshold == 0 {
		threshold = 5
	}
	category := req.Category
	if category == "" {
		category = "General"
	}
	return models.Product{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Price:        req.Price,
		MinThreshold: threshold,
		Category:     category,
		Description:  req.Description,
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Proxies the create to the stock service, then reloads the snapshot from it.
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := stockSvc.CreateProduct(r.Context(), productFromRequest(req))
	if err != nil {
		outageLog.Record("stock", "create product", err)
		log.Printf("Failed to create product: %v", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Failed to add product. Please try again."})
		return
	}

	// The remote write is the source of truth; reload, or on a failed reload
	// fold the confirmed record into the stale snapshot.
	if err := refreshSnapshot(r.Context()); err != nil {
		outageLog.Record("stock", "get products", err)
		productRepo.Upsert(created)
	}

	writeJSON(w, http.StatusCreated, ProductResponse{
		Product:  created,
		Status:   stock.QuantityStatus(created.Quantity, created.MinThreshold),
		LowStock: stock.IsLowStock(created),
	})
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := stockSvc.UpdateProduct(r.Context(), id, productFromRequest(req))
	if err != nil {
		outageLog.Record("stock", "update product", err)
		log.Printf("Failed to update product %s: %v", id, err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Failed to update product. Please try again."})
		return
	}

	if err := refreshSnapshot(r.Context()); err != nil {
		outageLog.Record("stock", "get products", err)
		productRepo.Upsert(updated)
	}

	writeJSON(w, http.StatusOK, ProductResponse{
		Product:  updated,
		Status:   stock.QuantityStatus(updated.Quantity, updated.MinThreshold),
		LowStock: stock.IsLowStock(updated),
	})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	if err := stockSvc.DeleteProduct(r.Context(), id); err != nil {
		outageLog.Record("stock", "delete product", err)
		log.Printf("Failed to delete product %s: %v", id, err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Failed to delete product. Please try again."})
		return
	}

	if err := refreshSnapshot(r.Context()); err != nil {
		outageLog.Record("stock", "get products", err)
		productRepo.Remove(id)
	}

	w.WriteHeader(http.StatusNoContent)
}
