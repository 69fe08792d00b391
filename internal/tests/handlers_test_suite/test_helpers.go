package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot/dashboard/internal/client"
	api "github.com/stockpilot/dashboard/internal/http"
	handler "github.com/stockpilot/dashboard/internal/http/handlers"
	"github.com/stockpilot/dashboard/internal/models"
	"github.com/stockpilot/dashboard/internal/repo"
)

// fakeStockAPI emulates the remote stock service in-process.
type fakeStockAPI struct {
	mu       sync.Mutex
	products []models.Product
	alerts   []models.Alert
	nextID   int
	srv      *httptest.Server
}

func newFakeStockAPI(products []models.Product) *fakeStockAPI {
	f := &fakeStockAPI{products: products, nextID: 1}

	r := chi.NewRouter()
	r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeBody(w, http.StatusOK, map[string]any{"products": f.products, "count": len(f.products)})
	})
	r.Post("/products", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var p models.Product
		json.NewDecoder(req.Body).Decode(&p)
		p.ID = fmt.Sprintf("GEN%03d", f.nextID)
		f.nextID++
		f.products = append(f.products, p)
		writeBody(w, http.StatusCreated, map[string]any{"message": "Product created successfully", "product": p})
	})
	r.Put("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := chi.URLParam(req, "id")
		var p models.Product
		json.NewDecoder(req.Body).Decode(&p)
		for i := range f.products {
			if f.products[i].ID == id {
				p.ID = id
				f.products[i] = p
				writeBody(w, http.StatusOK, map[string]any{"message": "Product updated successfully", "product": p})
				return
			}
		}
		http.Error(w, "product not found", http.StatusNotFound)
	})
	r.Delete("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := chi.URLParam(req, "id")
		for i := range f.products {
			if f.products[i].ID == id {
				f.products = append(f.products[:i], f.products[i+1:]...)
				writeBody(w, http.StatusOK, map[string]any{"message": "Product deleted successfully"})
				return
			}
		}
		http.Error(w, "product not found", http.StatusNotFound)
	})
	r.Get("/alerts", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeBody(w, http.StatusOK, map[string]any{"alerts": f.alerts, "count": len(f.alerts)})
	})

	f.srv = httptest.NewServer(r)
	return f
}

// fakeAIAPI emulates the remote AI service with canned responses.
type fakeAIAPI struct {
	recommendations []models.Recommendation
	chatResponse    string
	estimations     []models.Estimate
	srv             *httptest.Server
}

func newFakeAIAPI() *fakeAIAPI {
	f := &fakeAIAPI{}

	r := chi.NewRouter()
	r.Post("/recommendations", func(w http.ResponseWriter, req *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{"recommendations": f.recommendations})
	})
	r.Post("/chat", func(w http.ResponseWriter, req *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{"response": f.chatResponse})
	})
	r.Post("/estimate", func(w http.ResponseWriter, req *http.Request) {
		writeBody(w, http.StatusOK, map[string]any{"estimations": f.estimations})
	})

	f.srv = httptest.NewServer(r)
	return f
}

func writeBody(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// deadServerURL returns a URL nothing is listening on.
func deadServerURL() string {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	return url
}

var productRepo *repo.InMemoryProductRepository

// setup wires a fresh repository and clients against the given fake services
// and returns the dashboard router. Pass an empty URL to point a client at a
// dead server.
func setup(stockURL, aiURL string) http.Handler {
	if stockURL == "" {
		stockURL = deadServerURL()
	}
	if aiURL == "" {
		aiURL = deadServerURL()
	}

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
	handler.SetStockService(client.NewStockClient(stockURL, time.Second))
	handler.SetAIService(client.NewAIClient(aiURL, time.Second))
	handler.SetOutageLog(nil)

	return api.NewRouter(nil)
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "P1", Name: "Wireless Mouse", Quantity: 2, Price: 25.00, MinThreshold: 10, Category: "Electronics"},
		{ID: "P2", Name: "Laptop Dell XPS", Quantity: 15, Price: 999.00, MinThreshold: 5, Category: "Electronics"},
		{ID: "P3", Name: "Gaming Keyboard", Quantity: 0, Price: 50.00, MinThreshold: 5, Category: "Electronics"},
	}
}
