package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockpilot/dashboard/internal/client"
	"github.com/stockpilot/dashboard/internal/config"
	api "github.com/stockpilot/dashboard/internal/http"
	"github.com/stockpilot/dashboard/internal/http/handlers"
	rl "github.com/stockpilot/dashboard/internal/http/rate_limiter"
	"github.com/stockpilot/dashboard/internal/outage"
	"github.com/stockpilot/dashboard/internal/repo"
)

var ctx = context.Background()

// @title Stock Dashboard API
// @version 1.0
// @description Dashboard backend that proxies the stock and AI services with deterministic local fallbacks.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	var outageLog *outage.Log
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: could not connect to Redis, outage log disabled: %v", err)
	} else {
		outageLog = outage.NewLog(rdb, ctx)
		go outageLog.StartDailySummary(24 * time.Hour)
	}

	handlers.SetProductRepo(repo.NewInMemoryProductRepository())
	handlers.SetStockService(client.NewStockClient(cfg.StockAPIURL, cfg.HTTPTimeout))
	handlers.SetAIService(client.NewAIClient(cfg.AIAPIURL, cfg.HTTPTimeout))
	handlers.SetOutageLog(outageLog)

	registry := rl.NewRegistry(5, 10)
	go registry.StartCleanupLoop()

	r := api.NewRouter(registry)
	log.Printf("✅ Server running on :%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, r); err != nil {
		log.Fatal(err)
	}
}
