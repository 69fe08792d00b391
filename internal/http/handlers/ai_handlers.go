package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/stockpilot/dashboard/internal/stock"
)

// RecommendationsHandler godoc
// @Summary Reorder recommendations
// @Description Asks the AI service for restocking recommendations. When it is unreachable a deterministic local heuristic runs over the current snapshot. The remote response is authoritative and passed through unmodified.
// @Tags ai
// @Produce json
// @Success 200 {object} RecommendationsResult
// @Router /dashboard/recommendations [post]
func RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	recs, err := aiSvc.Recommendations(r.Context())
	if err != nil {
		outageLog.Record("ai", "recommendations", err)
		log.Printf("Failed to get recommendations, deriving locally: %v", err)

		writeJSON(w, http.StatusOK, RecommendationsResult{
			Recommendations: stock.Recommend(productRepo.GetAll()),
			Fallback:        true,
			Notice:          "AI service unavailable. Recommendations derived from the last snapshot.",
		})
		return
	}

	writeJSON(w, http.StatusOK, RecommendationsResult{Recommendations: recs})
}

// ChatHandler godoc
// @Summary Chat with the inventory assistant
// @Description Forwards the message to the AI service; when it is unreachable a keyword-matching responder answers from the current snapshot.
// @Tags ai
// @Accept json
// @Produce json
// @Param message body ChatRequest true "User message"
// @Success 200 {object} ChatResult
// @Failure 400 {string} string "Invalid input"
// @Router /dashboard/chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	answer, err := aiSvc.Chat(r.Context(), req.Message)
	if err != nil {
		outageLog.Record("ai", "chat", err)
		log.Printf("Chat service unavailable, answering locally: %v", err)

		writeJSON(w, http.StatusOK, ChatResult{
			Response: stock.FallbackResponse(req.Message, productRepo.GetAll()),
			Fallback: true,
		})
		return
	}

	writeJSON(w, http.StatusOK, ChatResult{Response: answer})
}

// EstimateHandler godoc
// @Summary Demand estimations for low-stock products
// @Description Asks the AI service for demand estimations; when it is unreachable a deterministic local estimator runs over the current snapshot.
// @Tags ai
// @Produce json
// @Success 200 {object} EstimatesResult
// @Router /dashboard/estimate [post]
func EstimateHandler(w http.ResponseWriter, r *http.Request) {
	estimations, err := aiSvc.Estimate(r.Context())
	if err != nil {
		outageLog.Record("ai", "estimate", err)
		log.Printf("Failed to get estimations, deriving locally: %v", err)

		writeJSON(w, http.StatusOK, EstimatesResult{
			Estimations: stock.EstimateDemand(productRepo.GetAll()),
			Fallback:    true,
			Notice:      "AI service unavailable. Estimations derived from the last snapshot.",
		})
		return
	}

	writeJSON(w, http.StatusOK, EstimatesResult{Estimations: estimations})
}
