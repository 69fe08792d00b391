package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/dashboard/internal/models"
)

func TestAIClient_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how much stock?", req.Message)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"Plenty of stock.","context":"AI-powered response"}`))
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, time.Second)
	answer, err := c.Chat(context.Background(), "how much stock?")

	require.NoError(t, err)
	assert.Equal(t, "Plenty of stock.", answer)
}

func TestAIClient_Chat_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, time.Second)
	_, err := c.Chat(context.Background(), "hello")

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestAIClient_Recommendations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recommendations":[{"product_id":"P1","product_name":"Mouse","current_quantity":2,"recommended_order":30,"urgency":"High","estimated_cost":750}]}`))
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, time.Second)
	recs, err := c.Recommendations(context.Background())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, models.UrgencyHigh, recs[0].Urgency)
	assert.Equal(t, 30, recs[0].RecommendedOrder)
}

func TestAIClient_Estimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/estimate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"estimations":[{"product_id":"P1","product_name":"Mouse","current_stock":2,"estimated_weekly_demand":8,"urgency_level":"High"}]}`))
	}))
	defer srv.Close()

	c := NewAIClient(srv.URL, time.Second)
	estimations, err := c.Estimate(context.Background())

	require.NoError(t, err)
	require.Len(t, estimations, 1)
	assert.Equal(t, 8, estimations[0].EstimatedWeeklyDemand)
}
