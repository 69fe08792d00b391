package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stockpilot/dashboard/internal/models"
)

// AIClient talks to the remote AI assistant service.
type AIClient struct {
	http *resty.Client
}

// NewAIClient creates a client for the AI service at baseURL.
func NewAIClient(baseURL string, timeout time.Duration) *AIClient {
	return &AIClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

type recommendationsEnvelope struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatEnvelope struct {
	Response string `json:"response"`
}

type estimationsEnvelope struct {
	Estimations []models.Estimate `json:"estimations"`
}

// Recommendations asks the AI service for reorder recommendations.
func (c *AIClient) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	var out recommendationsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(struct{}{}).SetResult(&out).Post("/recommendations")
	if err != nil {
		return nil, unavailable("ai", "recommendations", err)
	}
	if resp.IsError() {
		return nil, httpUnavailable("ai", "recommendations", resp)
	}
	return out.Recommendations, nil
}

// Chat sends a free-text message and returns the assistant's answer.
func (c *AIClient) Chat(ctx context.Context, message string) (string, error) {
	var out chatEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(chatRequest{Message: message}).SetResult(&out).Post("/chat")
	if err != nil {
		return "", unavailable("ai", "chat", err)
	}
	if resp.IsError() {
		return "", httpUnavailable("ai", "chat", resp)
	}
	return out.Response, nil
}

// Estimate asks the AI service for demand estimations.
func (c *AIClient) Estimate(ctx context.Context) ([]models.Estimate, error) {
	var out estimationsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(struct{}{}).SetResult(&out).Post("/estimate")
	if err != nil {
		return nil, unavailable("ai", "estimate", err)
	}
	if resp.IsError() {
		return nil, httpUnavailable("ai", "estimate", resp)
	}
	return out.Estimations, nil
}
