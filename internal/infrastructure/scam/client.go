// Package scam holds HTTP clients for the two moderation sidecars: the
// scam-classifier model server and the intent (NLU) service.
package scam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// ClassifierClient calls the scam-classifier sidecar.
type ClassifierClient struct {
	baseURL string
	http    *http.Client
}

func NewClassifierClient(baseURL string, timeout time.Duration) *ClassifierClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ClassifierClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Classify posts the message to the model server and returns its verdict.
func (c *ClassifierClient) Classify(ctx context.Context, message string) (*domain.ScamVerdict, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scam classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scam classifier: unexpected status %d", resp.StatusCode)
	}

	var verdict domain.ScamVerdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("scam classifier: decode response: %w", err)
	}
	return &verdict, nil
}

// IntentClient calls the NLU sidecar's model parse endpoint.
type IntentClient struct {
	baseURL string
	http    *http.Client
}

func NewIntentClient(baseURL string, timeout time.Duration) *IntentClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &IntentClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Parse resolves the message's intent. The sidecar nests the intent object,
// so the response is flattened here.
func (c *IntentClient) Parse(ctx context.Context, message string) (*domain.Intent, error) {
	body, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/model/parse", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("intent parser: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("intent parser: unexpected status %d", resp.StatusCode)
	}

	var parsed struct {
		Intent struct {
			Name       string   `json:"name"`
			Confidence *float64 `json:"confidence"`
		} `json:"intent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("intent parser: decode response: %w", err)
	}

	return &domain.Intent{
		Intent:     parsed.Intent.Name,
		Confidence: parsed.Intent.Confidence,
	}, nil
}
