package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Defaults for the Hugging Face Inference API text-classification task
const (
	DefaultHFBaseURL = "https://router.huggingface.co/hf-inference/models"
	DefaultHFModel   = "distilbert/distilbert-base-uncased-finetuned-sst-2-english"
)

// LabelScore is one entry of a text-classification prediction
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceOptions controls how the inference endpoint treats a request
type InferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// InferenceRequest represents a request to the inference endpoint. Inputs is
// either a string or a list of strings.
type InferenceRequest struct {
	Inputs  interface{}       `json:"inputs"`
	Options *InferenceOptions `json:"options,omitempty"`
}

// ErrorResponse represents an error body returned by the inference endpoint
type ErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// HFClient is an HTTP client for a hosted text-classification model
type HFClient struct {
	baseURL      string
	model        string
	token        string
	waitForModel bool
	httpClient   *http.Client
}

// NewHFClient creates a new inference API client
func NewHFClient(baseURL, model, token string, timeout time.Duration, waitForModel bool) *HFClient {
	return &HFClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		model:        model,
		token:        token,
		waitForModel: waitForModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the model identifier the client talks to
func (c *HFClient) Model() string {
	return c.model
}

// Predict sends a single text and returns its label distribution
func (c *HFClient) Predict(ctx context.Context, text, requestID string) ([]LabelScore, error) {
	preds, err := c.do(ctx, text, 1, requestID)
	if err != nil {
		return nil, err
	}
	return preds[0], nil
}

// PredictBatch sends multiple texts in one request and returns one label
// distribution per text, in input order
func (c *HFClient) PredictBatch(ctx context.Context, texts []string, requestID string) ([][]LabelScore, error) {
	if len(texts) == 0 {
		return [][]LabelScore{}, nil
	}
	return c.do(ctx, texts, len(texts), requestID)
}

// Ready runs a probe inference so the model is loaded before real traffic
func (c *HFClient) Ready(ctx context.Context) error {
	if _, err := c.Predict(ctx, "ready", ""); err != nil {
		return fmt.Errorf("model not ready: %w", err)
	}
	return nil
}

func (c *HFClient) do(ctx context.Context, inputs interface{}, n int, requestID string) ([][]LabelScore, error) {
	reqBody := InferenceRequest{Inputs: inputs}
	if c.waitForModel {
		reqBody.Options = &InferenceOptions{WaitForModel: true}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+c.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return decodePredictions(respBody, n)
}

// decodePredictions accepts the nested shape, one label distribution per
// input. A flat list is only accepted for a single input, where it is that
// input's distribution.
func decodePredictions(body []byte, n int) ([][]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) != n {
			return nil, fmt.Errorf("inference API returned %d predictions for %d inputs", len(nested), n)
		}
		return nested, nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if n != 1 {
		return nil, errors.New("inference API returned an unexpected prediction shape")
	}

	return [][]LabelScore{flat}, nil
}
