package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/service"
)

const sentimentSystemPrompt = `You are a sentiment classifier for movie reviews.
Reply with a JSON object of the form {"label": "POSITIVE" or "NEGATIVE", "score": <confidence between 0 and 1>}.`

// OpenAIClassifier classifies text with a chat completion model in JSON mode
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier creates a classifier against the OpenAI API, or any
// compatible endpoint when baseURL is set
func NewOpenAIClassifier(apiKey, baseURL, model string) *OpenAIClassifier {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Classify classifies a single text
func (c *OpenAIClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: sentimentSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 50,
		User:      requestID,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyPrediction
	}

	var result service.ClassificationResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("failed to decode model reply: %w", err)
	}
	if result.Label == "" {
		return nil, ErrEmptyPrediction
	}

	result.Label = strings.ToUpper(strings.TrimSpace(result.Label))
	result.Score = math.Max(0, math.Min(1, result.Score))
	return &result, nil
}

// ClassifyBatch classifies texts one completion at a time
func (c *OpenAIClassifier) ClassifyBatch(ctx context.Context, texts []string, requestID string) ([]*service.ClassificationResult, error) {
	results := make([]*service.ClassificationResult, len(texts))
	for i, text := range texts {
		result, err := c.Classify(ctx, text, requestID)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		results[i] = result
	}
	return results, nil
}
