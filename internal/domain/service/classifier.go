package service

import "context"

// ClassificationResult represents the top prediction for a single text
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface for text classification
type Classifier interface {
	// Classify classifies a single text
	Classify(ctx context.Context, text, requestID string) (*ClassificationResult, error)

	// ClassifyBatch classifies multiple texts, one result per text in input order
	ClassifyBatch(ctx context.Context, texts []string, requestID string) ([]*ClassificationResult, error)
}
