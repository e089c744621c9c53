package client

import (
	"context"
	"errors"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/service"
)

// ErrEmptyPrediction is returned when a backend yields no label for a text
var ErrEmptyPrediction = errors.New("model returned no prediction")

// HFClassifier adapts HFClient to the Classifier interface
type HFClassifier struct {
	client *HFClient
}

// NewHFClassifier creates a new HFClassifier
func NewHFClassifier(client *HFClient) *HFClassifier {
	return &HFClassifier{client: client}
}

// Classify classifies a single text
func (c *HFClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	pred, err := c.client.Predict(ctx, text, requestID)
	if err != nil {
		return nil, err
	}
	return topLabel(pred)
}

// ClassifyBatch classifies multiple texts
func (c *HFClassifier) ClassifyBatch(ctx context.Context, texts []string, requestID string) ([]*service.ClassificationResult, error) {
	preds, err := c.client.PredictBatch(ctx, texts, requestID)
	if err != nil {
		return nil, err
	}

	results := make([]*service.ClassificationResult, len(preds))
	for i, pred := range preds {
		result, err := topLabel(pred)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}

// Ready warms up the remote model
func (c *HFClassifier) Ready(ctx context.Context) error {
	return c.client.Ready(ctx)
}

// topLabel picks the highest scoring label. The first one wins a tie.
func topLabel(pred []LabelScore) (*service.ClassificationResult, error) {
	if len(pred) == 0 {
		return nil, ErrEmptyPrediction
	}

	best := pred[0]
	for _, ls := range pred[1:] {
		if ls.Score > best.Score {
			best = ls
		}
	}

	return &service.ClassificationResult{
		Label: best.Label,
		Score: best.Score,
	}, nil
}
