package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/entity"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/service"
)

// Document scores inside this band around zero are reported as NEUTRAL
const neutralBand = 0.25

type sentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error)
}

// LanguageClassifier classifies text with the Cloud Natural Language API
type LanguageClassifier struct {
	analyzer sentimentAnalyzer
	close    func() error
}

// NewLanguageClassifier creates a Cloud Natural Language client. encodedCreds is
// a base64 encoded service account JSON; when empty, application default
// credentials are used.
func NewLanguageClassifier(ctx context.Context, encodedCreds string) (*LanguageClassifier, error) {
	var opts []option.ClientOption
	if encodedCreds != "" {
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			return nil, fmt.Errorf("failed to decode natural language credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	client, err := language.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create natural language client: %w", err)
	}

	return &LanguageClassifier{analyzer: client, close: client.Close}, nil
}

// Classify classifies a single text
func (c *LanguageClassifier) Classify(ctx context.Context, text, _ string) (*service.ClassificationResult, error) {
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := c.analyzer.AnalyzeSentiment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeSentiment error: %w", err)
	}
	if resp.GetDocumentSentiment() == nil {
		return nil, ErrEmptyPrediction
	}

	return sentimentToResult(float64(resp.GetDocumentSentiment().GetScore())), nil
}

// ClassifyBatch classifies texts one request at a time; the API has no batch
// sentiment call
func (c *LanguageClassifier) ClassifyBatch(ctx context.Context, texts []string, requestID string) ([]*service.ClassificationResult, error) {
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

// Close releases the underlying gRPC connection
func (c *LanguageClassifier) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}

// sentimentToResult maps a document score in [-1, 1] to a label and a
// confidence in [0.5, 1] for polar labels, [0.75, 1] for NEUTRAL.
func sentimentToResult(score float64) *service.ClassificationResult {
	abs := math.Min(math.Abs(score), 1)
	switch {
	case score >= neutralBand:
		return &service.ClassificationResult{Label: entity.LabelPositive, Score: (1 + abs) / 2}
	case score <= -neutralBand:
		return &service.ClassificationResult{Label: entity.LabelNegative, Score: (1 + abs) / 2}
	default:
		return &service.ClassificationResult{Label: entity.LabelNeutral, Score: 1 - abs}
	}
}
