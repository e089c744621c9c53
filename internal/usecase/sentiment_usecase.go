package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/entity"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/service"
)

// ErrResultCountMismatch is returned when the classifier does not return
// exactly one result per review
var ErrResultCountMismatch = errors.New("classifier returned wrong number of results")

// SentimentUsecase defines the sentiment analysis operations
type SentimentUsecase interface {
	AnalyzeReviews(ctx context.Context, reviews []string, requestID string) ([]*entity.ReviewResult, error)
	ClassifyOne(ctx context.Context, text, requestID string) (*service.ClassificationResult, error)
}

type sentimentUsecase struct {
	classifier service.Classifier
}

// NewSentimentUsecase creates a new sentiment usecase
func NewSentimentUsecase(classifier service.Classifier) SentimentUsecase {
	return &sentimentUsecase{classifier: classifier}
}

// AnalyzeReviews classifies all reviews with a single batch call and returns
// one result per review in input order
func (u *sentimentUsecase) AnalyzeReviews(ctx context.Context, reviews []string, requestID string) ([]*entity.ReviewResult, error) {
	if len(reviews) == 0 {
		return []*entity.ReviewResult{}, nil
	}

	predictions, err := u.classifier.ClassifyBatch(ctx, reviews, requestID)
	if err != nil {
		return nil, err
	}
	if len(predictions) != len(reviews) {
		return nil, fmt.Errorf("%w: got %d for %d reviews", ErrResultCountMismatch, len(predictions), len(reviews))
	}

	results := make([]*entity.ReviewResult, len(reviews))
	for i, review := range reviews {
		results[i] = entity.NewReviewResult(i, review, predictions[i].Label, predictions[i].Score)
	}

	return results, nil
}

// ClassifyOne classifies a single free-text review
func (u *sentimentUsecase) ClassifyOne(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	return u.classifier.Classify(ctx, text, requestID)
}
