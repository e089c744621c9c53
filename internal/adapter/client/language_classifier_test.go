package client

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	scores map[string]float32
	err    error
	calls  []string
}

func (f *fakeAnalyzer) AnalyzeSentiment(_ context.Context, req *languagepb.AnalyzeSentimentRequest, _ ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error) {
	text := req.GetDocument().GetContent()
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	return &languagepb.AnalyzeSentimentResponse{
		DocumentSentiment: &languagepb.Sentiment{Score: f.scores[text]},
	}, nil
}

func TestLanguageClassifier_Classify(t *testing.T) {
	t.Run("positive document", func(t *testing.T) {
		classifier := &LanguageClassifier{analyzer: &fakeAnalyzer{scores: map[string]float32{"loved it": 0.8}}}

		result, err := classifier.Classify(context.Background(), "loved it", "")

		require.NoError(t, err)
		assert.Equal(t, "POSITIVE", result.Label)
		assert.InDelta(t, 0.9, result.Score, 1e-6)
	})

	t.Run("api error", func(t *testing.T) {
		classifier := &LanguageClassifier{analyzer: &fakeAnalyzer{err: errors.New("permission denied")}}

		result, err := classifier.Classify(context.Background(), "text", "")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "permission denied")
	})
}

func TestLanguageClassifier_ClassifyBatch(t *testing.T) {
	t.Run("keeps input order", func(t *testing.T) {
		analyzer := &fakeAnalyzer{scores: map[string]float32{"good": 0.6, "bad": -0.7, "ok": 0.1}}
		classifier := &LanguageClassifier{analyzer: analyzer}

		results, err := classifier.ClassifyBatch(context.Background(), []string{"good", "bad", "ok"}, "")

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "POSITIVE", results[0].Label)
		assert.Equal(t, "NEGATIVE", results[1].Label)
		assert.Equal(t, "NEUTRAL", results[2].Label)
		assert.Equal(t, []string{"good", "bad", "ok"}, analyzer.calls)
	})

	t.Run("fails whole batch on error", func(t *testing.T) {
		classifier := &LanguageClassifier{analyzer: &fakeAnalyzer{err: errors.New("quota")}}

		results, err := classifier.ClassifyBatch(context.Background(), []string{"a", "b"}, "")

		assert.Error(t, err)
		assert.Nil(t, results)
	})
}

func TestSentimentToResult(t *testing.T) {
	t.Run("strong negative", func(t *testing.T) {
		result := sentimentToResult(-1)
		assert.Equal(t, "NEGATIVE", result.Label)
		assert.Equal(t, 1.0, result.Score)
	})

	t.Run("band edges are polar", func(t *testing.T) {
		assert.Equal(t, "POSITIVE", sentimentToResult(0.25).Label)
		assert.Equal(t, "NEGATIVE", sentimentToResult(-0.25).Label)
	})

	t.Run("zero is fully neutral", func(t *testing.T) {
		result := sentimentToResult(0)
		assert.Equal(t, "NEUTRAL", result.Label)
		assert.Equal(t, 1.0, result.Score)
	})

	t.Run("confidence stays in range", func(t *testing.T) {
		for _, s := range []float64{-1, -0.5, -0.2, 0, 0.2, 0.5, 1} {
			result := sentimentToResult(s)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
		}
	})
}
