package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReviewResult(t *testing.T) {
	result := NewReviewResult(2, "Terrible movie.", LabelNegative, 0.99978)

	assert.Equal(t, 2, result.Position)
	assert.Equal(t, "Terrible movie.", result.Review)
	assert.Equal(t, "NEGATIVE", result.Label)
	assert.Equal(t, 0.99978, result.Confidence)
}

func TestReviewResult_RoundedConfidence(t *testing.T) {
	t.Run("rounds to three decimals", func(t *testing.T) {
		result := NewReviewResult(0, "text", LabelPositive, 0.99987)
		assert.Equal(t, 1.0, result.RoundedConfidence())
	})

	t.Run("rounds the exact stored value", func(t *testing.T) {
		assert.Equal(t, 0.001, RoundConfidence(0.0005))
		assert.Equal(t, 0.123, RoundConfidence(0.12345))
	})

	t.Run("values stored just below a midpoint round down", func(t *testing.T) {
		assert.Equal(t, 0.999, RoundConfidence(0.9995))
		assert.Equal(t, 0.123, RoundConfidence(0.1235))
		assert.Equal(t, 0.234, RoundConfidence(0.2345))
		assert.Equal(t, 0.888, RoundConfidence(0.8885))
	})

	t.Run("keeps bounds", func(t *testing.T) {
		assert.Equal(t, 0.0, RoundConfidence(0))
		assert.Equal(t, 1.0, RoundConfidence(1))
	})
}
