package entity

import "strconv"

// Common labels produced by binary sentiment models. Classifiers are free to
// return any other label.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// ReviewResult represents the prediction for one input review
type ReviewResult struct {
	Position   int     `json:"position"`
	Review     string  `json:"review"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// NewReviewResult creates a ReviewResult for the review at the given position
func NewReviewResult(position int, review, label string, confidence float64) *ReviewResult {
	return &ReviewResult{
		Position:   position,
		Review:     review,
		Label:      label,
		Confidence: confidence,
	}
}

// RoundedConfidence returns the confidence rounded to 3 decimal places
func (r *ReviewResult) RoundedConfidence() float64 {
	return RoundConfidence(r.Confidence)
}

// RoundConfidence rounds the exact binary value of a score to 3 decimal
// places, so 0.9995 (stored just below the midpoint) becomes 0.999
func RoundConfidence(score float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(score, 'f', 3, 64), 64)
	return v
}
