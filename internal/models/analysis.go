package models

import "time"

// Confidence is the model's own estimate of how reliable an analysis is.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Valid reports whether c is one of the known confidence labels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// FoodItem is one line of the calorie breakdown.
type FoodItem struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
}

// Macros holds macronutrients in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

// AnalyzeRequest represents the JSON body for a food analysis
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	// Free-text food description
	// required: true
	// example: two slices of pepperoni pizza and a cola
	Description string `json:"description"`
}

// AnalysisResult is the shaped estimate produced for one analyze request.
// Degraded is set when the upstream answer was incomplete and placeholders were used.
// swagger:model AnalysisResult
type AnalysisResult struct {
	Query         string     `json:"query"`
	TotalCalories float64    `json:"totalCalories"`
	ServingSize   string     `json:"servingSize"`
	Breakdown     []FoodItem `json:"breakdown"`
	Macros        Macros     `json:"macros"`
	Confidence    Confidence `json:"confidence"`
	Degraded      bool       `json:"degraded"`
	Notes         string     `json:"notes,omitempty"`
	AnalyzedAt    time.Time  `json:"analyzedAt"`
}

// Summary folds the result into what a breadcrumb keeps.
func (r *AnalysisResult) Summary() AnalysisSummary {
	breakdown := make([]FoodItem, len(r.Breakdown))
	copy(breakdown, r.Breakdown)
	return AnalysisSummary{
		TotalCalories: r.TotalCalories,
		ServingSize:   r.ServingSize,
		Breakdown:     breakdown,
		Macros:        r.Macros,
		Confidence:    r.Confidence,
		Degraded:      r.Degraded,
	}
}

// AnalysisEvent is published to Kafka for every recorded analysis.
type AnalysisEvent struct {
	EventID       string     `json:"event_id"`
	SessionID     string     `json:"session_id"`
	Timestamp     int64      `json:"timestamp"`
	Query         string     `json:"query"`
	TotalCalories float64    `json:"total_calories"`
	Confidence    Confidence `json:"confidence"`
	Degraded      bool       `json:"degraded"`
}
