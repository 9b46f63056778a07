package models

import "time"

// AnalysisSummary is the part of an analysis result kept in the session history.
type AnalysisSummary struct {
	TotalCalories float64    `json:"totalCalories"`
	ServingSize   string     `json:"servingSize"`
	Breakdown     []FoodItem `json:"breakdown"`
	Macros        Macros     `json:"macros"`
	Confidence    Confidence `json:"confidence"`
	Degraded      bool       `json:"degraded,omitempty"`
}

// Breadcrumb is one recorded search of a session. It is never mutated after creation.
// swagger:model Breadcrumb
type Breadcrumb struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Query     string          `json:"query"`
	Result    AnalysisSummary `json:"result"`
}

// Pagination describes one page of the history.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// HistoryStats aggregates the whole retained history of a session.
type HistoryStats struct {
	Count         int        `json:"count"`
	TotalCalories float64    `json:"totalCalories"`
	AvgCalories   float64    `json:"avgCalories"`
	FirstSearchAt *time.Time `json:"firstSearchAt,omitempty"`
	LastSearchAt  *time.Time `json:"lastSearchAt,omitempty"`
}

// History is a paginated view of a session's breadcrumbs.
// swagger:model History
type History struct {
	Searches   []Breadcrumb `json:"searches"`
	Pagination Pagination   `json:"pagination"`
	Stats      HistoryStats `json:"stats"`
}
