package services

//go:generate mockgen -source=analysis.go -destination=mock_analysis.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// MaxDescriptionLen is the longest accepted food description, in characters.
const MaxDescriptionLen = 500

const analysisSystemPrompt = `You are a nutrition expert. Estimate the calories of the food the user describes.
Respond with a single JSON object and nothing else, using exactly this schema:
{
  "totalCalories": number,
  "servingSize": string,
  "breakdown": [{"name": string, "quantity": string, "calories": number}],
  "macros": {"protein": number, "carbs": number, "fat": number, "fiber": number},
  "confidence": "low" | "medium" | "high",
  "notes": string
}
Calories are kcal, macros are grams. Use typical portion sizes when the user gives none.`

// Completer sends a prompt pair to the language model and returns its raw answer.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Sanitizer strips markup from text.
type Sanitizer interface {
	Sanitize(raw string) string
}

// BreadcrumbAppender records an analysis in a session's history.
type BreadcrumbAppender interface {
	AppendBreadcrumb(ctx context.Context, sessionID string, b models.Breadcrumb) (models.Breadcrumb, error)
}

// AnalysisMetrics receives analysis and upstream measurements.
type AnalysisMetrics interface {
	RecordAnalysis(outcome string)
	RecordUpstreamError(kind string)
	RecordUpstreamLatency(duration time.Duration)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AnalysisService turns food descriptions into calorie estimates and records them.
type AnalysisService struct {
	completer   Completer
	sanitizer   Sanitizer
	history     BreadcrumbAppender
	kafkaWriter KafkaWriter
	metrics     AnalysisMetrics
	now         func() time.Time
}

// NewAnalysisService creates a new AnalysisService. kafkaWriter and metrics may be nil.
func NewAnalysisService(
	completer Completer,
	sanitizer Sanitizer,
	history BreadcrumbAppender,
	kafkaWriter KafkaWriter,
	metrics AnalysisMetrics,
) *AnalysisService {
	return &AnalysisService{
		completer:   completer,
		sanitizer:   sanitizer,
		history:     history,
		kafkaWriter: kafkaWriter,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Analyze validates the description, queries the model and shapes its answer.
// It does not touch any session state.
func (s *AnalysisService) Analyze(ctx context.Context, description string) (*models.AnalysisResult, error) {
	query := strings.TrimSpace(description)
	if query == "" {
		return nil, apperrors.NewValidationError("description", "Description is required")
	}
	if utf8.RuneCountInString(query) > MaxDescriptionLen {
		return nil, apperrors.NewValidationError("description", "Description must be at most 500 characters")
	}
	query = s.sanitizer.Sanitize(query)
	if query == "" {
		return nil, apperrors.NewValidationError("description", "Description is required")
	}

	start := time.Now()
	text, err := s.completer.Complete(ctx, analysisSystemPrompt, query)
	s.recordLatency(time.Since(start))
	if err != nil {
		var upErr *apperrors.UpstreamError
		if !errors.As(err, &upErr) {
			upErr = apperrors.NewUpstreamError(apperrors.UpstreamUnknown, err)
		}
		s.recordFailure(upErr.Kind)
		return nil, upErr
	}

	est, err := parseEstimate(text)
	if err != nil {
		logger.Log.Errorw("unparseable completion", "error", err, "length", len(text))
		s.recordFailure(apperrors.UpstreamMalformed)
		return nil, apperrors.NewUpstreamError(apperrors.UpstreamMalformed, err)
	}

	result := s.shape(query, est)
	if result.Degraded {
		logger.Log.Warnw("degraded analysis", "missing", est.missing)
	}
	return result, nil
}

// AnalyzeAndRecord analyzes the description and appends the outcome to the session's
// breadcrumbs before returning. A failed append fails the call.
func (s *AnalysisService) AnalyzeAndRecord(ctx context.Context, sessionID, description string) (*models.AnalysisResult, error) {
	result, err := s.Analyze(ctx, description)
	if err != nil {
		return nil, err
	}

	crumb, err := s.history.AppendBreadcrumb(ctx, sessionID, models.Breadcrumb{
		Timestamp: result.AnalyzedAt,
		Query:     result.Query,
		Result:    result.Summary(),
	})
	if err != nil {
		s.recordOutcome("failed")
		return nil, err
	}

	if result.Degraded {
		s.recordOutcome("degraded")
	} else {
		s.recordOutcome("ok")
	}

	s.publishAnalysis(ctx, models.AnalysisEvent{
		EventID:       crumb.ID,
		SessionID:     sessionID,
		Timestamp:     crumb.Timestamp.Unix(),
		Query:         result.Query,
		TotalCalories: result.TotalCalories,
		Confidence:    result.Confidence,
		Degraded:      result.Degraded,
	})

	return result, nil
}

// shape builds the sanitized result, substituting placeholders for missing fields.
func (s *AnalysisService) shape(query string, est *estimate) *models.AnalysisResult {
	breakdown := make([]models.FoodItem, 0, len(est.Breakdown))
	var itemsTotal float64
	for _, item := range est.Breakdown {
		name := s.sanitizer.Sanitize(item.Name)
		if name == "" {
			continue
		}
		breakdown = append(breakdown, models.FoodItem{
			Name:     name,
			Quantity: s.sanitizer.Sanitize(item.Quantity),
			Calories: item.Calories,
		})
		itemsTotal += item.Calories
	}

	result := &models.AnalysisResult{
		Query:         query,
		TotalCalories: est.TotalCalories,
		ServingSize:   s.sanitizer.Sanitize(est.ServingSize),
		Breakdown:     breakdown,
		Macros:        est.Macros,
		Confidence:    est.Confidence,
		Degraded:      est.degraded(),
		Notes:         s.sanitizer.Sanitize(est.Notes),
		AnalyzedAt:    s.now().UTC(),
	}

	if !est.HasTotal {
		result.TotalCalories = itemsTotal
	}
	if result.ServingSize == "" {
		result.ServingSize = unknownServingSize
		result.Degraded = true
	}
	if result.Degraded {
		result.Confidence = models.ConfidenceLow
	}

	return result
}

// publishAnalysis publishes an analysis event to Kafka. Failures are only logged.
func (s *AnalysisService) publishAnalysis(ctx context.Context, event models.AnalysisEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal analysis event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish analysis event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Analysis event published to Kafka", "event_id", event.EventID, "total_calories", event.TotalCalories)
	}
}

func (s *AnalysisService) recordLatency(d time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordUpstreamLatency(d)
	}
}

func (s *AnalysisService) recordFailure(kind apperrors.UpstreamKind) {
	if s.metrics != nil {
		s.metrics.RecordUpstreamError(string(kind))
		s.metrics.RecordAnalysis("failed")
	}
}

func (s *AnalysisService) recordOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordAnalysis(outcome)
	}
}
