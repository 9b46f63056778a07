package services

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

var errNotJSONObject = errors.New("completion is not a JSON object")

// unknownServingSize replaces a missing serving size in degraded results.
const unknownServingSize = "unknown"

// estimate is the lenient decoding of one completion. Fields that were missing or
// unusable are recorded in missing.
type estimate struct {
	TotalCalories float64
	HasTotal      bool
	ServingSize   string
	Breakdown     []models.FoodItem
	Macros        models.Macros
	Confidence    models.Confidence
	Notes         string
	missing       []string
}

func (e *estimate) degraded() bool {
	return len(e.missing) > 0
}

// cleanLLMResponse strips markdown fences and cuts the text to the outermost braces.
func cleanLLMResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```JSON")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return response
	}
	return response[start : end+1]
}

// parseEstimate decodes the completion text. Only text that holds no JSON object at all is
// an error; anything else yields an estimate, possibly with missing fields.
func parseEstimate(text string) (*estimate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleanLLMResponse(text)), &fields); err != nil || fields == nil {
		return nil, errNotJSONObject
	}

	est := &estimate{}

	if v, ok := parseNumber(fields["totalCalories"]); ok {
		est.TotalCalories, est.HasTotal = v, true
	} else {
		est.missing = append(est.missing, "totalCalories")
	}

	if s, ok := parseString(fields["servingSize"]); ok && s != "" {
		est.ServingSize = s
	} else {
		est.missing = append(est.missing, "servingSize")
	}

	items, ok := parseBreakdown(fields["breakdown"])
	if !ok {
		est.missing = append(est.missing, "breakdown")
	}
	est.Breakdown = items

	macros, ok := parseMacros(fields["macros"])
	if !ok {
		est.missing = append(est.missing, "macros")
	}
	est.Macros = macros

	if s, ok := parseString(fields["confidence"]); ok && models.Confidence(strings.ToLower(s)).Valid() {
		est.Confidence = models.Confidence(strings.ToLower(s))
	} else {
		est.missing = append(est.missing, "confidence")
	}

	est.Notes, _ = parseString(fields["notes"])

	return est, nil
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// parseNumber accepts a non-negative JSON number or a numeric string with an optional unit.
func parseNumber(raw json.RawMessage) (float64, bool) {
	if absent(raw) {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, n >= 0 && !math.IsInf(n, 0)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, unit := range []string{"kcal", "cal", "g"} {
		s = strings.TrimSpace(strings.TrimSuffix(s, unit))
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func parseString(raw json.RawMessage) (string, bool) {
	if absent(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// parseBreakdown keeps every well-formed item; ok is false when the list or any item is unusable.
func parseBreakdown(raw json.RawMessage) ([]models.FoodItem, bool) {
	items := []models.FoodItem{}

	var rawItems []map[string]json.RawMessage
	if absent(raw) || json.Unmarshal(raw, &rawItems) != nil {
		return items, false
	}

	ok := true
	for _, ri := range rawItems {
		name, nameOK := parseString(ri["name"])
		calories, calOK := parseNumber(ri["calories"])
		if !nameOK || name == "" || !calOK {
			ok = false
			continue
		}
		quantity, _ := parseString(ri["quantity"])
		items = append(items, models.FoodItem{Name: name, Quantity: quantity, Calories: calories})
	}
	return items, ok
}

// parseMacros requires protein, carbs and fat; fiber is optional.
func parseMacros(raw json.RawMessage) (models.Macros, bool) {
	var m models.Macros

	var fields map[string]json.RawMessage
	if absent(raw) || json.Unmarshal(raw, &fields) != nil {
		return m, false
	}

	protein, pOK := parseNumber(fields["protein"])
	carbs, cOK := parseNumber(fields["carbs"])
	fat, fOK := parseNumber(fields["fat"])
	fiber, _ := parseNumber(fields["fiber"])

	m = models.Macros{Protein: protein, Carbs: carbs, Fat: fat, Fiber: fiber}
	return m, pOK && cOK && fOK
}
