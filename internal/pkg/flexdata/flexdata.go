// Package flexdata decodes the heterogeneous stored representations of a
// questionnaire type's reference fields. Each of the question bank, the
// answer-fields column and the score table may be stored as a
// semicolon-delimited string, an array, or an object wrapping an array.
// Decoding happens once at the boundary into one canonical ordered slice,
// shared by the questionnaire normalizer and the scorer.
package flexdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is the uniform descriptor every stored question shape is
// normalized into.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Kind     string   `json:"kind"`
	MinValue int      `json:"min_value"`
	MaxValue int      `json:"max_value"`
	Options  []string `json:"options,omitempty"`
}

const (
	KindScale          = "scale"
	KindText           = "text"
	KindMultipleChoice = "multiple-choice"
)

// Fallback upper bound when no option list exists to derive one from.
const defaultMaxValue = 3

// Options decodes the answer-fields column into an ordered option list.
// A string is only usable when semicolon-delimited; an array is stringified
// element-wise; anything else yields no options.
func Options(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if !strings.Contains(v, ";") {
			return nil
		}
		return splitSegments(v)
	default:
		entries, ok := asSlice(raw)
		if !ok {
			return nil
		}
		options := make([]string, 0, len(entries))
		for _, entry := range entries {
			options = append(options, stringify(entry))
		}
		return options
	}
}

// Questions decodes the question bank into the uniform descriptor list.
// derivedOptions is the option list decoded from the answer-fields column;
// it is the fallback source for per-question options and max values.
//
// A string without a semicolon is treated as embedded JSON; when it does not
// parse to an array the result is an empty list, not an error. Callers that
// want the soft failure to be observable must check for an empty result
// themselves.
func Questions(raw interface{}, derivedOptions []string) []Question {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if strings.Contains(v, ";") {
			return questionsFromDelimited(v, derivedOptions)
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil
		}
		entries, ok := asSlice(parsed)
		if !ok {
			return nil
		}
		return questionsFromEntries(entries, derivedOptions)
	default:
		if entries, ok := asSlice(raw); ok {
			return questionsFromEntries(entries, derivedOptions)
		}
		if wrapper, ok := asMap(raw); ok {
			for _, key := range []string{"questions", "domande"} {
				if entries, ok := asSlice(wrapper[key]); ok {
					return questionsFromEntries(entries, derivedOptions)
				}
			}
		}
		return nil
	}
}

// Points decodes the score table into the ordered point-value list; index i
// is the point value awarded for selecting answer option i.
func Points(raw interface{}) []float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if strings.Contains(v, ";") {
			return pointsFromSegments(splitSegments(v))
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			if value, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return []float64{value}
			}
			return nil
		}
		return Points(parsed)
	default:
		if entries, ok := asSlice(raw); ok {
			points := make([]float64, 0, len(entries))
			for _, entry := range entries {
				if value, ok := asFloat(entry); ok {
					points = append(points, value)
				}
			}
			return points
		}
		if wrapper, ok := asMap(raw); ok {
			if entries, ok := asSlice(wrapper["points"]); ok {
				return Points(entries)
			}
		}
		if value, ok := asFloat(raw); ok {
			return []float64{value}
		}
		return nil
	}
}

func questionsFromDelimited(bank string, derivedOptions []string) []Question {
	segments := splitSegments(bank)
	questions := make([]Question, 0, len(segments))
	for i, segment := range segments {
		questions = append(questions, Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Text:     segment,
			Kind:     KindScale,
			MinValue: 0,
			MaxValue: maxValueFor(derivedOptions),
			Options:  optionsOrNil(derivedOptions),
		})
	}
	return questions
}

func questionsFromEntries(entries []interface{}, derivedOptions []string) []Question {
	questions := make([]Question, 0, len(entries))
	for i, entry := range entries {
		questions = append(questions, questionFromEntry(entry, i, derivedOptions))
	}
	return questions
}

func questionFromEntry(entry interface{}, index int, derivedOptions []string) Question {
	fields, ok := asMap(entry)
	if !ok {
		return Question{
			ID:       fmt.Sprintf("q%d", index+1),
			Text:     stringify(entry),
			Kind:     KindScale,
			MinValue: 0,
			MaxValue: maxValueFor(derivedOptions),
			Options:  optionsOrNil(derivedOptions),
		}
	}

	question := Question{
		ID:       firstString(fields, "id", "key", "slug"),
		Text:     firstString(fields, "text"),
		Kind:     firstString(fields, "kind", "type"),
		MinValue: firstInt(fields, 0, "minValue", "min"),
		MaxValue: firstInt(fields, maxValueFor(derivedOptions), "maxValue", "max"),
	}
	if question.ID == "" {
		question.ID = fmt.Sprintf("q%d", index+1)
	}
	if question.Text == "" {
		question.Text = stringify(entry)
	}
	if question.Kind == "" {
		question.Kind = KindScale
	}

	if entryOptions := Options(fields["options"]); len(entryOptions) > 0 {
		question.Options = entryOptions
	} else {
		question.Options = optionsOrNil(derivedOptions)
	}
	return question
}

func splitSegments(value string) []string {
	parts := strings.Split(value, ";")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}

func pointsFromSegments(segments []string) []float64 {
	points := make([]float64, 0, len(segments))
	for _, segment := range segments {
		if value, err := strconv.ParseFloat(segment, 64); err == nil {
			points = append(points, value)
		}
	}
	return points
}

func maxValueFor(derivedOptions []string) int {
	if len(derivedOptions) > 0 {
		return len(derivedOptions) - 1
	}
	return defaultMaxValue
}

func optionsOrNil(derivedOptions []string) []string {
	if len(derivedOptions) == 0 {
		return nil
	}
	return derivedOptions
}

// asSlice accepts both JSON-decoded and BSON-decoded array shapes.
func asSlice(raw interface{}) ([]interface{}, bool) {
	switch v := raw.(type) {
	case []interface{}:
		return v, true
	case primitive.A:
		return []interface{}(v), true
	default:
		return nil, false
	}
}

// asMap accepts both JSON-decoded and BSON-decoded object shapes.
func asMap(raw interface{}) (map[string]interface{}, bool) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v, true
	case primitive.M:
		return map[string]interface{}(v), true
	case primitive.D:
		return v.Map(), true
	default:
		return nil, false
	}
}

func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		value, err := v.Float64()
		return value, err == nil
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return value, err == nil
	default:
		return 0, false
	}
}

func firstString(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func firstInt(fields map[string]interface{}, fallback int, keys ...string) int {
	for _, key := range keys {
		if raw, ok := fields[key]; ok {
			if value, ok := asFloat(raw); ok {
				return int(value)
			}
		}
	}
	return fallback
}

func stringify(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		if encoded, err := json.Marshal(raw); err == nil {
			return string(encoded)
		}
		return fmt.Sprintf("%v", raw)
	}
}
