package flexdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPoints(t *testing.T) {
	t.Run("semicolon string", func(t *testing.T) {
		assert.Equal(t, []float64{0, 1, 2, 3}, Points("0;1;2;3"))
	})

	t.Run("semicolon string with blanks and spaces", func(t *testing.T) {
		assert.Equal(t, []float64{0, 1.5, 3}, Points(" 0 ; 1.5 ;; 3 "))
	})

	t.Run("numeric array", func(t *testing.T) {
		assert.Equal(t, []float64{0, 1, 2, 3}, Points([]interface{}{0.0, 1.0, 2.0, 3.0}))
	})

	t.Run("wrapper object", func(t *testing.T) {
		raw := map[string]interface{}{"points": []interface{}{0.0, 1.0, 2.0, 3.0}}
		assert.Equal(t, []float64{0, 1, 2, 3}, Points(raw))
	})

	t.Run("embedded json string", func(t *testing.T) {
		assert.Equal(t, []float64{0, 1, 2, 3}, Points("[0,1,2,3]"))
	})

	t.Run("all shapes decode identically", func(t *testing.T) {
		want := Points("0;1;2;3")
		assert.Equal(t, want, Points([]interface{}{0.0, 1.0, 2.0, 3.0}))
		assert.Equal(t, want, Points(map[string]interface{}{"points": []interface{}{0.0, 1.0, 2.0, 3.0}}))
		assert.Equal(t, want, Points("[0,1,2,3]"))
	})

	t.Run("bson array and map shapes", func(t *testing.T) {
		assert.Equal(t, []float64{0, 1, 2}, Points(primitive.A{int32(0), int32(1), int32(2)}))
		assert.Equal(t, []float64{0, 1, 2}, Points(primitive.M{"points": primitive.A{0.0, 1.0, 2.0}}))
	})

	t.Run("scalar", func(t *testing.T) {
		assert.Equal(t, []float64{2.5}, Points("2.5"))
		assert.Equal(t, []float64{4}, Points(4))
	})

	t.Run("nil and garbage", func(t *testing.T) {
		assert.Nil(t, Points(nil))
		assert.Nil(t, Points("not a number"))
	})

	t.Run("non-numeric segments are skipped", func(t *testing.T) {
		assert.Equal(t, []float64{0, 2}, Points("0;abc;2"))
	})
}

func TestOptions(t *testing.T) {
	t.Run("semicolon string", func(t *testing.T) {
		assert.Equal(t, []string{"Mai", "A volte", "Spesso"}, Options("Mai;A volte;Spesso"))
	})

	t.Run("string without semicolon yields nothing", func(t *testing.T) {
		assert.Nil(t, Options("single"))
	})

	t.Run("array is stringified element-wise", func(t *testing.T) {
		assert.Equal(t, []string{"a", "1", "true"}, Options([]interface{}{"a", 1.0, true}))
	})

	t.Run("bson array", func(t *testing.T) {
		assert.Equal(t, []string{"x", "y"}, Options(primitive.A{"x", "y"}))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, Options(nil))
	})
}

func TestQuestions(t *testing.T) {
	t.Run("delimited string derives positional ids", func(t *testing.T) {
		questions := Questions("First?;Second?;Third?", nil)
		assert.Len(t, questions, 3)
		assert.Equal(t, "q1", questions[0].ID)
		assert.Equal(t, "q2", questions[1].ID)
		assert.Equal(t, "q3", questions[2].ID)
		assert.Equal(t, "First?", questions[0].Text)
		assert.Equal(t, KindScale, questions[0].Kind)
		assert.Equal(t, 0, questions[0].MinValue)
		assert.Equal(t, defaultMaxValue, questions[0].MaxValue)
	})

	t.Run("derived options set max value and options", func(t *testing.T) {
		derived := []string{"0", "1", "2", "3"}
		questions := Questions("Only one?", derived)
		// no semicolon and not json, so nothing decodes
		assert.Empty(t, questions)

		questions = Questions("One?;Two?", derived)
		assert.Len(t, questions, 2)
		assert.Equal(t, 3, questions[0].MaxValue)
		assert.Equal(t, derived, questions[0].Options)
	})

	t.Run("object entries keep their own fields", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{
				"id":      "phq9_1",
				"text":    "Little interest or pleasure in doing things",
				"kind":    "scale",
				"min":     0.0,
				"max":     3.0,
				"options": "Not at all;Several days;More than half;Nearly every day",
			},
			map[string]interface{}{"text": "Free text"},
		}
		questions := Questions(raw, nil)
		assert.Len(t, questions, 2)
		assert.Equal(t, "phq9_1", questions[0].ID)
		assert.Equal(t, 0, questions[0].MinValue)
		assert.Equal(t, 3, questions[0].MaxValue)
		assert.Len(t, questions[0].Options, 4)
		assert.Equal(t, "q2", questions[1].ID)
		assert.Equal(t, KindScale, questions[1].Kind)
	})

	t.Run("wrapper object", func(t *testing.T) {
		raw := map[string]interface{}{"questions": []interface{}{"A?", "B?"}}
		questions := Questions(raw, nil)
		assert.Len(t, questions, 2)
		assert.Equal(t, "A?", questions[0].Text)
	})

	t.Run("embedded json string", func(t *testing.T) {
		questions := Questions(`[{"id":"k1","text":"Hello"}]`, nil)
		assert.Len(t, questions, 1)
		assert.Equal(t, "k1", questions[0].ID)
	})

	t.Run("unparseable json string yields empty, not error", func(t *testing.T) {
		assert.Empty(t, Questions("{broken", nil))
	})

	t.Run("bson shapes", func(t *testing.T) {
		raw := primitive.A{primitive.M{"id": "b1", "text": "Bson question"}}
		questions := Questions(raw, nil)
		assert.Len(t, questions, 1)
		assert.Equal(t, "b1", questions[0].ID)

		wrapped := primitive.M{"questions": primitive.A{"X?"}}
		questions = Questions(wrapped, nil)
		assert.Len(t, questions, 1)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, Questions(nil, nil))
	})
}
