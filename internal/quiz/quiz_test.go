package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestions() []Question {
	return []Question{
		{ID: NumberID(1), Text: "Q1", Options: []string{"a", "b", "c"}, CorrectOption: 1},
		{ID: NumberID(2), Text: "Q2", Options: []string{"a", "b", "c"}, CorrectOption: 0},
		{ID: NumberID(3), Text: "Q3", Options: []string{"a", "b", "c"}, CorrectOption: 2},
	}
}

func TestScore_Scenario(t *testing.T) {
	qs := threeQuestions()
	answers := AnswerMap{}
	answers.Select(NumberID(1), 1)
	answers.Select(NumberID(2), 0)
	answers.Select(NumberID(3), 1)

	assert.Equal(t, Result{Correct: 2, Total: 3}, Score(qs, answers))
}

func TestScore_UnansweredNeverCorrect(t *testing.T) {
	qs := []Question{
		{ID: StringID("a"), Options: []string{"x", "y"}, CorrectOption: 0},
		{ID: StringID("b"), Options: []string{"x", "y"}, CorrectOption: 0},
	}
	answers := AnswerMap{StringID("a"): 1}

	res := Score(qs, answers)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 0, res.Correct)

	answers.Select(StringID("a"), 0)
	assert.Equal(t, Result{Correct: 1, Total: 2}, Score(qs, answers))
}

func TestScore_TotalIsQuestionCount(t *testing.T) {
	qs := threeQuestions()
	cases := []AnswerMap{
		{},
		{NumberID(1): 1},
		{NumberID(1): 1, NumberID(2): 0, NumberID(3): 2},
		{NumberID(99): 0},
	}
	for _, a := range cases {
		res := Score(qs, a)
		assert.Equal(t, len(qs), res.Total)
		assert.LessOrEqual(t, res.Correct, res.Total)
	}
	assert.Equal(t, Result{}, Score(nil, AnswerMap{}))
}

func TestAnswerMap_SelectIdempotent(t *testing.T) {
	a := AnswerMap{}
	a.Select(NumberID(1), 2)
	before := len(a)
	a.Select(NumberID(1), 2)

	assert.Len(t, a, before)
	opt, ok := a.Lookup(NumberID(1))
	require.True(t, ok)
	assert.Equal(t, 2, opt)

	a.Select(NumberID(1), 0)
	opt, _ = a.Lookup(NumberID(1))
	assert.Equal(t, 0, opt)
}

func TestAnswerMap_AnsweredAndAny(t *testing.T) {
	qs := threeQuestions()
	a := AnswerMap{}
	assert.False(t, a.Any(qs))
	assert.Equal(t, 0, a.Answered(qs))

	a.Select(NumberID(3), 0)
	assert.True(t, a.Any(qs))
	assert.Equal(t, 1, a.Answered(qs))
}

func TestID_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		str  string
	}{
		{"number", `7`, "7"},
		{"string", `"quiz-7"`, "quiz-7"},
		{"numeric string", `"7"`, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.str, id.String())

			out, err := json.Marshal(id)
			require.NoError(t, err)
			assert.JSONEq(t, tt.in, string(out))
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestBuildPayload_OnlyAnswered(t *testing.T) {
	d := &Detail{
		Quiz: Quiz{ID: NumberID(12), Title: "Capitals"},
		Questions: []Question{
			{ID: NumberID(1), Options: []string{"a", "b"}},
			{ID: NumberID(2), Options: []string{"a", "b"}},
			{ID: NumberID(3), Options: []string{"a", "b"}},
		},
	}
	answers := AnswerMap{NumberID(3): 1, NumberID(1): 0}

	p := BuildPayload(d, answers)
	encoded, err := p.Encode()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "quiz_result",
		"quizId": 12,
		"answers": [
			{"questionId": 1, "selectedOption": 0},
			{"questionId": 3, "selectedOption": 1}
		]
	}`, encoded)
}

func TestDetail_Decode(t *testing.T) {
	raw := `{
		"quiz": {"id": "geo", "title": "Geography"},
		"questions": [
			{"id": 10, "text": "Capital of France?", "options": ["Paris", "Rome"], "correct_option": 0}
		]
	}`
	var d Detail
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	assert.Equal(t, StringID("geo"), d.Quiz.ID)
	require.Len(t, d.Questions, 1)
	assert.Equal(t, NumberID(10), d.Questions[0].ID)
	assert.Equal(t, []string{"Paris", "Rome"}, d.Questions[0].Options)
}
