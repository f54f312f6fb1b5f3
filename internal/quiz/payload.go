package quiz

import (
	"encoding/json"
	"fmt"
)

// PayloadType tags result payloads sent to the host channel.
const PayloadType = "quiz_result"

// Payload is the result summary forwarded to the host after submission.
type Payload struct {
	Type    string            `json:"type"`
	QuizID  ID                `json:"quizId"`
	Answers []SubmittedAnswer `json:"answers"`
}

// SubmittedAnswer is one answered question in a Payload.
type SubmittedAnswer struct {
	QuestionID     ID  `json:"questionId"`
	SelectedOption int `json:"selectedOption"`
}

// BuildPayload lists the answered questions of d in question order.
func BuildPayload(d *Detail, answers AnswerMap) Payload {
	p := Payload{
		Type:    PayloadType,
		QuizID:  d.Quiz.ID,
		Answers: make([]SubmittedAnswer, 0, len(answers)),
	}
	for _, q := range d.Questions {
		sel, ok := answers[q.ID]
		if !ok {
			continue
		}
		p.Answers = append(p.Answers, SubmittedAnswer{
			QuestionID:     q.ID,
			SelectedOption: sel,
		})
	}
	return p
}

// Encode renders the payload as the JSON string handed to the host.
func (p Payload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode result payload: %w", err)
	}
	return string(data), nil
}
