package quiz

// Score counts the questions whose recorded answer equals the correct
// option. Unanswered questions never count as correct, and Total is always
// the full question count.
func Score(questions []Question, answers AnswerMap) Result {
	res := Result{Total: len(questions)}
	for _, q := range questions {
		if sel, ok := answers[q.ID]; ok && sel == q.CorrectOption {
			res.Correct++
		}
	}
	return res
}
