package quiz

// AnswerMap records the selected option index per question. Questions with
// no entry are unanswered.
type AnswerMap map[ID]int

// Select records option as the answer for questionID, replacing any
// earlier selection.
func (a AnswerMap) Select(questionID ID, option int) {
	a[questionID] = option
}

// Lookup returns the selected option for questionID.
func (a AnswerMap) Lookup(questionID ID) (int, bool) {
	opt, ok := a[questionID]
	return opt, ok
}

// Answered returns how many of the given questions have an answer.
func (a AnswerMap) Answered(questions []Question) int {
	n := 0
	for _, q := range questions {
		if _, ok := a[q.ID]; ok {
			n++
		}
	}
	return n
}

// Any reports whether at least one of the given questions is answered.
func (a AnswerMap) Any(questions []Question) bool {
	for _, q := range questions {
		if _, ok := a[q.ID]; ok {
			return true
		}
	}
	return false
}
