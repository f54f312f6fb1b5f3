package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmate/internal/locale"
	"github.com/abhisek/quizmate/internal/ui/components"
	"github.com/abhisek/quizmate/internal/ui/layout"
	"github.com/abhisek/quizmate/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	st := s.opts.State
	c := s.opts.Catalog
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Hint.Render("← " + c.T(locale.BackToList) + " (Esc)"))
	b.WriteString("\n\n")

	if st.Error != "" {
		b.WriteString(components.Banner(c.T(st.Error), cw))
		b.WriteString("\n\n")
	}

	if st.Detail == nil {
		if st.LoadingDetail {
			b.WriteString(s.spinner.View() + " " + theme.Subtitle.Render(c.T(locale.LoadingQuiz)))
		}
		return b.String()
	}

	d := st.Detail
	b.WriteString(theme.Title.Render(d.Quiz.Title))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(
		c.T(locale.AnsweredProgress, st.Answers.Answered(d.Questions), len(d.Questions)),
		st.Answers.Answered(d.Questions), len(d.Questions), cw,
	).View())
	b.WriteString("\n\n")

	cursorLine := -1
	qi, oi := s.cursor()
	for i, q := range d.Questions {
		card := components.QuestionCard{
			Number:    i + 1,
			Text:      q.Text,
			Options:   q.Options,
			Chosen:    components.NoOption,
			Cursor:    components.NoOption,
			Submitted: st.Submitted,
			Correct:   q.CorrectOption,
		}
		if chosen, ok := st.Answers.Lookup(q.ID); ok {
			card.Chosen = chosen
		}
		if i == qi {
			card.Cursor = oi
			cursorLine = lipgloss.Height(b.String()) - 1 + card.OptionOffset(oi, cw)
		}
		b.WriteString(card.View(cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if st.Submitted && st.Result != nil {
		b.WriteString(s.renderResult(cw))
	} else {
		btn := components.NewButton(c.T(locale.SubmitAnswers), nil)
		btn.Focused = qi == len(d.Questions)
		b.WriteString(btn.View())
	}

	content := b.String()
	if cursorLine < 0 {
		// Submit button or result card: keep the bottom in view.
		cursorLine = lipgloss.Height(content) - 1
	}
	return layout.Window(content, scrollOffset(cursorLine, height), height)
}

func (s *SessionScreen) renderResult(cw int) string {
	c := s.opts.Catalog
	r := s.opts.State.Result

	body := theme.Title.Render(c.T(locale.ResultsTitle)) + "\n\n" +
		theme.Body.Render(c.T(locale.ResultText, r.Correct, r.Total)) + "\n" +
		theme.Hint.Render(c.T(locale.ResultHint))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Success).
		Padding(1, 2).
		Width(cw).
		Render(body)
}

// scrollOffset returns the first visible line so that line stays on screen
// with a small margin below it.
func scrollOffset(line, height int) int {
	const margin = 2
	off := line - height + 1 + margin
	if off < 0 {
		return 0
	}
	return off
}
