package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmate/internal/ui/theme"
)

// NoOption marks an unset option index.
const NoOption = -1

// QuestionCard renders one numbered question with its option rows. It holds
// no state of its own; the quiz screen fills it from the session each frame.
type QuestionCard struct {
	Number  int
	Text    string
	Options []string

	// Chosen is the selected option, or NoOption.
	Chosen int

	// Cursor is the option under the cursor, or NoOption when the card is
	// not focused.
	Cursor int

	// Submitted reveals Correct and locks the card.
	Submitted bool
	Correct   int
}

// View renders the card at the given width.
func (q QuestionCard) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 6).
		Render(fmt.Sprintf("%d. %s", q.Number, q.Text)))
	b.WriteString("\n")

	for i, opt := range q.Options {
		b.WriteString("\n")
		b.WriteString(q.optionLine(i, opt))
	}

	return Card(b.String(), width, q.Cursor != NoOption && !q.Submitted)
}

// OptionOffset returns the line of option i relative to the top of the
// rendered card: border plus question text plus the blank line.
func (q QuestionCard) OptionOffset(i, width int) int {
	textHeight := lipgloss.Height(lipgloss.NewStyle().
		Width(width - 6).
		Render(fmt.Sprintf("%d. %s", q.Number, q.Text)))
	return 1 + textHeight + 1 + i
}

func (q QuestionCard) optionLine(i int, opt string) string {
	marker := "○"
	if i == q.Chosen {
		marker = "●"
	}
	prefix := "  "
	if i == q.Cursor && !q.Submitted {
		prefix = "▸ "
	}
	line := fmt.Sprintf("%s%s %d) %s", prefix, marker, i+1, opt)

	if q.Submitted {
		switch {
		case i == q.Correct:
			return theme.Correct.Render(line + "  ✓")
		case i == q.Chosen:
			return theme.Incorrect.Render(line + "  ✗")
		default:
			return theme.Dimmed.Render(line)
		}
	}

	switch {
	case i == q.Cursor:
		return theme.Selected.Render(line)
	case i == q.Chosen:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}
