package components

import "github.com/abhisek/quizmate/internal/ui/theme"

// ContentWidth returns the uniform inner width used for quiz cards so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given width.
func Card(content string, width int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.FocusedCard
	}
	return style.Width(width).Render(content)
}

// Banner renders the single error banner.
func Banner(message string, width int) string {
	if message == "" {
		return ""
	}
	return theme.Banner.Width(width).Render("⚠ " + message)
}
