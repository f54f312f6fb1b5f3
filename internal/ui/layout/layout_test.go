package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}

func TestWindow(t *testing.T) {
	content := "0\n1\n2\n3\n4"

	if got := Window(content, 0, 10); got != content {
		t.Errorf("short content should pass through, got %q", got)
	}
	if got := Window(content, 1, 2); got != "1\n2" {
		t.Errorf("Window(1,2) = %q", got)
	}
	if got := Window(content, 9, 2); got != "3\n4" {
		t.Errorf("offset past end should clamp, got %q", got)
	}
	if got := Window(content, -3, 2); got != "0\n1" {
		t.Errorf("negative offset should clamp, got %q", got)
	}
}

func TestRenderHeader_ShowsChannel(t *testing.T) {
	h := RenderHeader("Quizmate", "Quizzes", "telegram", 80)
	if !strings.Contains(h, "telegram") || !strings.Contains(h, "Quizmate") {
		t.Errorf("header missing parts:\n%s", h)
	}
}
