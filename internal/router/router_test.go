package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizmate/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	closed  int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) OnClose() tea.Cmd                        { s.closed++; return nil }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "list"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestInitRunsRoot(t *testing.T) {
	s1 := &stubScreen{title: "list"}
	r := New(s1)
	r.Init()
	if !s1.initRan {
		t.Error("expected Init() to run on root screen")
	}
}

func TestPopCloses(t *testing.T) {
	s1 := &stubScreen{title: "list"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "list" {
		t.Errorf("expected active 'list', got %q", r.Active().Title())
	}
	if s2.closed != 1 {
		t.Errorf("expected popped screen closed once, got %d", s2.closed)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "list"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.closed != 0 {
		t.Error("root screen must not be closed")
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	s1 := &stubScreen{title: "list"}
	r := New(s1)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after PushScreenMsg, got %d", r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1 after PopScreenMsg, got %d", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "list"}
	r := New(s1)
	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	r.Update(struct{}{})
	if s2.updates != 1 || s1.updates != 0 {
		t.Errorf("expected only active screen updated, got list=%d quiz=%d", s1.updates, s2.updates)
	}
	if got := r.View(80, 24); got != "quiz" {
		t.Errorf("View = %q, want %q", got, "quiz")
	}
}
