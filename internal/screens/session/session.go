// Package session implements the screen on which a single quiz is taken:
// loading the questions, picking answers, submitting and showing the score.
package session

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizmate/internal/host"
	"github.com/abhisek/quizmate/internal/locale"
	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/quizclient"
	"github.com/abhisek/quizmate/internal/router"
	"github.com/abhisek/quizmate/internal/screen"
	"github.com/abhisek/quizmate/internal/ui/layout"
	"github.com/abhisek/quizmate/internal/ui/theme"
)

// DetailSource fetches a single quiz with its questions.
type DetailSource interface {
	GetQuiz(ctx context.Context, id quiz.ID) (*quiz.Detail, error)
}

// Options holds the screen's dependencies. State is shared with the list
// screen.
type Options struct {
	State   *quizclient.State
	Source  DetailSource
	Channel host.Channel
	Catalog locale.Catalog
	Logger  *slog.Logger
}

// SessionScreen shows one quiz from loading through to the result card.
type SessionScreen struct {
	opts    Options
	title   string
	ticket  quizclient.Ticket
	spinner spinner.Model

	// pos is a flat cursor over every option of every question followed
	// by the submit button.
	pos int
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.Closer          = (*SessionScreen)(nil)
)

// New creates a screen for the quiz opened with ticket t. title is shown
// until the detail arrives.
func New(opts Options, t quizclient.Ticket, title string) *SessionScreen {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &SessionScreen{
		opts:   opts,
		ticket: t,
		title:  title,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Selected),
		),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.pos = 0
	return tea.Batch(s.fetchDetail(s.ticket), s.spinner.Tick)
}

func (s *SessionScreen) Title() string {
	if d := s.opts.State.Detail; d != nil && d.Quiz.Title != "" {
		return d.Quiz.Title
	}
	return s.title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	c := s.opts.Catalog
	switch s.opts.State.Phase() {
	case quizclient.PhaseDetailReady, quizclient.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: c.T(locale.HintNavigate)},
			{Key: "Enter", Description: c.T(locale.HintSelect)},
			{Key: "1-9", Description: c.T(locale.HintPick)},
			{Key: "S", Description: c.T(locale.HintSubmit)},
			{Key: "Esc", Description: c.T(locale.HintBack)},
		}
	case quizclient.PhaseSubmitted:
		return []layout.KeyHint{
			{Key: "↑↓", Description: c.T(locale.HintNavigate)},
			{Key: "Esc", Description: c.T(locale.HintBack)},
			{Key: "Ctrl+C", Description: c.T(locale.HintQuit)},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: c.T(locale.HintBack)},
			{Key: "Ctrl+C", Description: c.T(locale.HintQuit)},
		}
	}
}

// OnClose resets the quiz-scoped state when the screen is popped.
func (s *SessionScreen) OnClose() tea.Cmd {
	s.opts.State.Back()
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		s.handleDetailLoaded(msg)
		return s, nil

	case resultDeliveredMsg:
		return s, nil

	case spinner.TickMsg:
		if !s.opts.State.LoadingDetail {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleDetailLoaded(msg detailLoadedMsg) {
	if s.opts.State.FinishDetailLoad(msg.Ticket, msg.Detail, msg.Err) {
		s.pos = 0
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "b" || key == "backspace" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	d := s.opts.State.Detail
	if d == nil {
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.pos > 0 {
			s.pos--
		}
		return s, nil
	case "down", "j":
		if s.pos < s.lastPos() {
			s.pos++
		}
		return s, nil
	case "tab":
		s.jumpQuestion(1)
		return s, nil
	case "shift+tab":
		s.jumpQuestion(-1)
		return s, nil
	}

	if s.opts.State.Submitted {
		return s, nil
	}

	switch key {
	case "s":
		return s, s.submit()
	case "enter", "space":
		if s.pos == s.lastPos() {
			return s, s.submit()
		}
		qi, oi := s.cursor()
		s.opts.State.Select(d.Questions[qi].ID, oi)
		return s, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		s.pickOption(int(key[0] - '1'))
	}
	return s, nil
}

// pickOption selects option n of the question under the cursor and moves
// the cursor onto it.
func (s *SessionScreen) pickOption(n int) {
	d := s.opts.State.Detail
	if s.pos == s.lastPos() {
		return
	}
	qi, _ := s.cursor()
	q := d.Questions[qi]
	if n >= len(q.Options) {
		return
	}
	s.opts.State.Select(q.ID, n)
	s.pos = s.firstPos(qi) + n
}

func (s *SessionScreen) submit() tea.Cmd {
	payload, err := s.opts.State.Submit()
	if err != nil {
		s.opts.Logger.Info("submission rejected", "err", err)
		return nil
	}
	s.pos = s.lastPos()

	data, err := payload.Encode()
	if err != nil {
		s.opts.Logger.Error("encode result payload", "err", err)
		return nil
	}
	ch, logger := s.opts.Channel, s.opts.Logger
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		host.Deliver(context.Background(), ch, data, logger)
		return resultDeliveredMsg{}
	}
}

func (s *SessionScreen) fetchDetail(t quizclient.Ticket) tea.Cmd {
	src := s.opts.Source
	return func() tea.Msg {
		d, err := src.GetQuiz(context.Background(), t.QuizID)
		return detailLoadedMsg{Ticket: t, Detail: d, Err: err}
	}
}

// lastPos is the position of the submit button.
func (s *SessionScreen) lastPos() int {
	n := 0
	if d := s.opts.State.Detail; d != nil {
		for _, q := range d.Questions {
			n += len(q.Options)
		}
	}
	return n
}

// cursor maps pos to (question, option). On the submit button it returns
// (len(questions), 0).
func (s *SessionScreen) cursor() (int, int) {
	p := s.pos
	qs := s.opts.State.Detail.Questions
	for i, q := range qs {
		if p < len(q.Options) {
			return i, p
		}
		p -= len(q.Options)
	}
	return len(qs), 0
}

func (s *SessionScreen) firstPos(qi int) int {
	p := 0
	for _, q := range s.opts.State.Detail.Questions[:qi] {
		p += len(q.Options)
	}
	return p
}

// jumpQuestion moves the cursor to the first option of the next or
// previous question that has options.
func (s *SessionScreen) jumpQuestion(dir int) {
	qs := s.opts.State.Detail.Questions
	qi, _ := s.cursor()
	for i := qi + dir; i >= 0 && i < len(qs); i += dir {
		if len(qs[i].Options) > 0 {
			s.pos = s.firstPos(i)
			return
		}
	}
	if dir > 0 {
		s.pos = s.lastPos()
	}
}
