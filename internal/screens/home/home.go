// Package home implements the root screen: the list of available quizzes.
package home

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizmate/internal/host"
	"github.com/abhisek/quizmate/internal/locale"
	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/quizclient"
	"github.com/abhisek/quizmate/internal/router"
	"github.com/abhisek/quizmate/internal/screen"
	"github.com/abhisek/quizmate/internal/screens/session"
	"github.com/abhisek/quizmate/internal/ui/components"
	"github.com/abhisek/quizmate/internal/ui/layout"
	"github.com/abhisek/quizmate/internal/ui/theme"
)

// Source is the quiz API as seen by the screens.
type Source interface {
	ListQuizzes(ctx context.Context) ([]quiz.Quiz, error)
	session.DetailSource
}

// Options holds the dependencies shared by the home and session screens.
type Options struct {
	State   *quizclient.State
	Source  Source
	Channel host.Channel
	Catalog locale.Catalog
	Logger  *slog.Logger
}

// quizzesLoadedMsg carries the outcome of a list request.
type quizzesLoadedMsg struct {
	Quizzes []quiz.Quiz
	Err     error
}

// HomeScreen lists the quizzes and opens the selected one.
type HomeScreen struct {
	opts    Options
	menu    components.Menu
	spinner spinner.Model
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates the home screen. The list is requested on Init.
func New(opts Options) *HomeScreen {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &HomeScreen{
		opts: opts,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Selected),
		),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.reload()
}

func (h *HomeScreen) Title() string {
	return h.opts.Catalog.T(locale.AppTitle)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	c := h.opts.Catalog
	hints := []layout.KeyHint{}
	if len(h.opts.State.Quizzes) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: c.T(locale.HintNavigate)},
			layout.KeyHint{Key: "Enter", Description: c.T(locale.HintOpen)},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "R", Description: c.T(locale.HintReload)},
		layout.KeyHint{Key: "Ctrl+C", Description: c.T(locale.HintQuit)},
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizzesLoadedMsg:
		h.opts.State.FinishListLoad(msg.Quizzes, msg.Err)
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case spinner.TickMsg:
		if !h.opts.State.LoadingQuizzes {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd

	case tea.KeyMsg:
		// A quiz opened by an earlier key is on its way onto the stack.
		if h.opts.State.InQuiz() {
			return h, nil
		}
		if msg.String() == "r" {
			if h.opts.State.LoadingQuizzes {
				return h, nil
			}
			return h, h.reload()
		}
		if h.opts.State.LoadingQuizzes {
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.opts.State
	c := h.opts.Catalog
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(c.T(locale.AppTitle)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(c.T(locale.AppSubtitle)))
	b.WriteString("\n\n")

	if st.Error != "" {
		b.WriteString(components.Banner(c.T(st.Error), cw))
		b.WriteString("\n\n")
	}

	switch {
	case st.LoadingQuizzes:
		b.WriteString(h.spinner.View() + " " + theme.Subtitle.Render(c.T(locale.LoadingQuizzes)))
		return b.String()
	case len(st.Quizzes) == 0:
		if st.Error == "" {
			b.WriteString(theme.Hint.Render(c.T(locale.NoQuizzes)))
		}
		return b.String()
	}

	top := strings.Count(b.String(), "\n")
	menu, selected := h.menu.View(cw)
	b.WriteString(menu)

	// Keep the whole selected card (two rows plus borders) in view.
	bottom := top + selected + 3
	offset := bottom - height + 1
	if offset < 0 {
		offset = 0
	}
	return layout.Window(b.String(), offset, height)
}

func (h *HomeScreen) reload() tea.Cmd {
	h.opts.State.BeginListLoad()
	src := h.opts.Source
	fetch := func() tea.Msg {
		qs, err := src.ListQuizzes(context.Background())
		return quizzesLoadedMsg{Quizzes: qs, Err: err}
	}
	return tea.Batch(fetch, h.spinner.Tick)
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	hint := h.opts.Catalog.T(locale.QuizCardHint)
	items := make([]components.MenuItem, 0, len(h.opts.State.Quizzes))
	for _, q := range h.opts.State.Quizzes {
		items = append(items, components.MenuItem{
			Label:  q.Title,
			Hint:   hint,
			Action: h.openQuiz(q),
		})
	}
	return items
}

// openQuiz opens q in the shared state right away, so that further keys
// reaching the list before the push is applied are ignored.
func (h *HomeScreen) openQuiz(q quiz.Quiz) func() tea.Cmd {
	return func() tea.Cmd {
		if h.opts.State.InQuiz() {
			return nil
		}
		ticket := h.opts.State.OpenQuiz(q.ID)
		scr := session.New(session.Options{
			State:   h.opts.State,
			Source:  h.opts.Source,
			Channel: h.opts.Channel,
			Catalog: h.opts.Catalog,
			Logger:  h.opts.Logger,
		}, ticket, q.Title)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: scr}
		}
	}
}
