package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizmate/internal/host"
	"github.com/abhisek/quizmate/internal/locale"
	"github.com/abhisek/quizmate/internal/quizclient"
	"github.com/abhisek/quizmate/internal/router"
	"github.com/abhisek/quizmate/internal/screen"
	"github.com/abhisek/quizmate/internal/screens/home"
	"github.com/abhisek/quizmate/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Source  home.Source
	Channel host.Channel
	Catalog locale.Catalog
	Logger  *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	channel host.Channel
	catalog locale.Catalog
	logger  *slog.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel rooted at the quiz list.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Channel == nil {
		opts.Channel = host.NewLog(opts.Logger)
	}
	state := quizclient.New(opts.Logger)
	root := home.New(home.Options{
		State:   state,
		Source:  opts.Source,
		Channel: opts.Channel,
		Catalog: opts.Catalog,
		Logger:  opts.Logger,
	})
	return AppModel{
		router:  router.New(root),
		channel: opts.Channel,
		catalog: opts.Catalog,
		logger:  opts.Logger,
	}
}

// Init starts the host handshake alongside the root screen.
func (m AppModel) Init() tea.Cmd {
	ch, logger := m.channel, m.logger
	handshake := func() tea.Msg {
		_ = host.Start(context.Background(), ch, logger)
		return nil
	}
	return tea.Batch(handshake, m.router.Init())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole frame as a string.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader("quizmate", title, m.channel.Name(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)
	content := m.router.View(m.width-layout.ContentPadding*2, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: m.catalog.T(locale.HintQuit)},
	}
}

// Run starts the Bubble Tea program and closes the host channel on exit.
func Run(opts Options) error {
	model := newAppModel(opts)
	defer func() {
		if err := model.channel.Close(); err != nil {
			model.logger.Warn("close host channel", "channel", model.channel.Name(), "err", err)
		}
	}()

	p := tea.NewProgram(model)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
