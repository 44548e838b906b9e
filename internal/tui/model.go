package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	"github.com/msto63/numcore/foundation/core/i18n"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
	"github.com/msto63/numcore/internal/calc"
)

const (
	maxHistory  = 200
	evalTimeout = 5 * time.Second
)

// Evaluator evaluates one command line
type Evaluator interface {
	Eval(ctx context.Context, line string) (*calc.Result, error)
}

// Options configures the model
type Options struct {
	Engine    Evaluator
	Catalog   *i18n.Catalog // defaults to i18n.DefaultCatalog
	Locale    string        // language of the interface texts
	SessionID string        // generated when empty
	Logger    *mdwlog.Logger
}

// entry is one evaluated line of the transcript
type entry struct {
	input  string
	output string
	failed bool
}

type evalResultMsg struct {
	input  string
	result *calc.Result
	err    error
}

// Model is the calculator REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	busy     bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Transcript and input history
	entries []entry
	history []string
	histPos int

	engine  Evaluator
	catalog *i18n.Catalog
	locale  string
	session string
	logger  *mdwlog.Logger
}

// NewModel creates the REPL model
func NewModel(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = i18n.DefaultCatalog()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	ti := textinput.New()
	ti.Placeholder = opts.Catalog.T(opts.Locale, "tui.placeholder")
	ti.Prompt = "> "
	ti.CharLimit = calc.MaxInputLength
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		input:   ti,
		spinner: sp,
		engine:  opts.Engine,
		catalog: opts.Catalog,
		locale:  opts.Locale,
		session: opts.SessionID,
		logger:  opts.Logger.WithCorrelationID(opts.SessionID).WithField("component", "tui"),
	}
}

// Run starts the REPL on the terminal and blocks until it quits or ctx ends
func Run(ctx context.Context, opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" || m.busy {
				return m, nil
			}
			m.input.Reset()
			m.remember(line)
			m.busy = true
			return m, tea.Batch(m.evaluate(line), m.spinner.Tick)

		case "up":
			if m.histPos > 0 {
				m.histPos--
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.histPos < len(m.history) {
				m.histPos++
			}
			if m.histPos == len(m.history) {
				m.input.Reset()
			} else {
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// title, input box, status bar and help
		height := msg.Height - 7
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - 6
		m.updateContent()

	case evalResultMsg:
		m.busy = false
		e := entry{input: msg.input}
		if msg.err != nil {
			e.failed = true
			e.output = describeError(msg.err)
			m.logger.Debug("evaluation failed", mdwlog.Fields{"line": msg.input, "code": mdwerror.GetCode(msg.err).String()})
		} else {
			e.output = msg.result.Text
		}
		m.entries = append(m.entries, e)
		m.updateContent()
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// remember appends line to the history unless it repeats the last entry
func (m *Model) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.histPos = len(m.history)
}

func (m Model) evaluate(line string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
		defer cancel()
		res, err := engine.Eval(ctx, line)
		return evalResultMsg{input: line, result: res, err: err}
	}
}

func describeError(err error) string {
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return fmt.Sprintf("[%s] %s", code, err.Error())
	}
	return err.Error()
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	label := m.catalog.T(m.locale, "tui.error")

	var s strings.Builder
	for _, e := range m.entries {
		s.WriteString(InputEchoStyle.Render("> " + e.input))
		s.WriteString("\n")
		if e.failed {
			s.WriteString(RenderError(label, e.output))
		} else {
			s.WriteString(ResultStyle.Render(e.output))
		}
		s.WriteString("\n")
	}
	m.viewport.SetContent(s.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "..."
	}

	var s strings.Builder
	s.WriteString(RenderTitle(m.catalog.T(m.locale, "tui.title")))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	prompt := m.input.View()
	if m.busy {
		prompt = m.spinner.View() + " " + prompt
	}
	s.WriteString(FocusedInputStyle.Render(prompt))
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")
	s.WriteString(RenderHelp(m.catalog.T(m.locale, "tui.help")))
	return s.String()
}

func (m Model) renderStatusBar() string {
	session := m.session
	if len(session) > 8 {
		session = session[:8]
	}
	parts := []string{
		m.catalog.T(m.locale, "tui.session", session),
		m.catalog.T(m.locale, "tui.history", len(m.history)),
	}
	return StatusBarStyle.Render(strings.Join(parts, " | "))
}
