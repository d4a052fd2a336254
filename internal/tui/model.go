package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/addressbook/internal/command"
)

// Prompt is shown before every input line.
const Prompt = "Enter a command: "

// Executor runs one assistant input line.
type Executor interface {
	Execute(line string) (command.Reply, error)
}

// Model is the Bubble Tea model for the interactive assistant. Each
// submitted line is executed and its output printed above the prompt.
type Model struct {
	exec     Executor
	theme    Theme
	greeting string
	input    textinput.Model
	help     help.Model
	keys     replKeys
	history  []string
	histIdx  int
	exited   bool // Set by an exit command, as opposed to an abort key.
	quitting bool
}

// ModelOption configures optional Model parameters.
type ModelOption func(*Model)

// WithTheme sets the output theme.
func WithTheme(t Theme) ModelOption {
	return func(m *Model) { m.theme = t }
}

// WithGreeting prints text once when the program starts.
func WithGreeting(text string) ModelOption {
	return func(m *Model) { m.greeting = text }
}

// NewModel creates a Model executing input through exec.
func NewModel(exec Executor, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = Prompt
	ti.Focus()

	m := Model{
		exec:  exec,
		theme: DefaultTheme(),
		input: ti,
		help:  help.New(),
		keys:  REPLKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init prints the greeting and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	if m.greeting == "" {
		return textinput.Blink
	}
	return tea.Batch(tea.Println(strings.TrimRight(m.greeting, "\n")), textinput.Blink)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(0, msg.Width-len(Prompt)-1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current line and prints the echoed input with its output.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histIdx = len(m.history)

	reply, err := m.exec.Execute(line)

	var out string
	if err != nil {
		out = m.theme.RenderError(err)
	} else {
		out = m.theme.Render(reply)
	}

	echo := tea.Println(Prompt + line)
	if out != "" {
		echo = tea.Sequence(echo, tea.Println(out))
	}
	if err == nil && reply.Kind == command.KindExit {
		m.exited = true
		m.quitting = true
		return m, tea.Sequence(echo, tea.Quit)
	}
	return m, echo
}

// recall moves through input history by delta.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histIdx = min(max(m.histIdx+delta, 0), len(m.history))
	if m.histIdx == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

// Exited reports whether the session ended through an exit command.
func (m Model) Exited() bool {
	return m.exited
}

// View renders the prompt and the key help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + m.help.ShortHelpView(m.keys.ShortHelp()) + "\n"
}
