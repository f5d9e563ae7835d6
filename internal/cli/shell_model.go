package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/devterm/internal/cli/formatter"
	"github.com/alexanderramin/devterm/internal/terminal"
)

// commandResultMsg carries a finished command back to the shell.
type commandResultMsg struct {
	input string
	out   terminal.Output
}

// shellModel is the bubbletea Model for the interactive terminal.
type shellModel struct {
	ctx context.Context
	app *App

	// bubbletea components
	input    textinput.Model
	viewport viewport.Model
	ready    bool
	width    int

	// transcript holds rendered entries, oldest first.
	transcript []string
	// pending is true while a command runs.
	pending bool

	// history
	history    []string
	historyIdx int

	quitting bool
}

// newShellModel creates the shell model and its welcome banner.
func newShellModel(ctx context.Context, app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	hist := loadHistory(app.HistoryPath)

	var owner, headline string
	if snap, err := app.Source.Snapshot(ctx); err == nil && snap != nil {
		owner, headline = snap.Owner, snap.Headline
	}

	return shellModel{
		ctx:        ctx,
		app:        app,
		input:      ti,
		transcript: []string{formatter.FormatShellWelcome(owner, headline)},
		history:    hist,
		historyIdx: len(hist),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(formatter.Prompt()) - 1
		// Two lines for the status and prompt.
		height := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case commandResultMsg:
		m.pending = false
		if msg.out.Clear {
			m.transcript = nil
		} else if text := formatter.FormatOutput(msg.out, m.width); text != "" {
			m.transcript = append(m.transcript, text)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		// One command at a time.
		if m.pending {
			return m, nil
		}
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	var b strings.Builder
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.content())
	}
	b.WriteString("\n")
	if m.pending {
		b.WriteString(formatter.Dim("Processing..."))
	}
	b.WriteString("\n")
	b.WriteString(formatter.Prompt() + m.input.View())
	return b.String()
}

// ── prompt ───────────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if input == "" {
			return m, nil
		}
		m.addHistory(input)

		switch strings.ToLower(input) {
		case "exit", "quit":
			m.quitting = true
			return m, tea.Quit
		}

		m.transcript = append(m.transcript, formatter.FormatEcho(input))
		m.pending = true
		m.refresh()
		return m, m.runCommand(input)

	case tea.KeyTab:
		m.complete()
		return m, nil

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// runCommand interprets input off the update loop.
func (m shellModel) runCommand(input string) tea.Cmd {
	ctx, interp := m.ctx, m.app.Interpreter
	return func() tea.Msg {
		return commandResultMsg{input: input, out: interp.Interpret(ctx, input)}
	}
}

// complete fills a unique command match or lists the candidates.
func (m *shellModel) complete() {
	value := m.input.Value()
	if strings.ContainsAny(value, " \t") {
		return
	}
	matches := terminal.Complete(value)
	switch len(matches) {
	case 0:
		return
	case 1:
		m.input.SetValue(matches[0])
		m.input.CursorEnd()
	default:
		m.transcript = append(m.transcript, formatter.FormatCompletions(matches))
		m.refresh()
	}
}

func (m *shellModel) content() string {
	return strings.Join(m.transcript, "\n")
}

// refresh pushes the transcript into the viewport and scrolls to the end.
func (m *shellModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoBottom()
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		appendHistory(m.app.HistoryPath, line)
	}
	m.historyIdx = len(m.history)
}

func (m *shellModel) historyUp() {
	if m.historyIdx <= 0 {
		return
	}
	m.historyIdx--
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m *shellModel) historyDown() {
	if m.historyIdx >= len(m.history) {
		return
	}
	m.historyIdx++
	if m.historyIdx == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

// runShell starts the interactive terminal.
func runShell(ctx context.Context, app *App) error {
	p := tea.NewProgram(newShellModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
