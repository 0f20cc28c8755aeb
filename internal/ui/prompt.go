package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/watchlist/internal/shared"
)

// Prompter asks the user for a single line of input.
type Prompter interface {
	Prompt(label string, hidden bool) (string, error)
}

// TerminalPrompter runs a one-field bubbletea program per prompt.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalPrompter creates a [TerminalPrompter] reading keys from in and drawing to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

// Prompt shows label and returns what was typed. Hidden input is never echoed.
//
// Esc or Ctrl+C returns [shared.ErrCancelled].
func (p *TerminalPrompter) Prompt(label string, hidden bool) (string, error) {
	final, err := tea.NewProgram(newPromptModel(label, hidden), tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return final.(promptModel).result()
}

// promptModel is a bubbletea model around a single [textinput.Model].
type promptModel struct {
	label     string
	input     textinput.Model
	help      help.Model
	keys      keyMap
	done      bool
	cancelled bool
}

func newPromptModel(label string, hidden bool) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 128
	if hidden {
		ti.EchoMode = textinput.EchoNone
	}
	ti.Focus()

	return promptModel{label: label, input: ti, help: help.New(), keys: newKeyMap()}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.submit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return Styles.Title(m.label) + "\n"
	}

	var b strings.Builder
	b.WriteString(Styles.Title(m.label) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(m.help.View(m.keys) + "\n")
	return b.String()
}

func (m promptModel) result() (string, error) {
	if m.cancelled || !m.done {
		return "", shared.ErrCancelled
	}
	return m.input.Value(), nil
}
