package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	toonbridge "github.com/wippyai/toon-bridge"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var delimiterCycle = []string{
	toonbridge.DelimiterComma,
	toonbridge.DelimiterTab,
	toonbridge.DelimiterPipe,
}

type interactiveModel struct {
	bridge     *toonbridge.Bridge
	input      textinput.Model
	result     string
	err        error
	jsonToToon bool
	delimIdx   int
	strict     bool
	pretty     bool
}

func newInteractiveModel(bridge *toonbridge.Bridge) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `{"name":"Alice","age":30}`
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 72

	return &interactiveModel{
		bridge:     bridge,
		input:      ti,
		jsonToToon: true,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.jsonToToon = !m.jsonToToon
			m.result, m.err = "", nil
			return m, nil
		case "ctrl+d":
			m.delimIdx = (m.delimIdx + 1) % len(delimiterCycle)
			return m, nil
		case "ctrl+s":
			m.strict = !m.strict
			return m, nil
		case "ctrl+p":
			m.pretty = !m.pretty
			return m, nil
		case "enter":
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) convert() {
	src := m.input.Value()
	if m.jsonToToon {
		m.result, m.err = m.bridge.JSONToTOON(src, delimiterCycle[m.delimIdx], m.strict)
	} else {
		m.result, m.err = m.bridge.TOONToJSON(src, m.pretty, m.strict)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TOON Converter"))
	b.WriteString("\n\n")

	direction := "JSON → TOON"
	if !m.jsonToToon {
		direction = "TOON → JSON"
	}
	b.WriteString(modeStyle.Render(fmt.Sprintf("%s   delimiter=%s strict=%t pretty=%t",
		direction, delimiterCycle[m.delimIdx], m.strict, m.pretty)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter convert · tab direction · ^d delimiter · ^s strict · ^p pretty · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(bridge *toonbridge.Bridge) error {
	p := tea.NewProgram(newInteractiveModel(bridge))
	_, err := p.Run()
	return err
}
