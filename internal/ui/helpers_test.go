package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"mosaic-tui/internal/agents"
	"mosaic-tui/internal/seed"
)

// keyMsg turns a key name into the message bubbletea would deliver.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testStyles() *Styles { return NewStyles(DarkTheme()) }

func testApp(t *testing.T, opts Options) App {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	var m tea.Model = New(opts)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	m, _ = m.Update(loadedMsg{})
	return m.(App)
}

// pressApp sends keys in order and returns the app plus the last command.
func pressApp(t *testing.T, a App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var (
		m   tea.Model = a
		cmd tea.Cmd
	)
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m.(App), cmd
}

func testAgentsPage(t *testing.T) AgentsPage {
	t.Helper()
	d := seed.MustLoad()
	p := NewAgentsPage(testStyles(), zap.NewNop(), d.Agents, agents.DefaultPageSize, d.Skills, d.AgentTypes)
	p.SetSize(134, 40)
	return p
}

func pressAgents(p AgentsPage, keys ...string) (AgentsPage, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		p, cmd = p.Update(keyMsg(k))
	}
	return p, cmd
}

func testChatPage(t *testing.T, id int) ChatPage {
	t.Helper()
	p := NewChatPage(testStyles(), zap.NewNop(), seed.MustLoad(), id)
	p.SetSize(134, 40)
	return p
}

func pressChat(p ChatPage, keys ...string) (ChatPage, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		p, cmd = p.Update(keyMsg(k))
	}
	return p, cmd
}
