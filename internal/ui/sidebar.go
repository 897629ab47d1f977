package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mosaic-tui/internal/chat"
	"mosaic-tui/internal/seed"
)

// openChatMsg routes to the chat view of one agent. The id is resolved
// against the chat directory with the first-entry fallback.
type openChatMsg struct{ AgentID int }

func openChat(id int) tea.Cmd {
	return func() tea.Msg { return openChatMsg{AgentID: id} }
}

// Sidebar is the navigation shell: static link groups plus the quick chat
// picker.
type Sidebar struct {
	styles     *Styles
	links      seed.Links
	chatAgents []chat.Agent
	active     string

	pickerOpen   bool
	pickerCursor int

	height int
}

// NewSidebar builds the sidebar over the seed link groups.
func NewSidebar(st *Styles, links seed.Links, chatAgents []chat.Agent) Sidebar {
	return Sidebar{styles: st, links: links, chatAgents: chatAgents}
}

// NavLinks are the entries reachable with the number keys, in order.
func (s Sidebar) NavLinks() []string {
	return append(append([]string{}, s.links.Main...), s.links.Documents...)
}

// SetActive highlights the link with the given title.
func (s *Sidebar) SetActive(title string) { s.active = title }

// SetHeight sets the rendered height.
func (s *Sidebar) SetHeight(h int) { s.height = h }

// PickerOpen reports whether the quick chat modal is showing.
func (s Sidebar) PickerOpen() bool { return s.pickerOpen }

// OpenPicker shows the quick chat modal with the first agent highlighted.
func (s *Sidebar) OpenPicker() {
	s.pickerOpen = true
	s.pickerCursor = 0
}

// UpdatePicker handles keys while the modal is open. Choosing an agent
// closes the modal and emits openChatMsg.
func (s Sidebar) UpdatePicker(msg tea.KeyMsg) (Sidebar, tea.Cmd) {
	switch {
	case key.Matches(msg, pickerKeys.Close):
		s.pickerOpen = false
	case key.Matches(msg, pickerKeys.Up):
		if s.pickerCursor > 0 {
			s.pickerCursor--
		}
	case key.Matches(msg, pickerKeys.Down):
		if s.pickerCursor < len(s.chatAgents)-1 {
			s.pickerCursor++
		}
	case key.Matches(msg, pickerKeys.Choose):
		s.pickerOpen = false
		if len(s.chatAgents) == 0 {
			return s, nil
		}
		return s, openChat(s.chatAgents[s.pickerCursor].ID)
	}
	return s, nil
}

// View renders the sidebar column.
func (s Sidebar) View() string {
	st := s.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("◆ Mosaic") + "\n")
	b.WriteString(st.Dim.Render("Agent dashboard") + "\n\n")
	b.WriteString(st.Badge.Render("+ Quick Chat") + " " + st.Dim.Render("n") + "\n\n")

	n := 1
	group := func(title string, items []string, numbered bool) {
		b.WriteString(st.Dim.Render(title) + "\n")
		for _, item := range items {
			prefix := "  "
			if numbered {
				prefix = fmt.Sprintf("%d ", n)
				n++
			}
			line := pad(" "+prefix+item, SidebarWidth-3)
			if item == s.active {
				line = st.Selected.Foreground(st.Theme.Title).Bold(true).Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	group("Home", s.links.Main, true)
	group("Documents", s.links.Documents, true)
	group("More", s.links.Secondary, false)

	return lipgloss.NewStyle().
		Width(SidebarWidth-1).
		Height(max(s.height, 1)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(st.Theme.Border).
		Render(strings.TrimRight(b.String(), "\n"))
}

// PickerView renders the quick chat modal body.
func (s Sidebar) PickerView() string {
	st := s.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("Quick Chat") + "\n")
	b.WriteString(st.Dim.Render("Select an agent to start chatting.") + "\n\n")

	if len(s.chatAgents) == 0 {
		b.WriteString(st.Dim.Render("No agents available."))
	}
	for i, a := range s.chatAgents {
		avatar := lipgloss.NewStyle().Foreground(st.Theme.Accent).Bold(true).Render("(" + a.Initial() + ")")
		line := fmt.Sprintf(" %s %s  %s", avatar, pad(a.Name, 12), st.Dim.Render(pad(a.Type, 14)))
		if i == s.pickerCursor {
			line = st.Selected.Width(40).Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + st.Dim.Render("⏎ open · esc close"))

	return st.Panel.BorderForeground(st.Theme.Title).Width(44).Render(b.String())
}
