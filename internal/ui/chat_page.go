package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"mosaic-tui/internal/chat"
	"mosaic-tui/internal/seed"
)

// navigateMsg switches the app to another top-level view.
type navigateMsg struct{ view viewID }

func navigate(v viewID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

type chatFocus int

const (
	focusInput chatFocus = iota
	focusPanel
)

type panelTab int

const (
	panelModules panelTab = iota
	panelInfo
)

// ChatPage is the per-agent chat view. A fresh page is built on every
// navigation, so module toggles never outlive it.
type ChatPage struct {
	styles *Styles
	logger *zap.Logger

	agent    chat.Agent
	convs    []chat.Conversation
	messages []chat.Message
	modules  *chat.ActiveModules
	market   []seed.Listing
	profile  seed.Profile
	composer chat.Composer

	input      textinput.Model
	transcript viewport.Model

	focus        chatFocus
	tab          panelTab
	moduleCursor int

	description string
	descWidth   int

	width  int
	height int
}

// NewChatPage resolves agentID against the chat directory, falling back to
// the first agent, and builds the view over d.
func NewChatPage(st *Styles, logger *zap.Logger, d *seed.Data, agentID int) ChatPage {
	agent, _ := chat.Resolve(d.ChatAgents, agentID)

	in := textinput.New()
	in.Placeholder = "Message " + agent.Name + "..."
	in.Prompt = "› "
	in.CharLimit = 2000
	in.Focus()

	m := ChatPage{
		styles:     st,
		logger:     logger,
		agent:      agent,
		convs:      chat.ConversationsFor(d.Conversations, agent.ID),
		messages:   d.Messages,
		modules:    chat.NewActiveModules(d.Modules),
		market:     d.Marketplace,
		profile:    d.Profile,
		composer:   chat.Composer{AgentID: agent.ID},
		input:      in,
		transcript: viewport.New(0, 0),
	}
	m.SetSize(DefaultWidth-SidebarWidth, DefaultHeight-HeaderHeight-FooterHeight)
	return m
}

// Agent is the resolved agent.
func (m ChatPage) Agent() chat.Agent { return m.agent }

// Modules is the page's active module set.
func (m ChatPage) Modules() *chat.ActiveModules { return m.modules }

// Input is the current, unsent input text.
func (m ChatPage) Input() string { return m.input.Value() }

// AtBottom reports whether the transcript is scrolled to the latest message.
func (m ChatPage) AtBottom() bool { return m.transcript.AtBottom() }

// Capturing is true while the input has focus.
func (m ChatPage) Capturing() bool { return m.focus == focusInput }

func (m ChatPage) Help() pageHelp { return chatKeys.help(m.focus == focusInput) }

// panelWidth is zero when the page is too narrow for the side panel.
func (m ChatPage) panelWidth() int {
	if m.width < 2*SidePanelWidth {
		return 0
	}
	return SidePanelWidth
}

func (m ChatPage) convWidth() int {
	if m.width < FullFeaturesWidth {
		return 0
	}
	return ConversationsWidth
}

// SetSize lays the page out and keeps the transcript pinned to the bottom.
func (m *ChatPage) SetSize(w, h int) {
	m.width, m.height = w, h
	mainW := max(w-m.convWidth()-m.panelWidth(), 20)

	m.input.Width = mainW - 6
	m.transcript.Width = mainW - 2
	m.transcript.Height = max(h-8, 3)
	m.refreshTranscript()

	if pw := m.panelWidth() - 6; pw > 0 && pw != m.descWidth {
		m.descWidth = pw
		m.description = m.renderDescription(pw)
	}
}

// Restyle re-renders the cached markdown description after a theme change.
func (m *ChatPage) Restyle() {
	m.descWidth = 0
	m.SetSize(m.width, m.height)
}

// refreshTranscript re-renders the messages and scrolls to the end.
func (m *ChatPage) refreshTranscript() {
	m.transcript.SetContent(m.renderMessages(m.transcript.Width))
	m.transcript.GotoBottom()
}

func (m ChatPage) renderDescription(w int) string {
	md := m.profile.DescriptionFor(m.agent.Name, m.agent.Type)
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.styles.Theme.Name),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.logger.Warn("failed to render description", zap.Error(err))
		return md
	}
	return strings.Trim(out, "\n")
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m ChatPage) Update(msg tea.Msg) (ChatPage, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Matches(km, chatKeys.Scroll) {
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(km, chatKeys.Send):
			m.submit()
			return m, nil
		case key.Matches(km, chatKeys.Focus), key.Matches(km, chatKeys.Back):
			m.focus = focusPanel
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, chatKeys.Focus):
		m.focus = focusInput
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(km, chatKeys.Back):
		return m, navigate(viewDashboard)
	case key.Matches(km, chatKeys.PanelTab):
		if m.tab == panelModules {
			m.tab = panelInfo
		} else {
			m.tab = panelModules
		}
	case m.tab != panelModules:
	case key.Matches(km, chatKeys.Up):
		if m.moduleCursor > 0 {
			m.moduleCursor--
		}
	case key.Matches(km, chatKeys.Down):
		if m.moduleCursor < len(m.modules.Catalog())-1 {
			m.moduleCursor++
		}
	case key.Matches(km, chatKeys.Toggle):
		if cat := m.modules.Catalog(); m.moduleCursor < len(cat) {
			mod := cat[m.moduleCursor]
			on := m.modules.Toggle(mod.ID)
			m.logger.Debug("module toggled", zap.Int("agent_id", m.agent.ID), zap.String("module", mod.Name), zap.Bool("equipped", on))
		}
	}
	return m, nil
}

// submit hands the input to the composer. Blank input changes nothing;
// anything else is logged, dropped and cleared from the input. The
// transcript is left as it is.
func (m *ChatPage) submit() {
	sub, ok := m.composer.Submit(m.input.Value())
	if !ok {
		return
	}
	m.logger.Info("chat message discarded",
		zap.Int("agent_id", sub.AgentID),
		zap.Int("length", len(sub.Text)))
	m.input.Reset()
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m ChatPage) View() string {
	var cols []string
	if m.convWidth() > 0 {
		cols = append(cols, m.renderConversations())
	}
	cols = append(cols, m.renderMain())
	if m.panelWidth() > 0 {
		cols = append(cols, m.renderPanel())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m ChatPage) renderConversations() string {
	st := m.styles
	w := ConversationsWidth
	var b strings.Builder
	b.WriteString(st.Title.Render("Conversations") + "\n\n")
	if len(m.convs) == 0 {
		b.WriteString(st.Label.Render("No conversations yet") + "\n")
		b.WriteString(st.Dim.Width(w - 4).Render("Start a new chat with " + m.agent.Name))
	}
	for _, c := range m.convs {
		b.WriteString(st.Label.Render(truncate(c.Title, w-4)) + "\n")
		b.WriteString(st.Dim.Render(truncate(c.LastMessage, w-4)) + "\n")
		b.WriteString(st.Dim.Render(c.Timestamp) + "\n\n")
	}
	return lipgloss.NewStyle().
		Width(w-1).
		Height(max(m.height, 1)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(st.Theme.Border).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m ChatPage) renderHeader(w int) string {
	st := m.styles
	avatar := lipgloss.NewStyle().Foreground(st.Theme.Accent).Bold(true).Render("(" + m.agent.Initial() + ")")
	title := avatar + " " + st.Title.Render(m.agent.Name) + "  " + st.Dim.Render(m.agent.Type)

	colors := make(map[string]lipgloss.Color)
	for _, mod := range m.modules.Active() {
		colors[mod.Name] = st.ModuleColor(mod.Style)
	}
	var badges []string
	for _, name := range m.modules.Badges(3) {
		style := st.Badge
		if c, ok := colors[name]; ok {
			style = style.Foreground(c)
		}
		badges = append(badges, style.Render(name))
	}
	return lipgloss.NewStyle().Width(w).Render(title + "\n" + strings.Join(badges, " "))
}

func (m ChatPage) renderMessages(w int) string {
	st := m.styles
	if w < 10 {
		w = 10
	}
	bubbleW := w * 3 / 4
	var out []string
	for _, msg := range m.messages {
		if msg.Sender == chat.SenderUser {
			bubble := lipgloss.NewStyle().
				Foreground(st.Theme.Fg).
				Background(st.Theme.SelBg).
				Padding(0, 1).
				Width(bubbleW).
				Render(msg.Content)
			stamp := st.Dim.Render("You · " + msg.Timestamp)
			out = append(out,
				lipgloss.PlaceHorizontal(w, lipgloss.Right, stamp),
				lipgloss.PlaceHorizontal(w, lipgloss.Right, bubble), "")
			continue
		}
		bubble := lipgloss.NewStyle().
			Foreground(st.Theme.Fg).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(st.Theme.Accent).
			PaddingLeft(1).
			Width(bubbleW).
			Render(msg.Content)
		stamp := st.Accent.Render(m.agent.Name) + st.Dim.Render(" · "+msg.Timestamp)
		out = append(out, stamp, bubble, "")
	}
	return strings.Join(out, "\n")
}

func (m ChatPage) renderMain() string {
	st := m.styles
	w := max(m.width-m.convWidth()-m.panelWidth(), 20)

	inputBorder := st.Theme.Border
	if m.focus == focusInput {
		inputBorder = st.Theme.Title
	}
	input := st.Panel.BorderForeground(inputBorder).Width(w - 2).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(w),
		"",
		m.transcript.View(),
		input,
		st.Dim.Render(fmt.Sprintf(" %s can make mistakes. Messages are not sent anywhere.", m.agent.Name)))
}

func (m ChatPage) renderPanel() string {
	st := m.styles
	w := SidePanelWidth

	tab := func(label string, on bool) string {
		if on {
			return st.TabOn.Render(label)
		}
		return st.Tab.Render(label)
	}
	var b strings.Builder
	b.WriteString(tab("Modules", m.tab == panelModules) + " " + tab("Agent Info", m.tab == panelInfo) + "\n\n")
	if m.tab == panelModules {
		b.WriteString(m.renderModules(w - 4))
	} else {
		b.WriteString(m.renderInfo(w - 4))
	}

	border := st.Theme.Border
	if m.focus == focusPanel {
		border = st.Theme.Title
	}
	return st.Panel.BorderForeground(border).Width(w - 2).Height(max(m.height-2, 1)).Render(b.String())
}

func (m ChatPage) renderModules(w int) string {
	st := m.styles
	catalog := m.modules.Catalog()
	var b strings.Builder
	b.WriteString(st.Label.Render("Active Modules") + "\n")
	b.WriteString(st.Dim.Render(fmt.Sprintf("%d of %d modules equipped", m.modules.Len(), len(catalog))) + "\n\n")

	for i, mod := range catalog {
		dot, style := "○", st.Dim
		if m.modules.Has(mod.ID) {
			dot, style = "●", lipgloss.NewStyle().Foreground(st.ModuleColor(mod.Style)).Bold(true)
		}
		marker := "  "
		if i == m.moduleCursor && m.focus == focusPanel {
			marker = st.Accent.Render("› ")
		}
		b.WriteString(marker + style.Render(dot+" "+truncate(mod.Name, w-6)) + "\n")
	}

	if len(m.market) > 0 {
		b.WriteString("\n" + st.Label.Render("Module Marketplace") + "\n")
		for _, l := range m.market {
			b.WriteString(st.Title.Render(truncate(l.Name, w-10)) + " " + st.Badge.Render(l.Tag) + "\n")
			b.WriteString(lipgloss.NewStyle().Width(w).Foreground(st.Theme.Fg).Render(l.Description) + "\n")
			b.WriteString(st.Up.Render(l.Price) + "  " + st.Dim.Render("Install") + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m ChatPage) renderInfo(w int) string {
	st := m.styles
	p := m.profile
	var b strings.Builder

	avatar := lipgloss.NewStyle().Foreground(st.Theme.Accent).Bold(true).Render("(" + m.agent.Initial() + ")")
	b.WriteString(avatar + " " + st.Title.Render(m.agent.Name) + "\n")
	b.WriteString(st.Dim.Render(fmt.Sprintf("%s · %d modules", m.agent.Type, m.agent.Modules)) + "\n\n")

	half := w / 2
	stat := func(label, value string) string {
		return lipgloss.NewStyle().Width(half).Render(st.Dim.Render(label) + "\n" + st.Label.Render(value))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stat("Tasks Completed", p.TasksCompleted), stat("Success Rate", p.SuccessRate)) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stat("Wallet Balance", p.WalletBalance), stat("Last Active", p.LastActive)) + "\n\n")

	b.WriteString(st.Label.Render("About") + "\n")
	desc := m.description
	if desc == "" {
		desc = p.DescriptionFor(m.agent.Name, m.agent.Type)
	}
	b.WriteString(desc + "\n\n")

	b.WriteString(st.Label.Render("NFT Details") + "\n")
	for _, kv := range [][2]string{
		{"Token ID", p.TokenID},
		{"Collection", p.Collection},
		{"Blockchain", p.Blockchain},
		{"Created", p.Created},
	} {
		b.WriteString(st.Dim.Render(pad(kv[0], 12)) + kv[1] + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
