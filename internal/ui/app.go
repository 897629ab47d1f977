package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"mosaic-tui/internal/config"
	"mosaic-tui/internal/seed"
)

type viewID int

const (
	viewDashboard viewID = iota
	viewAgents
	viewChat
	viewPlaceholder
)

var viewNames = [...]string{"dashboard", "agents", "chat", "placeholder"}

func (v viewID) String() string { return viewNames[v] }

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type loadedMsg struct{}

func loadCmd() tea.Cmd {
	return tea.Tick(1200*time.Millisecond, func(time.Time) tea.Msg { return loadedMsg{} })
}

// ConfigReloadedMsg carries a freshly loaded config into the running app.
type ConfigReloadedMsg struct{ Config *config.Config }

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Options configures a new App.
type Options struct {
	Config *config.Config
	Data   *seed.Data
	Logger *zap.Logger

	// StartAgent, when non-zero, opens the chat view for that agent id.
	StartAgent int
}

// App is the root bubbletea model: loading splash, sidebar and the active
// view.
type App struct {
	styles *Styles
	logger *zap.Logger
	data   *seed.Data
	cfg    *config.Config

	view     viewID
	linkName string

	sidebar   Sidebar
	dashboard MetricsPage
	agents    AgentsPage
	chat      ChatPage
	hasChat   bool

	loading bool
	spinner spinner.Model
	help    help.Model

	width  int
	height int
}

// New builds the app from config and seed data.
func New(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	d := opts.Data
	if d == nil {
		d = seed.MustLoad()
	}

	st := NewStyles(ThemeByName(cfg.Theme))
	ref, err := cfg.ReferenceDate()
	if err != nil || ref.IsZero() {
		ref = d.ReferenceDate
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(st.Theme.Title)

	a := App{
		styles:    st,
		logger:    logger,
		data:      d,
		cfg:       cfg,
		sidebar:   NewSidebar(st, d.Links, d.ChatAgents),
		dashboard: NewMetricsPage(st, d.Cards, d.Series, ref, cfg.ChartRange(), cfg.ChartMetric()),
		agents:    NewAgentsPage(st, logger, d.Agents, cfg.Agents.PageSize, d.Skills, d.AgentTypes),
		loading:   true,
		spinner:   sp,
		help:      help.New(),
		width:     DefaultWidth,
		height:    DefaultHeight,
	}

	switch {
	case opts.StartAgent != 0 || cfg.StartView == "chat":
		a = a.openChat(opts.StartAgent)
	case cfg.StartView == "agents":
		a = a.show(viewAgents, "My Agents")
	default:
		a = a.show(viewDashboard, "Dashboard")
	}
	a.resize()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, loadCmd())
}

// Screenshot renders one loaded frame at the given size.
func (a App) Screenshot(w, h int) string {
	a.loading = false
	a.width, a.height = w, h
	a.resize()
	return a.View()
}

func (a App) contentSize() (int, int) {
	w := a.width
	if !IsCompact(a.width) {
		w -= SidebarWidth
	}
	return w, max(a.height-HeaderHeight-FooterHeight, 5)
}

func (a *App) resize() {
	w, h := a.contentSize()
	a.help.Width = a.width
	a.sidebar.SetHeight(h)
	a.dashboard.SetCompact(IsCompact(a.width))
	a.dashboard.SetSize(w, h)
	a.agents.SetSize(w, h)
	if a.hasChat {
		a.chat.SetSize(w, h)
	}
}

func (a App) show(v viewID, link string) App {
	if a.view != v || a.linkName != link {
		a.logger.Info("view changed", zap.String("view", v.String()), zap.String("link", link))
	}
	a.view = v
	a.linkName = link
	a.sidebar.SetActive(link)
	return a
}

// openChat builds a fresh chat view for id.
func (a App) openChat(id int) App {
	a.chat = NewChatPage(a.styles, a.logger, a.data, id)
	a.hasChat = true
	w, h := a.contentSize()
	a.chat.SetSize(w, h)
	return a.show(viewChat, "Agent Chat")
}

// follow routes a sidebar link to its view.
func (a App) follow(link string) App {
	switch link {
	case "Dashboard":
		return a.show(viewDashboard, link)
	case "My Agents":
		return a.show(viewAgents, link)
	case "Agent Chat":
		id := 0
		if a.hasChat {
			id = a.chat.Agent().ID
		}
		return a.openChat(id)
	default:
		return a.show(viewPlaceholder, link)
	}
}

func (a App) capturing() bool {
	switch a.view {
	case viewAgents:
		return a.agents.Capturing()
	case viewChat:
		return a.chat.Capturing()
	}
	return false
}

// applyConfig applies only the settings that differ from the current
// config, so a reload keeps choices made with keys for untouched settings.
func (a App) applyConfig(cfg *config.Config) App {
	old := a.cfg
	if cfg.Theme != old.Theme {
		*a.styles = *NewStyles(ThemeByName(cfg.Theme))
		a.spinner.Style = lipgloss.NewStyle().Foreground(a.styles.Theme.Title)
		if a.hasChat {
			a.chat.Restyle()
		}
	}
	if cfg.Agents.PageSize != old.Agents.PageSize {
		a.agents.SetPageSize(cfg.Agents.PageSize)
	}
	if cfg.Chart.Range != old.Chart.Range {
		a.dashboard.SetRange(cfg.ChartRange())
	}
	if cfg.Chart.Metric != old.Chart.Metric {
		a.dashboard.SetMetric(cfg.ChartMetric())
	}
	if cfg.Chart.ReferenceDate != old.Chart.ReferenceDate {
		ref, err := cfg.ReferenceDate()
		if err != nil || ref.IsZero() {
			ref = a.data.ReferenceDate
		}
		a.dashboard.SetReference(ref)
	}
	a.cfg = cfg
	a.logger.Info("config reloaded",
		zap.String("theme", cfg.Theme),
		zap.Int("page_size", cfg.Agents.PageSize),
		zap.String("range", cfg.Chart.Range),
		zap.String("metric", cfg.Chart.Metric),
		zap.String("reference_date", cfg.Chart.ReferenceDate))
	return a
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil

	case loadedMsg:
		a.loading = false
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case ConfigReloadedMsg:
		if msg.Config != nil {
			a = a.applyConfig(msg.Config)
		}
		return a, nil

	case openChatMsg:
		return a.openChat(msg.AgentID), nil

	case navigateMsg:
		switch msg.view {
		case viewAgents:
			return a.show(viewAgents, "My Agents"), nil
		default:
			return a.show(viewDashboard, "Dashboard"), nil
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.loading {
			return a, nil
		}
		if a.sidebar.PickerOpen() {
			var cmd tea.Cmd
			a.sidebar, cmd = a.sidebar.UpdatePicker(msg)
			return a, cmd
		}
		if !a.capturing() {
			switch {
			case key.Matches(msg, globalKeys.Quit):
				return a, tea.Quit
			case key.Matches(msg, globalKeys.Help):
				a.help.ShowAll = !a.help.ShowAll
				return a, nil
			case key.Matches(msg, globalKeys.QuickChat):
				a.sidebar.OpenPicker()
				return a, nil
			case key.Matches(msg, globalKeys.Nav):
				links := a.sidebar.NavLinks()
				if i := int(msg.Runes[0] - '1'); i >= 0 && i < len(links) {
					return a.follow(links[i]), nil
				}
				return a, nil
			}
		}
	}

	return a.updateActive(msg)
}

func (a App) updateActive(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewAgents:
		a.agents, cmd = a.agents.Update(msg)
	case viewChat:
		a.chat, cmd = a.chat.Update(msg)
	}
	return a, cmd
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (a App) View() string {
	st := a.styles
	w := a.width

	if a.loading {
		return lipgloss.NewStyle().
			Width(w).Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(st.Theme.Title).
			Render(a.spinner.View() + "  Loading your agents...")
	}

	title := lipgloss.NewStyle().
		Bold(true).Foreground(st.Theme.Title).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(st.Theme.Border).
		Padding(0, 2).Width(w - 2).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("◆ Mosaic  │  %s  │  %d agents", a.linkName, len(a.data.Agents)))

	cw, ch := a.contentSize()
	var content string
	if a.sidebar.PickerOpen() {
		content = lipgloss.Place(cw, ch, lipgloss.Center, lipgloss.Center, a.sidebar.PickerView())
	} else {
		content = lipgloss.NewStyle().MaxWidth(cw).MaxHeight(ch).Render(a.activeView(cw, ch))
	}

	body := content
	if !IsCompact(a.width) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), content)
	}

	helpView := lipgloss.NewStyle().Foreground(st.Theme.Dim).Width(w).Align(lipgloss.Center).Render(a.help.View(a.keyMap()))
	return lipgloss.JoinVertical(lipgloss.Left, title, body, helpView)
}

func (a App) activeView(w, h int) string {
	switch a.view {
	case viewDashboard:
		return a.dashboard.View()
	case viewAgents:
		return a.agents.View()
	case viewChat:
		return a.chat.View()
	default:
		return placeholder(a.styles, w, h, a.linkName+"\n\nThis section is not available in the demo.")
	}
}

func (a App) keyMap() help.KeyMap {
	switch {
	case a.sidebar.PickerOpen():
		return pickerKeys.help()
	case a.view == viewDashboard:
		return a.dashboard.Help()
	case a.view == viewAgents:
		return a.agents.Help()
	case a.view == viewChat:
		return a.chat.Help()
	}
	return pageHelp(nil)
}
