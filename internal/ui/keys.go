package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// ---------------------------------------------------------------------------
// Keybindings
// ---------------------------------------------------------------------------

type globalKeyMap struct {
	Nav       key.Binding
	QuickChat key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var globalKeys = globalKeyMap{
	Nav:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "navigate")),
	QuickChat: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "quick chat")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k globalKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Nav, k.QuickChat, k.Help, k.Quit}
}

// pageHelp joins a page's bindings with the global ones.
type pageHelp []key.Binding

func (p pageHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, p...), globalKeys.Help, globalKeys.Quit)
}

func (p pageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{p, globalKeys.bindings()}
}

var _ help.KeyMap = pageHelp(nil)

type agentsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Filter    key.Binding
	Type      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	PageSize  key.Binding
	Columns   key.Binding
	Grab      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Open      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Cancel    key.Binding
}

var agentsKeys = agentsKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
	Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Select:    key.NewBinding(key.WithKeys("x", " ", "space"), key.WithHelp("x", "select")),
	SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
	Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Type:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "type")),
	PrevPage:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
	NextPage:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
	PageSize:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "rows/page")),
	Columns:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns")),
	Grab:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "grab/drop")),
	MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
	MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "details")),
	NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev tab")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

func (k agentsKeyMap) help() pageHelp {
	return pageHelp{k.Up, k.Down, k.Sort, k.Select, k.Filter, k.Type, k.PrevPage, k.NextPage, k.Columns, k.Grab, k.Open, k.NextTab}
}

type sheetKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Cycle  key.Binding
	Submit key.Binding
	Chat   key.Binding
	Close  key.Binding
}

var sheetKeys = sheetKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("⇧tab", "prev field")),
	Cycle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "update agent")),
	Chat:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "chat with agent")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

func (k sheetKeyMap) help() pageHelp {
	return pageHelp{k.Next, k.Prev, k.Cycle, k.Submit, k.Chat, k.Close}
}

type chatKeyMap struct {
	Send     key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	PanelTab key.Binding
	Scroll   key.Binding
	Back     key.Binding
}

var chatKeys = chatKeyMap{
	Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "send")),
	Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "input/panel")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:   key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "equip")),
	PanelTab: key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "modules/info")),
	Scroll:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/dn", "scroll")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func (k chatKeyMap) help(inputFocused bool) pageHelp {
	if inputFocused {
		return pageHelp{k.Send, k.Focus, k.Scroll, k.Back}
	}
	return pageHelp{k.Up, k.Down, k.Toggle, k.PanelTab, k.Focus, k.Back}
}

type metricsKeyMap struct {
	Range  key.Binding
	Metric key.Binding
}

var metricsKeys = metricsKeyMap{
	Range:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "range")),
	Metric: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metric")),
}

func (k metricsKeyMap) help() pageHelp {
	return pageHelp{k.Range, k.Metric}
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Close  key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "open chat")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

func (k pickerKeyMap) help() pageHelp {
	return pageHelp{k.Up, k.Down, k.Choose, k.Close}
}
