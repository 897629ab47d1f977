package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"mosaic-tui/internal/agents"
)

type agentsTab int

const (
	tabAll agentsTab = iota
	tabActive
	tabTraining
	tabFavorites
	tabCount
)

var agentsTabNames = [...]string{"All Agents", "Active", "In Training", "Favorites"}

// Column widths; the last visible column takes the remaining space.
var columnWidths = map[agents.Column]int{
	agents.ColName:       16,
	agents.ColType:       20,
	agents.ColStatus:     10,
	agents.ColSkills:     9,
	agents.ColBalance:    11,
	agents.ColLastActive: 14,
}

var columnTitles = map[agents.Column]string{
	agents.ColName:       "NAME",
	agents.ColType:       "TYPE",
	agents.ColStatus:     "STATUS",
	agents.ColSkills:     "SKILLS",
	agents.ColBalance:    "BALANCE",
	agents.ColLastActive: "LAST ACTIVE",
}

// AgentsPage is the "My Agents" view: the interactive table, the
// status tabs and the details sheet.
type AgentsPage struct {
	styles *Styles
	logger *zap.Logger

	table  *agents.Table
	skills map[string][]string
	types  []string

	tab      agentsTab
	cursor   int
	colFocus int

	filter    textinput.Model
	filtering bool

	columnMenu bool
	menuCursor int

	grabbed int // id of the row being moved, 0 when none

	sheet     Sheet
	sheetOpen bool

	notice string

	width  int
	height int
}

// NewAgentsPage builds the page over its own copy of rows.
func NewAgentsPage(st *Styles, logger *zap.Logger, rows []agents.Agent, pageSize int, skills map[string][]string, types []string) AgentsPage {
	fi := textinput.New()
	fi.Placeholder = "Filter agents..."
	fi.Prompt = "/ "
	fi.CharLimit = 40
	fi.Width = 24

	return AgentsPage{
		styles: st,
		logger: logger,
		table:  agents.NewTable(rows, pageSize),
		skills: skills,
		types:  types,
		filter: fi,
	}
}

// Table exposes the underlying table state.
func (m AgentsPage) Table() *agents.Table { return m.table }

// Capturing reports whether the page wants every key, including the global
// shortcuts.
func (m AgentsPage) Capturing() bool {
	return m.filtering || m.columnMenu || m.sheetOpen || m.grabbed != 0
}

// SheetOpen reports whether the details sheet is showing.
func (m AgentsPage) SheetOpen() bool { return m.sheetOpen }

// Sheet returns the open details sheet.
func (m AgentsPage) Sheet() Sheet { return m.sheet }

func (m *AgentsPage) SetSize(w, h int) {
	m.width, m.height = w, h
	m.sheet.SetHeight(h)
}

// SetPageSize applies a new rows-per-page value.
func (m *AgentsPage) SetPageSize(n int) {
	m.table.SetPageSize(n)
	m.cursor = 0
}

func (m AgentsPage) Help() pageHelp {
	if m.sheetOpen {
		return m.sheet.Help()
	}
	return agentsKeys.help()
}

// tabRows returns the read-only rows of a status tab.
func (m AgentsPage) tabRows(tab agentsTab) []agents.Agent {
	switch tab {
	case tabActive:
		return agents.FilterByStatus(m.table.Rows(), agents.StatusActive)
	case tabTraining:
		return agents.FilterByStatus(m.table.Rows(), agents.StatusTraining)
	case tabFavorites:
		return nil
	default:
		return m.table.Page()
	}
}

func (m AgentsPage) current() (agents.Agent, bool) {
	page := m.table.Page()
	if m.cursor < 0 || m.cursor >= len(page) {
		return agents.Agent{}, false
	}
	return page[m.cursor], true
}

func (m *AgentsPage) clampCursor() {
	m.cursor = clamp(m.cursor, 0, max(len(m.table.Page())-1, 0))
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m AgentsPage) Update(msg tea.Msg) (AgentsPage, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	m.notice = ""

	switch {
	case m.sheetOpen:
		return m.updateSheet(km)
	case m.filtering:
		return m.updateFilter(km)
	case m.columnMenu:
		return m.updateColumnMenu(km), nil
	case m.grabbed != 0:
		return m.updateGrab(km), nil
	}

	switch {
	case key.Matches(km, agentsKeys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(km, agentsKeys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	}
	if m.tab != tabAll {
		return m, nil
	}

	switch {
	case key.Matches(km, agentsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, agentsKeys.Down):
		if m.cursor < len(m.table.Page())-1 {
			m.cursor++
		}
	case key.Matches(km, agentsKeys.Left):
		if m.colFocus > 0 {
			m.colFocus--
		}
	case key.Matches(km, agentsKeys.Right):
		if m.colFocus < len(m.table.VisibleColumns())-1 {
			m.colFocus++
		}
	case key.Matches(km, agentsKeys.Sort):
		m.table.ToggleSort(m.table.VisibleColumns()[m.colFocus])
	case key.Matches(km, agentsKeys.Select):
		if a, ok := m.current(); ok {
			m.table.ToggleSelected(a.ID)
		}
	case key.Matches(km, agentsKeys.SelectAll):
		m.table.ToggleAllOnPage()
	case key.Matches(km, agentsKeys.Filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(km, agentsKeys.Type):
		m.table.CycleTypeFilter()
		m.clampCursor()
	case key.Matches(km, agentsKeys.PrevPage):
		m.table.PrevPage()
		m.cursor = 0
	case key.Matches(km, agentsKeys.NextPage):
		m.table.NextPage()
		m.cursor = 0
	case key.Matches(km, agentsKeys.PageSize):
		m.table.CyclePageSize()
		m.cursor = 0
	case key.Matches(km, agentsKeys.Columns):
		m.columnMenu = true
		m.menuCursor = 0
	case key.Matches(km, agentsKeys.Grab):
		if a, ok := m.current(); ok && m.canReorder() {
			m.grabbed = a.ID
		}
	case key.Matches(km, agentsKeys.MoveUp):
		m.step(-1)
	case key.Matches(km, agentsKeys.MoveDown):
		m.step(1)
	case key.Matches(km, agentsKeys.Open):
		if a, ok := m.current(); ok {
			m.sheet = NewSheet(m.styles, a, m.types, m.skills[a.Name])
			m.sheet.SetHeight(m.height)
			m.sheetOpen = true
		}
	case key.Matches(km, agentsKeys.Cancel):
		if m.table.Query() != "" || m.table.TypeFilter() != "" {
			m.filter.Reset()
			m.table.SetQuery("")
			m.table.SetTypeFilter("")
			m.clampCursor()
		}
	}
	return m, nil
}

// canReorder refuses manual moves while a sort is active, since the rows
// on screen would not follow the backing order.
func (m *AgentsPage) canReorder() bool {
	if _, dir := m.table.Sort(); dir != agents.SortNone {
		m.notice = "Clear the sort to reorder rows."
		return false
	}
	return true
}

// step swaps the row under the cursor with its neighbour on the page.
func (m *AgentsPage) step(delta int) {
	page := m.table.Page()
	to := m.cursor + delta
	if m.cursor >= len(page) || to < 0 || to >= len(page) || !m.canReorder() {
		return
	}
	m.table.Move(page[m.cursor].ID, page[to].ID)
	m.cursor = to
}

func (m AgentsPage) updateGrab(km tea.KeyMsg) AgentsPage {
	switch {
	case key.Matches(km, agentsKeys.Cancel):
		m.grabbed = 0
	case key.Matches(km, agentsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, agentsKeys.Down):
		if m.cursor < len(m.table.Page())-1 {
			m.cursor++
		}
	case key.Matches(km, agentsKeys.Grab), key.Matches(km, agentsKeys.Open):
		if over, ok := m.current(); ok {
			m.table.Move(m.grabbed, over.ID)
			m.logger.Debug("agent reordered", zap.Int("id", m.grabbed), zap.Int("over", over.ID))
		}
		m.grabbed = 0
	}
	return m
}

func (m AgentsPage) updateFilter(km tea.KeyMsg) (AgentsPage, tea.Cmd) {
	switch km.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.table.SetQuery("")
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(km)
	m.table.SetQuery(m.filter.Value())
	m.clampCursor()
	return m, cmd
}

func (m AgentsPage) updateColumnMenu(km tea.KeyMsg) AgentsPage {
	hideable := hideableColumns()
	switch {
	case key.Matches(km, agentsKeys.Cancel), key.Matches(km, agentsKeys.Columns):
		m.columnMenu = false
	case key.Matches(km, agentsKeys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(km, agentsKeys.Down):
		if m.menuCursor < len(hideable)-1 {
			m.menuCursor++
		}
	case key.Matches(km, agentsKeys.Select), key.Matches(km, agentsKeys.Open):
		m.table.ToggleColumn(hideable[m.menuCursor])
		m.colFocus = clamp(m.colFocus, 0, len(m.table.VisibleColumns())-1)
	}
	return m
}

func (m AgentsPage) updateSheet(km tea.KeyMsg) (AgentsPage, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action sheetAction
	)
	m.sheet, cmd, action = m.sheet.Update(km)
	switch action {
	case sheetClose:
		m.sheetOpen = false
	case sheetSubmit:
		draft := m.sheet.Draft()
		m.logger.Info("agent edit discarded",
			zap.Int("id", draft.ID),
			zap.String("name", draft.Name),
			zap.String("type", draft.Type),
			zap.String("status", draft.Status.String()))
		m.notice = fmt.Sprintf("%s is sample data; edits are not saved.", m.sheet.Agent().Name)
		m.sheetOpen = false
	case sheetChat:
		m.sheetOpen = false
		return m, openChat(m.sheet.Agent().ID)
	}
	return m, cmd
}

func hideableColumns() []agents.Column {
	var cols []agents.Column
	for _, c := range agents.Columns {
		if c.Hideable() {
			cols = append(cols, c)
		}
	}
	return cols
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m AgentsPage) View() string {
	w := m.width
	if w == 0 {
		w = DefaultWidth - SidebarWidth
	}
	tableW := w
	if m.sheetOpen {
		tableW = w - SheetWidth
	}

	var sections []string
	sections = append(sections, m.renderTabs())

	switch m.tab {
	case tabAll:
		sections = append(sections, m.renderToolbar(tableW))
		if m.columnMenu {
			sections = append(sections, m.renderColumnMenu())
		}
		sections = append(sections, m.renderTable(tableW), m.renderFooter(tableW))
	case tabFavorites:
		sections = append(sections, placeholder(m.styles, tableW, 6, "No favorite agents yet.\nMark agents as favorites to see them here."))
	default:
		sections = append(sections, m.renderStatic(m.tabRows(m.tab), tableW))
	}
	if m.notice != "" {
		sections = append(sections, m.styles.Accent.Render(m.notice))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.sheetOpen {
		return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(tableW).Render(body), m.sheet.View())
	}
	return body
}

func (m AgentsPage) renderTabs() string {
	st := m.styles
	var tabs []string
	for t := tabAll; t < tabCount; t++ {
		label := agentsTabNames[t]
		switch t {
		case tabActive:
			label = fmt.Sprintf("%s (%d)", label, len(m.tabRows(tabActive)))
		case tabTraining:
			label = fmt.Sprintf("%s (%d)", label, len(m.tabRows(tabTraining)))
		}
		if t == m.tab {
			tabs = append(tabs, st.TabOn.Render(label))
		} else {
			tabs = append(tabs, st.Tab.Render(label))
		}
	}
	return strings.Join(tabs, " ") + "\n"
}

func (m AgentsPage) renderToolbar(w int) string {
	st := m.styles
	var filter string
	if m.filtering || m.table.Query() != "" {
		filter = m.filter.View()
	} else {
		filter = st.Dim.Render("/ Filter agents...")
	}

	typ := m.table.TypeFilter()
	if typ == "" {
		typ = "All"
	}
	hidden := len(agents.Columns) - len(m.table.VisibleColumns())
	cols := "Columns"
	if hidden > 0 {
		cols = fmt.Sprintf("Columns (%d hidden)", hidden)
	}

	right := st.Badge.Render("t Type: "+typ) + " " + st.Badge.Render("c "+cols)
	gap := max(w-lipgloss.Width(filter)-lipgloss.Width(right)-1, 1)
	return filter + strings.Repeat(" ", gap) + right
}

func (m AgentsPage) renderColumnMenu() string {
	st := m.styles
	var b strings.Builder
	b.WriteString(st.Label.Render("Toggle columns") + "\n")
	for i, c := range hideableColumns() {
		box := "[ ]"
		if m.table.Visible(c) {
			box = "[x]"
		}
		line := fmt.Sprintf(" %s %s", box, columnTitles[c])
		if i == m.menuCursor {
			line = st.Selected.Width(24).Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(st.Dim.Render("x toggle · esc done"))
	return st.Panel.Render(b.String())
}

// cell renders one table cell of a column at its width.
func (m AgentsPage) cell(a agents.Agent, col agents.Column, w int) string {
	switch col {
	case agents.ColName:
		return pad(a.Name, w)
	case agents.ColType:
		return pad(a.Type, w)
	case agents.ColStatus:
		return lipgloss.NewStyle().Foreground(m.styles.StatusColor(a.Status)).Render(pad(a.Status.String(), w))
	case agents.ColSkills:
		return padRight(fmt.Sprint(a.Skills), w)
	case agents.ColBalance:
		return padRight(a.BalanceString(), w)
	default:
		return pad(a.LastActive, w)
	}
}

func (m AgentsPage) widths(cols []agents.Column, w int) []int {
	ws := make([]int, len(cols))
	used := 8
	for i, c := range cols {
		ws[i] = columnWidths[c]
		used += ws[i] + 1
	}
	if len(ws) > 0 {
		ws[len(ws)-1] = max(ws[len(ws)-1], ws[len(ws)-1]+w-used)
	}
	return ws
}

func (m AgentsPage) renderTable(w int) string {
	st := m.styles
	cols := m.table.VisibleColumns()
	ws := m.widths(cols, w)
	sortCol, sortDir := m.table.Sort()

	headerBox := "[ ]"
	switch m.table.PageSelection() {
	case agents.SelectedAll:
		headerBox = "[x]"
	case agents.SelectedSome:
		headerBox = "[-]"
	}

	header := "   " + headerBox + " "
	for i, c := range cols {
		title := columnTitles[c]
		if c == sortCol {
			switch sortDir {
			case agents.SortAsc:
				title += " ▲"
			case agents.SortDesc:
				title += " ▼"
			}
		}
		h := pad(title, ws[i])
		if i == m.colFocus && m.tab == tabAll {
			h = st.Accent.Render(h)
		}
		header += h + " "
	}
	rows := []string{st.Header.Render(header)}

	page := m.table.Page()
	if len(page) == 0 {
		rows = append(rows, placeholder(st, w, 3, "No results."))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	for i, a := range page {
		marker := "  "
		switch {
		case a.ID == m.grabbed:
			marker = st.Accent.Render("≡ ")
		case i == m.cursor && m.grabbed != 0:
			marker = st.Accent.Render("→ ")
		case i == m.cursor:
			marker = st.Accent.Render("› ")
		}
		box := "[ ]"
		if m.table.IsSelected(a.ID) {
			box = "[x]"
		}
		line := " " + marker + box + " "
		for j, c := range cols {
			line += m.cell(a, c, ws[j]) + " "
		}
		if i == m.cursor {
			line = st.Selected.Width(w).Render(line)
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStatic draws a status tab: same columns, no cursor or selection.
func (m AgentsPage) renderStatic(rows []agents.Agent, w int) string {
	st := m.styles
	cols := agents.Columns
	ws := m.widths(cols, w)

	header := "  "
	for i, c := range cols {
		header += pad(columnTitles[c], ws[i]) + " "
	}
	lines := []string{st.Header.Render(header)}
	if len(rows) == 0 {
		lines = append(lines, placeholder(st, w, 3, "No results."))
	}
	for _, a := range rows {
		line := "  "
		for j, c := range cols {
			line += m.cell(a, c, ws[j]) + " "
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m AgentsPage) renderFooter(w int) string {
	st := m.styles
	left := st.Dim.Render(fmt.Sprintf("%d of %d agent(s) selected.", m.table.SelectedCount(), len(m.table.View())))

	nav := func(s string, ok bool) string {
		if ok {
			return st.Label.Render(s)
		}
		return st.Dim.Render(s)
	}
	right := fmt.Sprintf("Rows per page %d   Page %d of %d  %s %s",
		m.table.PageSize(), m.table.PageIndex()+1, m.table.PageCount(),
		nav("‹", m.table.CanPrevPage()), nav("›", m.table.CanNextPage()))

	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(st.Theme.Border).
		Render(left + strings.Repeat(" ", gap) + right)
}
