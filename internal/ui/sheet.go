package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mosaic-tui/internal/agents"
)

type sheetField int

const (
	fieldName sheetField = iota
	fieldType
	fieldStatus
	fieldSkills
	fieldBalance
	fieldCount
)

var sheetFieldLabels = [...]string{"Name", "Type", "Status", "Skills", "Balance"}

// sheetAction tells the owning page what the last key asked for.
type sheetAction int

const (
	sheetNone sheetAction = iota
	sheetClose
	sheetSubmit
	sheetChat
)

// trainingProgress is the fixed completion shown for agents in training.
const trainingProgress = 65

var recentActivity = []struct{ What, When string }{
	{"Completed research task", "2 hours ago"},
	{"Updated knowledge base", "5 hours ago"},
	{"Processed 12 requests", "1 day ago"},
}

// Sheet is the details panel for one agent. It edits a private copy of the
// row; nothing is ever written back to the table.
type Sheet struct {
	styles *Styles
	agent  agents.Agent
	types  []string
	skills []string

	name    textinput.Model
	count   textinput.Model
	balance textinput.Model
	typeIdx int
	status  agents.Status
	focus   sheetField

	height int
}

// NewSheet opens a sheet over a copy of a.
func NewSheet(st *Styles, a agents.Agent, types, skills []string) Sheet {
	types = slices.Clone(types)
	idx := slices.Index(types, a.Type)
	if idx < 0 {
		types = append(types, a.Type)
		idx = len(types) - 1
	}

	input := func(value string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = limit
		ti.Width = SheetWidth - 18
		ti.SetValue(value)
		return ti
	}

	s := Sheet{
		styles:  st,
		agent:   a,
		types:   types,
		skills:  slices.Clone(skills),
		name:    input(a.Name, 40),
		count:   input(strconv.Itoa(a.Skills), 4),
		balance: input(strconv.FormatFloat(a.Balance, 'f', 2, 64), 10),
		typeIdx: idx,
		status:  a.Status,
	}
	s.name.Focus()
	return s
}

// Agent is the row the sheet was opened on, unmodified.
func (s Sheet) Agent() agents.Agent { return s.agent }

// Draft returns the edited copy. Unparsable numbers keep the original value.
func (s Sheet) Draft() agents.Agent {
	d := s.agent
	d.Name = strings.TrimSpace(s.name.Value())
	d.Type = s.types[s.typeIdx]
	d.Status = s.status
	if n, err := strconv.Atoi(strings.TrimSpace(s.count.Value())); err == nil {
		d.Skills = n
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s.balance.Value()), 64); err == nil {
		d.Balance = f
	}
	return d
}

func (s *Sheet) SetHeight(h int) { s.height = h }

func (s Sheet) Help() pageHelp { return sheetKeys.help() }

func (s *Sheet) setFocus(f sheetField) {
	s.name.Blur()
	s.count.Blur()
	s.balance.Blur()
	s.focus = (f + fieldCount) % fieldCount
	switch s.focus {
	case fieldName:
		s.name.Focus()
	case fieldSkills:
		s.count.Focus()
	case fieldBalance:
		s.balance.Focus()
	}
}

func (s Sheet) Update(msg tea.Msg) (Sheet, tea.Cmd, sheetAction) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, sheetNone
	}

	switch {
	case key.Matches(km, sheetKeys.Close):
		return s, nil, sheetClose
	case key.Matches(km, sheetKeys.Submit):
		return s, nil, sheetSubmit
	case key.Matches(km, sheetKeys.Chat):
		return s, nil, sheetChat
	case key.Matches(km, sheetKeys.Next):
		s.setFocus(s.focus + 1)
		return s, nil, sheetNone
	case key.Matches(km, sheetKeys.Prev):
		s.setFocus(s.focus - 1)
		return s, nil, sheetNone
	}

	if key.Matches(km, sheetKeys.Cycle) {
		step := 1
		if km.String() == "left" {
			step = -1
		}
		switch s.focus {
		case fieldType:
			s.typeIdx = (s.typeIdx + step + len(s.types)) % len(s.types)
			return s, nil, sheetNone
		case fieldStatus:
			n := agents.Status(len(agents.Statuses()))
			s.status = (s.status + agents.Status(step) + n) % n
			return s, nil, sheetNone
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldSkills:
		s.count, cmd = s.count.Update(msg)
	case fieldBalance:
		s.balance, cmd = s.balance.Update(msg)
	}
	return s, cmd, sheetNone
}

func (s Sheet) View() string {
	st := s.styles
	a := s.agent
	var b strings.Builder

	avatar := lipgloss.NewStyle().Foreground(st.Theme.Accent).Bold(true).Render("(" + a.Initial() + ")")
	b.WriteString(avatar + " " + st.Title.Render(a.Name) + "  " + st.Status(a.Status) + "\n")
	b.WriteString(st.Dim.Render(a.Type+" · "+a.BalanceString()) + "\n\n")

	if a.Status == agents.StatusTraining {
		b.WriteString(st.Label.Render("Training progress") + "\n")
		b.WriteString(renderProgressBar(st, trainingProgress, SheetWidth-6) + "\n\n")
	}

	if len(s.skills) > 0 {
		b.WriteString(st.Label.Render("Skills") + "\n")
		var badges []string
		for _, sk := range s.skills {
			badges = append(badges, st.Badge.Render(sk))
		}
		b.WriteString(wrapBadges(badges, SheetWidth-6) + "\n\n")
	}

	if a.Status == agents.StatusActive {
		b.WriteString(st.Label.Render("Recent activity") + "\n")
		for _, r := range recentActivity {
			b.WriteString(fmt.Sprintf("  • %s %s\n", r.What, st.Dim.Render("· "+r.When)))
		}
		b.WriteString("\n")
	}

	b.WriteString(st.Title.Render("Edit agent") + "\n")
	for f := fieldName; f < fieldCount; f++ {
		label := pad(sheetFieldLabels[f], 9)
		var value string
		switch f {
		case fieldName:
			value = s.name.View()
		case fieldType:
			value = "‹ " + s.types[s.typeIdx] + " ›"
		case fieldStatus:
			value = "‹ " + st.Status(s.status) + " ›"
		case fieldSkills:
			value = s.count.View()
		case fieldBalance:
			value = s.balance.View() + st.Dim.Render(" ETH")
		}
		marker := "  "
		if f == s.focus {
			marker = st.Accent.Render("› ")
			label = st.Label.Render(label)
		} else {
			label = st.Dim.Render(label)
		}
		b.WriteString(marker + label + " " + value + "\n")
	}

	b.WriteString("\n" + st.Badge.Render("ctrl+s Update Agent") + " " + st.Badge.Render("ctrl+o Chat with Agent"))
	b.WriteString("\n" + st.Dim.Render("esc close"))

	return st.Panel.
		BorderForeground(st.Theme.Title).
		Width(SheetWidth - 2).
		Height(max(s.height-2, 1)).
		Render(b.String())
}

// wrapBadges lays rendered badges out in lines no wider than w.
func wrapBadges(badges []string, w int) string {
	var lines []string
	line := ""
	for _, bd := range badges {
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(bd) > w {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += bd
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
