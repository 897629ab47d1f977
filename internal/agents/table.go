package agents

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
)

// Column identifies a data column of the agent table.
type Column string

const (
	ColName       Column = "name"
	ColType       Column = "type"
	ColStatus     Column = "status"
	ColSkills     Column = "skills"
	ColBalance    Column = "balance"
	ColLastActive Column = "last active"
)

// Columns lists the data columns in display order.
var Columns = []Column{ColName, ColType, ColStatus, ColSkills, ColBalance, ColLastActive}

// Hideable reports whether the column may be hidden. The name column always
// stays visible.
func (c Column) Hideable() bool { return c != ColName }

// SortDir is the direction of the active sort.
type SortDir int

const (
	SortNone SortDir = iota
	SortAsc
	SortDesc
)

// PageSelection summarises how many rows of the current page are selected.
type PageSelection int

const (
	SelectedNone PageSelection = iota
	SelectedSome
	SelectedAll
)

// PageSizes are the page sizes offered by the rows-per-page control.
var PageSizes = []int{10, 20, 30, 40, 50}

// DefaultPageSize is used when no valid size is configured.
const DefaultPageSize = 10

// Table is the state behind the agent list: a reorderable backing order plus
// the sort, filter, visibility, selection and pagination applied on top.
type Table struct {
	rows []Agent

	sortCol Column
	sortDir SortDir

	query      string
	typeFilter string

	hidden   map[Column]bool
	selected map[int]bool

	pager paginator.Model
}

// NewTable creates a table over a copy of rows.
func NewTable(rows []Agent, pageSize int) *Table {
	p := paginator.New()
	p.PerPage = validPageSize(pageSize)

	t := &Table{
		rows:     slices.Clone(rows),
		hidden:   make(map[Column]bool),
		selected: make(map[int]bool),
		pager:    p,
	}
	t.repage()
	return t
}

func validPageSize(n int) int {
	if slices.Contains(PageSizes, n) {
		return n
	}
	return DefaultPageSize
}

// Rows returns the backing order, unaffected by sort and filter.
func (t *Table) Rows() []Agent { return slices.Clone(t.rows) }

// Len is the number of backing rows.
func (t *Table) Len() int { return len(t.rows) }

// View returns the filtered and sorted rows across all pages.
func (t *Table) View() []Agent {
	out := make([]Agent, 0, len(t.rows))
	q := strings.ToLower(strings.TrimSpace(t.query))
	for _, a := range t.rows {
		if q != "" && !strings.Contains(strings.ToLower(a.Name), q) {
			continue
		}
		if t.typeFilter != "" && a.Type != t.typeFilter {
			continue
		}
		out = append(out, a)
	}

	if t.sortDir == SortNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b Agent) int {
		c := compareBy(t.sortCol, a, b)
		if t.sortDir == SortDesc {
			return -c
		}
		return c
	})
	return out
}

func compareBy(col Column, a, b Agent) int {
	switch col {
	case ColType:
		return cmp.Compare(strings.ToLower(a.Type), strings.ToLower(b.Type))
	case ColStatus:
		return cmp.Compare(a.Status, b.Status)
	case ColSkills:
		return cmp.Compare(a.Skills, b.Skills)
	case ColBalance:
		return cmp.Compare(a.Balance, b.Balance)
	case ColLastActive:
		return cmp.Compare(strings.ToLower(a.LastActive), strings.ToLower(b.LastActive))
	default:
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

// Page returns the rows of the current page.
func (t *Table) Page() []Agent {
	view := t.View()
	start, end := t.pager.GetSliceBounds(len(view))
	return view[start:end]
}

// ---------------------------------------------------------------------------
// Sorting
// ---------------------------------------------------------------------------

// ToggleSort cycles col through ascending, descending and unsorted. Picking
// a different column starts it at ascending.
func (t *Table) ToggleSort(col Column) {
	if t.sortCol != col || t.sortDir == SortNone {
		t.sortCol, t.sortDir = col, SortAsc
		return
	}
	switch t.sortDir {
	case SortAsc:
		t.sortDir = SortDesc
	default:
		t.sortCol, t.sortDir = "", SortNone
	}
}

// Sort reports the active sort column and direction.
func (t *Table) Sort() (Column, SortDir) { return t.sortCol, t.sortDir }

// ClearSort returns the table to backing order.
func (t *Table) ClearSort() { t.sortCol, t.sortDir = "", SortNone }

// ---------------------------------------------------------------------------
// Filtering
// ---------------------------------------------------------------------------

// SetQuery filters rows to names containing q, case-insensitively.
func (t *Table) SetQuery(q string) {
	t.query = q
	t.pager.Page = 0
	t.repage()
}

// Query returns the active name filter.
func (t *Table) Query() string { return t.query }

// SetTypeFilter restricts rows to one agent type; "" clears it.
func (t *Table) SetTypeFilter(typ string) {
	t.typeFilter = typ
	t.pager.Page = 0
	t.repage()
}

// TypeFilter returns the active type filter.
func (t *Table) TypeFilter() string { return t.typeFilter }

// Types returns the distinct agent types in the backing rows, sorted.
func (t *Table) Types() []string {
	seen := make(map[string]bool)
	var types []string
	for _, a := range t.rows {
		if !seen[a.Type] {
			seen[a.Type] = true
			types = append(types, a.Type)
		}
	}
	slices.Sort(types)
	return types
}

// CycleTypeFilter steps the type filter through "" and every type.
func (t *Table) CycleTypeFilter() {
	options := append([]string{""}, t.Types()...)
	i := slices.Index(options, t.typeFilter)
	t.SetTypeFilter(options[(i+1)%len(options)])
}

// ---------------------------------------------------------------------------
// Column visibility
// ---------------------------------------------------------------------------

// ToggleColumn flips a column's visibility and reports whether it is now
// visible. Columns that cannot be hidden stay visible.
func (t *Table) ToggleColumn(col Column) bool {
	if !col.Hideable() {
		return true
	}
	t.hidden[col] = !t.hidden[col]
	return !t.hidden[col]
}

// Visible reports whether col is shown.
func (t *Table) Visible(col Column) bool { return !t.hidden[col] }

// VisibleColumns lists the shown columns in display order.
func (t *Table) VisibleColumns() []Column {
	cols := make([]Column, 0, len(Columns))
	for _, c := range Columns {
		if t.Visible(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

// ToggleSelected flips the selection of one row.
func (t *Table) ToggleSelected(id int) {
	if IndexOf(t.rows, id) < 0 {
		return
	}
	if t.selected[id] {
		delete(t.selected, id)
	} else {
		t.selected[id] = true
	}
}

// IsSelected reports whether the row is selected.
func (t *Table) IsSelected(id int) bool { return t.selected[id] }

// ToggleAllOnPage selects every row on the current page, or clears them if
// they are all selected already.
func (t *Table) ToggleAllOnPage() {
	page := t.Page()
	all := t.PageSelection() == SelectedAll
	for _, a := range page {
		if all {
			delete(t.selected, a.ID)
		} else {
			t.selected[a.ID] = true
		}
	}
}

// PageSelection reports whether none, some or all rows on the page are
// selected.
func (t *Table) PageSelection() PageSelection {
	page := t.Page()
	n := 0
	for _, a := range page {
		if t.selected[a.ID] {
			n++
		}
	}
	switch {
	case n == 0:
		return SelectedNone
	case n == len(page):
		return SelectedAll
	default:
		return SelectedSome
	}
}

// SelectedCount counts selected rows that pass the current filter.
func (t *Table) SelectedCount() int {
	n := 0
	for _, a := range t.View() {
		if t.selected[a.ID] {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Pagination
// ---------------------------------------------------------------------------

func (t *Table) repage() {
	if n := len(t.View()); n > 0 {
		t.pager.SetTotalPages(n)
	} else {
		t.pager.TotalPages = 1
	}
	if t.pager.Page >= t.pager.TotalPages {
		t.pager.Page = t.pager.TotalPages - 1
	}
}

// PageIndex is the zero-based current page.
func (t *Table) PageIndex() int { return t.pager.Page }

// PageCount is the number of pages; an empty table still has one page.
func (t *Table) PageCount() int { return t.pager.TotalPages }

// PageSize is the number of rows per page.
func (t *Table) PageSize() int { return t.pager.PerPage }

// SetPageSize changes rows per page and returns to the first page. Sizes
// outside PageSizes fall back to DefaultPageSize.
func (t *Table) SetPageSize(n int) {
	t.pager.PerPage = validPageSize(n)
	t.pager.Page = 0
	t.repage()
}

// CyclePageSize steps through PageSizes.
func (t *Table) CyclePageSize() {
	i := slices.Index(PageSizes, t.pager.PerPage)
	t.SetPageSize(PageSizes[(i+1)%len(PageSizes)])
}

// CanPrevPage reports whether a previous page exists.
func (t *Table) CanPrevPage() bool { return t.pager.Page > 0 }

// CanNextPage reports whether a next page exists.
func (t *Table) CanNextPage() bool { return !t.pager.OnLastPage() }

// NextPage advances one page if possible.
func (t *Table) NextPage() { t.pager.NextPage() }

// PrevPage goes back one page if possible.
func (t *Table) PrevPage() { t.pager.PrevPage() }

// FirstPage jumps to the first page.
func (t *Table) FirstPage() { t.pager.Page = 0 }

// LastPage jumps to the last page.
func (t *Table) LastPage() { t.pager.Page = t.pager.TotalPages - 1 }

// ---------------------------------------------------------------------------
// Reordering
// ---------------------------------------------------------------------------

// Move places activeID where overID currently sits in the backing order.
func (t *Table) Move(activeID, overID int) {
	t.rows = MoveByID(t.rows, activeID, overID)
}
