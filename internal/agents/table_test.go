package agents

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyAgents(n int) []Agent {
	rows := make([]Agent, n)
	for i := range rows {
		rows[i] = Agent{ID: i + 1, Name: fmt.Sprintf("Agent %02d", i+1), Type: "Builder", Status: StatusActive}
	}
	return rows
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStatus(" training ")
	require.NoError(t, err)
	assert.Equal(t, StatusTraining, got)

	_, err = ParseStatus("retired")
	assert.Error(t, err)
}

func TestFilterByStatusMatchesPredicate(t *testing.T) {
	rows := sample()
	training := FilterByStatus(rows, StatusTraining)

	var want []int
	for _, a := range rows {
		if a.Status == StatusTraining {
			want = append(want, a.ID)
		}
	}
	assert.ElementsMatch(t, want, IDs(training))
	for _, a := range training {
		assert.Equal(t, StatusTraining, a.Status)
	}

	counts := CountByStatus(rows)
	assert.Equal(t, 4, counts[StatusActive])
	assert.Equal(t, 2, counts[StatusTraining])
}

func TestToggleSortCycle(t *testing.T) {
	tbl := NewTable(sample(), 10)

	tbl.ToggleSort(ColName)
	col, dir := tbl.Sort()
	assert.Equal(t, ColName, col)
	assert.Equal(t, SortAsc, dir)
	assert.Equal(t, []int{3, 4, 1, 6, 5, 2, 7}, IDs(tbl.View()))

	tbl.ToggleSort(ColName)
	_, dir = tbl.Sort()
	assert.Equal(t, SortDesc, dir)
	assert.Equal(t, []int{7, 2, 5, 6, 1, 4, 3}, IDs(tbl.View()))

	tbl.ToggleSort(ColName)
	_, dir = tbl.Sort()
	assert.Equal(t, SortNone, dir)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, IDs(tbl.View()))
}

func TestSortNumericColumns(t *testing.T) {
	tbl := NewTable(sample(), 10)

	tbl.ToggleSort(ColSkills)
	assert.Equal(t, []int{7, 5, 2, 6, 3, 1, 4}, IDs(tbl.View()), "ties keep backing order")

	tbl.ToggleSort(ColBalance)
	col, dir := tbl.Sort()
	assert.Equal(t, ColBalance, col)
	assert.Equal(t, SortAsc, dir, "switching columns starts ascending")
	assert.Equal(t, []int{7, 6, 5, 2, 1, 3, 4}, IDs(tbl.View()))
}

func TestQueryAndTypeFilter(t *testing.T) {
	tbl := NewTable(sample(), 10)

	tbl.SetQuery("he")
	assert.Equal(t, []int{1, 2, 5, 7}, IDs(tbl.View()))

	tbl.SetTypeFilter("Builder")
	assert.Equal(t, []int{5}, IDs(tbl.View()))

	tbl.SetQuery("")
	tbl.SetTypeFilter("")
	assert.Len(t, tbl.View(), 7)

	tbl.SetQuery("nobody")
	assert.Empty(t, tbl.Page())
	assert.Equal(t, 1, tbl.PageCount())
}

func TestCycleTypeFilter(t *testing.T) {
	tbl := NewTable(sample(), 10)
	types := tbl.Types()
	require.Len(t, types, 7)
	assert.IsIncreasing(t, types)

	for _, want := range types {
		tbl.CycleTypeFilter()
		assert.Equal(t, want, tbl.TypeFilter())
	}
	tbl.CycleTypeFilter()
	assert.Equal(t, "", tbl.TypeFilter())
}

func TestColumnVisibility(t *testing.T) {
	tbl := NewTable(sample(), 10)
	assert.Equal(t, Columns, tbl.VisibleColumns())

	assert.True(t, tbl.ToggleColumn(ColName), "name cannot be hidden")
	assert.False(t, tbl.ToggleColumn(ColBalance))
	assert.NotContains(t, tbl.VisibleColumns(), ColBalance)
	assert.True(t, tbl.ToggleColumn(ColBalance))
	assert.Contains(t, tbl.VisibleColumns(), ColBalance)
}

func TestSelection(t *testing.T) {
	tbl := NewTable(manyAgents(25), 10)

	assert.Equal(t, SelectedNone, tbl.PageSelection())
	tbl.ToggleSelected(3)
	assert.True(t, tbl.IsSelected(3))
	assert.Equal(t, SelectedSome, tbl.PageSelection())

	tbl.ToggleAllOnPage()
	assert.Equal(t, SelectedAll, tbl.PageSelection())
	assert.Equal(t, 10, tbl.SelectedCount())

	tbl.NextPage()
	assert.Equal(t, SelectedNone, tbl.PageSelection(), "selection is per row, not per page")

	tbl.PrevPage()
	tbl.ToggleAllOnPage()
	assert.Equal(t, 0, tbl.SelectedCount())

	tbl.ToggleSelected(999)
	assert.Equal(t, 0, tbl.SelectedCount(), "unknown ids are ignored")
}

func TestSelectedCountFollowsFilter(t *testing.T) {
	tbl := NewTable(sample(), 10)
	tbl.ToggleSelected(1)
	tbl.ToggleSelected(2)
	tbl.SetQuery("ath")
	assert.Equal(t, 1, tbl.SelectedCount())
	assert.True(t, tbl.IsSelected(2), "filtering keeps hidden selections")
}

func TestPagination(t *testing.T) {
	tbl := NewTable(manyAgents(25), 10)
	assert.Equal(t, 3, tbl.PageCount())
	assert.False(t, tbl.CanPrevPage())
	assert.Len(t, tbl.Page(), 10)

	tbl.LastPage()
	assert.Equal(t, 2, tbl.PageIndex())
	assert.False(t, tbl.CanNextPage())
	assert.Len(t, tbl.Page(), 5)

	tbl.NextPage()
	assert.Equal(t, 2, tbl.PageIndex(), "next on last page is a no-op")

	tbl.FirstPage()
	assert.Equal(t, 0, tbl.PageIndex())

	tbl.SetPageSize(20)
	assert.Equal(t, 2, tbl.PageCount())
	tbl.SetPageSize(7)
	assert.Equal(t, DefaultPageSize, tbl.PageSize())

	tbl.CyclePageSize()
	assert.Equal(t, 20, tbl.PageSize())
}

func TestFilterClampsPage(t *testing.T) {
	tbl := NewTable(manyAgents(25), 10)
	tbl.LastPage()
	tbl.SetQuery("Agent 0")
	assert.Equal(t, 0, tbl.PageIndex())
	assert.Equal(t, 1, tbl.PageCount())
}

func TestTableMove(t *testing.T) {
	tbl := NewTable(sample(), 10)
	tbl.Move(1, 4)
	assert.Equal(t, []int{2, 3, 4, 1, 5, 6, 7}, IDs(tbl.Rows()))
	assert.Equal(t, []int{2, 3, 4, 1, 5, 6, 7}, IDs(tbl.View()))

	tbl.Move(1, 1)
	assert.Equal(t, []int{2, 3, 4, 1, 5, 6, 7}, IDs(tbl.Rows()))
}

func TestNewTableCopiesRows(t *testing.T) {
	rows := sample()
	tbl := NewTable(rows, 10)
	tbl.Move(7, 1)
	assert.Equal(t, 1, rows[0].ID)
}
