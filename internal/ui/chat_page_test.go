package ui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitClearsInputAndKeepsTranscript(t *testing.T) {
	p := testChatPage(t, 1)
	before := p.transcript.View()
	count := len(p.messages)

	p, cmd := pressChat(p, "hello", "enter")
	assert.Nil(t, cmd)
	assert.Empty(t, p.Input())
	assert.Len(t, p.messages, count)
	assert.Equal(t, before, p.transcript.View())
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	p := testChatPage(t, 1)
	p, _ = pressChat(p, "   ", "enter")
	assert.Equal(t, "   ", p.Input())
}

func TestModuleToggleRoundTrip(t *testing.T) {
	p := testChatPage(t, 1)
	before := p.Modules().IDs()

	p, _ = pressChat(p, "tab")
	require.False(t, p.Capturing())

	p, _ = pressChat(p, "down", "down", "down", "down", "down", "space")
	assert.True(t, p.Modules().Has(6))
	assert.Contains(t, p.View(), "6 of 10 modules equipped")

	p, _ = pressChat(p, "space")
	if diff := cmp.Diff(before, p.Modules().IDs()); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}

	// Re-equipping moves the module to the end but keeps the same set.
	p, _ = pressChat(p, "up", "up", "up", "up", "up", "space", "space")
	assert.ElementsMatch(t, before, p.Modules().IDs())
	assert.Equal(t, 1, p.Modules().IDs()[len(before)-1])
}

func TestHeaderBadges(t *testing.T) {
	p := testChatPage(t, 1)
	header := p.renderHeader(60)
	lines := strings.Split(header, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"(A)", "Athena", "Research"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Research", "Analysis", "Summary", "+2"}, strings.Fields(lines[1]))
}

func TestRestyleRerendersDescription(t *testing.T) {
	p := testChatPage(t, 1)
	p.description = "stale"
	p.Restyle()
	assert.NotEqual(t, "stale", p.description)
	assert.Contains(t, p.description, "Athena")
}

func TestTranscriptStaysAtBottom(t *testing.T) {
	p := testChatPage(t, 2)
	assert.True(t, p.AtBottom())

	p.SetSize(100, 14)
	assert.True(t, p.AtBottom())

	p.SetSize(140, 45)
	assert.True(t, p.AtBottom())
}

func TestConversationsEmptyState(t *testing.T) {
	p := testChatPage(t, 4)
	require.Equal(t, "Artemis", p.Agent().Name)
	require.Empty(t, p.convs)

	view := p.View()
	assert.Contains(t, view, "No conversations yet")
	assert.Contains(t, view, "Start a new chat")
	assert.Contains(t, view, "Artemis")
}

func TestConversationsListed(t *testing.T) {
	p := testChatPage(t, 1)
	require.NotEmpty(t, p.convs)
	assert.NotContains(t, p.View(), "No conversations yet")
}

func TestInfoTab(t *testing.T) {
	p := testChatPage(t, 3)
	p, _ = pressChat(p, "tab", "]")
	view := p.View()
	assert.Contains(t, view, "NFT Details")
	assert.Contains(t, view, "#A7F391")
	assert.Contains(t, view, "Tasks Completed")
	assert.NotContains(t, view, "Active Modules")

	// Module keys do nothing on the info tab.
	before := p.Modules().IDs()
	p, _ = pressChat(p, "space")
	assert.Equal(t, before, p.Modules().IDs())

	p, _ = pressChat(p, "[")
	assert.Contains(t, p.View(), "Active Modules")
}

func TestNarrowChatDropsSideColumns(t *testing.T) {
	p := testChatPage(t, 1)
	p.SetSize(80, 30)
	view := p.View()
	assert.Contains(t, view, "Athena")
	assert.NotContains(t, view, "Active Modules")
	assert.NotContains(t, view, "Conversations")
}

func TestPanelEscapeNavigatesBack(t *testing.T) {
	p := testChatPage(t, 1)
	p, cmd := pressChat(p, "esc")
	assert.Nil(t, cmd, "first esc only leaves the input")
	assert.False(t, p.Capturing())

	_, cmd = pressChat(p, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{view: viewDashboard}, cmd())
}
