package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var directory = []Agent{
	{ID: 1, Name: "Athena", Type: "Research", Modules: 5},
	{ID: 2, Name: "Hermes", Type: "Communication", Modules: 3},
	{ID: 3, Name: "Apollo", Type: "Creative", Modules: 4},
}

var catalog = []Module{
	{ID: 1, Name: "Research", Style: "blue", Equipped: true},
	{ID: 2, Name: "Analysis", Style: "purple", Equipped: true},
	{ID: 3, Name: "Summary", Style: "green", Equipped: true},
	{ID: 4, Name: "Citation", Style: "amber", Equipped: true},
	{ID: 5, Name: "Web Search", Style: "indigo"},
	{ID: 6, Name: "Code Generation", Style: "cyan"},
}

func TestResolve(t *testing.T) {
	for _, want := range directory {
		got, ok := Resolve(directory, want.ID)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	t.Run("unknown id falls back to first", func(t *testing.T) {
		got, ok := Resolve(directory, 99)
		require.True(t, ok)
		assert.Equal(t, "Athena", got.Name)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, ok := Resolve(nil, 1)
		assert.False(t, ok)
	})
}

func TestConversationsFor(t *testing.T) {
	convs := []Conversation{
		{ID: 1, AgentID: 1, Title: "Research on blockchain"},
		{ID: 2, AgentID: 1, Title: "NFT market analysis"},
		{ID: 3, AgentID: 2, Title: "Email drafts"},
	}
	got := ConversationsFor(convs, 1)
	require.Len(t, got, 2)
	assert.Equal(t, "Research on blockchain", got[0].Title)
	assert.Empty(t, ConversationsFor(convs, 5))
}

func TestComposerSubmit(t *testing.T) {
	c := Composer{AgentID: 2}

	sub, ok := c.Submit("  hello there ")
	require.True(t, ok)
	assert.Equal(t, Submission{AgentID: 2, Text: "hello there"}, sub)

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, ok := c.Submit(blank)
		assert.False(t, ok, "%q should be rejected", blank)
	}
}

func TestParseSender(t *testing.T) {
	s, err := ParseSender("Agent")
	require.NoError(t, err)
	assert.Equal(t, SenderAgent, s)

	_, err = ParseSender("system")
	assert.Error(t, err)
}

func TestActiveModulesSeededFromEquipped(t *testing.T) {
	am := NewActiveModules(catalog)
	assert.Equal(t, []int{1, 2, 3, 4}, am.IDs())
	assert.Equal(t, 4, am.Len())
	assert.Len(t, am.Catalog(), 6)
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	for _, m := range catalog {
		am := NewActiveModules(catalog)
		before := am.IDs()

		am.Toggle(m.ID)
		assert.NotEqual(t, before, am.IDs())
		am.Toggle(m.ID)
		assert.ElementsMatch(t, before, am.IDs(), "toggling %s twice", m.Name)
	}
}

func TestToggle(t *testing.T) {
	am := NewActiveModules(catalog)

	assert.True(t, am.Toggle(6))
	assert.True(t, am.Has(6))
	assert.Equal(t, []int{1, 2, 3, 4, 6}, am.IDs())

	assert.False(t, am.Toggle(2))
	assert.False(t, am.Has(2))

	assert.False(t, am.Toggle(42))
	assert.Equal(t, []int{1, 3, 4, 6}, am.IDs(), "unknown ids are ignored")
}

func TestBadges(t *testing.T) {
	am := NewActiveModules(catalog)
	assert.Equal(t, []string{"Research", "Analysis", "Summary", "+1"}, am.Badges(3))
	assert.Equal(t, []string{"Research", "Analysis", "Summary", "Citation"}, am.Badges(4))

	for _, id := range am.IDs() {
		am.Toggle(id)
	}
	assert.Empty(t, am.Badges(3))
}
