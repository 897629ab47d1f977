package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic-tui/internal/agents"
	"mosaic-tui/internal/chat"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	require.Len(t, d.Agents, 7)
	assert.Equal(t, "Athena", d.Agents[0].Name)
	assert.Equal(t, agents.StatusTraining, d.Agents[6].Status)

	counts := agents.CountByStatus(d.Agents)
	assert.Equal(t, 5, counts[agents.StatusActive])
	assert.Equal(t, 2, counts[agents.StatusTraining])

	skills, balance := 0, 0.0
	for _, a := range d.Agents {
		skills += a.Skills
		balance += a.Balance
		assert.NotEmpty(t, a.Avatar)
	}
	assert.Equal(t, 23, skills, "matches the Total Skills card")
	assert.InDelta(t, 0.87, balance, 1e-9, "matches the Agent Wallets card")

	assert.Len(t, d.ChatAgents, 5)
	assert.Len(t, d.Conversations, 4)
	assert.Len(t, d.Modules, 10)
	assert.Len(t, d.Messages, 4)
	assert.Equal(t, chat.SenderUser, d.Messages[0].Sender)
	assert.Equal(t, chat.SenderAgent, d.Messages[1].Sender)
	assert.Len(t, d.Cards, 4)
	assert.Len(t, d.Links.Main, 5)
	assert.Len(t, d.Skills["Artemis"], 6)
}

func TestSeriesIsDateOrdered(t *testing.T) {
	d := MustLoad()
	require.Len(t, d.Series, 30)
	for i := 1; i < len(d.Series); i++ {
		assert.True(t, d.Series[i].Date.After(d.Series[i-1].Date), "point %d out of order", i)
	}
	assert.Equal(t, time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), d.ReferenceDate)
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	a := MustLoad()
	b := MustLoad()
	a.Agents[0].Name = "Changed"
	a.Modules[0].Equipped = false
	assert.Equal(t, "Athena", b.Agents[0].Name)
	assert.True(t, b.Modules[0].Equipped)
}

func TestProfileDescription(t *testing.T) {
	d := MustLoad()
	desc := d.Profile.DescriptionFor("Hermes", "Communication")
	assert.Contains(t, desc, "**Hermes**")
	assert.Contains(t, desc, "*communication*")
	assert.NotContains(t, desc, "{{")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("agents: [{id: 1, name: X, status: Retired}]"))
	assert.ErrorContains(t, err, "agent 1")

	_, err = Parse([]byte("messages: [{id: 3, sender: robot}]"))
	assert.ErrorContains(t, err, "message 3")

	_, err = Parse([]byte("chart: {points: [{date: April}]}"))
	assert.ErrorContains(t, err, "chart point")

	_, err = Parse([]byte("agents: {"))
	assert.ErrorContains(t, err, "failed to parse seed data")
}

func TestParseDefaultsReferenceDate(t *testing.T) {
	d, err := Parse([]byte(`chart: {points: [{date: "2024-01-01"}, {date: "2024-01-05"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 5, d.ReferenceDate.Day())
}
