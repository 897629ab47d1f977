package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic-tui/internal/seed"
)

func TestSnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSnapshot(&buf, seed.MustLoad()))

	var got snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Agents, 7)
	assert.Equal(t, "Athena", got.Agents[0].Name)
	assert.Equal(t, "Active", got.Agents[0].Status)
	assert.Equal(t, "Training", got.Agents[5].Status)
	assert.Len(t, got.ChatAgents, 5)
	assert.Len(t, got.Modules, 10)
	assert.Equal(t, "2024-04-30", got.ReferenceDate)
	assert.Equal(t, 30, got.Points)
	assert.Contains(t, got.Links.Main, "My Agents")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "mosaic dev\n", buf.String())
}
