package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mtlprog/agenthub/internal/handler/dto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"agenthub", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	var agents []dto.AgentResponse
	require.NoError(t, json.Unmarshal([]byte(out), &agents))
	require.Len(t, agents, 3)
	assert.Equal(t, "hpc-pulse", agents[0].ID)
	assert.Equal(t, "fairwater-bot", agents[2].ID)
}

func TestList_YAML(t *testing.T) {
	out, err := run(t, "list", "--format", "yaml")
	require.NoError(t, err)

	var agents []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &agents))
	require.Len(t, agents, 3)
	assert.Equal(t, "https://aka.ms/hpc-ai-insights", agents[1]["link"])
	assert.Equal(t, "aka.ms/hpc-pulse", agents[0]["short_link"])
	assert.NotContains(t, agents[2], "short_link")
}

func TestList_UnknownFormat(t *testing.T) {
	_, err := run(t, "list", "--format", "xml")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "directory ok: 3 agents")
}

func TestRender_Stdout(t *testing.T) {
	out, err := run(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `href="https://aka.ms/hpc-pulse"`)
}

func TestRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	_, err := run(t, "--layout", "compact", "render", "--out", path)
	require.NoError(t, err)

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "px-4 py-10")
}

func TestRender_UnknownLayout(t *testing.T) {
	_, err := run(t, "--layout", "dense", "render")
	assert.Error(t, err)
}
