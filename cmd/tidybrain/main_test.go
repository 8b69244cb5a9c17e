package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/tidybrain/internal/routing"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "brain.json")
	cfg := `{"projects": [{"name": "Alpha", "sections": [{"name": "Design"}]}], "tags": [{"name": "work"}]}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&nopWriter{})
	cmd.SetErr(&nopWriter{})
	return cmd.Execute()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestAddCommand(t *testing.T) {
	path := writeConfig(t)
	dir := filepath.Dir(path)

	require.NoError(t, run(t, "--config", path, "add", "-p", "Alpha/Design", "wireframes", "for", "#work"))

	day := time.Now().Format(routing.DateLayout)
	daily, err := os.ReadFile(filepath.Join(dir, "daily", day+".txt"))
	require.NoError(t, err)
	assert.Contains(t, string(daily), "(Alpha/Design) wireframes for #work\n")

	section, err := os.ReadFile(filepath.Join(dir, "projects", "Alpha", "Design.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(daily), string(section))

	tag, err := os.ReadFile(filepath.Join(dir, "tags", "work.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(daily), string(tag))

	_, err = os.Stat(filepath.Join(dir, "projects", "Alpha", "project.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestAddCommandRejectsUnknownTarget(t *testing.T) {
	path := writeConfig(t)
	assert.Error(t, run(t, "--config", path, "add", "-p", "Gamma", "x"))
	assert.Error(t, run(t, "--config", path, "add", "-p", "Alpha/Budget", "x"))
}

func TestBadLogLevel(t *testing.T) {
	path := writeConfig(t)
	assert.Error(t, run(t, "--config", path, "--log-level", "loud", "tree"))
}

func TestTreeCommand(t *testing.T) {
	path := writeConfig(t)
	assert.NoError(t, run(t, "--config", path, "tree"))
}
