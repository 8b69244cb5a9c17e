package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/tidybrain/internal/config"
	"github.com/pbaille/tidybrain/internal/domain"
	"github.com/pbaille/tidybrain/internal/store"
)

const brainYAML = `
journal: brain.db
projects:
  - name: Alpha
  - name: Beta
    path: beta-dir
    sections:
      - name: Design
tags:
  - name: bob
  - name: project
persons:
  - short_name: carol
    mention: "@carol"
  - short_name: dave
`

var today = time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)

func load(t *testing.T) (string, *Workspace) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "brain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brainYAML), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	ws, err := Load(cfg, today)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return dir, ws
}

func process(t *testing.T, ws *Workspace, content string, ctx domain.Context) {
	t.Helper()
	e, err := domain.NewEntry(content, ctx, today)
	require.NoError(t, err)
	require.NoError(t, ws.Registry.Process(e))
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

func TestLoadBuildsGraph(t *testing.T) {
	dir, ws := load(t)
	r := ws.Registry

	assert.Equal(t, "2024-03-01", r.Daily().Name())
	require.Len(t, r.Projects(), 2)
	beta, ok := r.Project("Beta")
	require.True(t, ok)
	_, ok = beta.Section("Design")
	assert.True(t, ok)
	assert.Len(t, r.Tags(), 2)
	tag, ok := r.Tag("project")
	require.True(t, ok)
	assert.Equal(t, "#project", tag.Pattern())

	assert.Len(t, r.Persons(), 2)
	carol, ok := r.Person("carol")
	require.True(t, ok)
	assert.Equal(t, "@carol", carol.Mention())
	dave, ok := r.Person("dave")
	require.True(t, ok)
	assert.Empty(t, dave.Mention())
	_, ok = r.Person("erin")
	assert.False(t, ok)

	// file + journal for each routable
	assert.Len(t, r.Daily().Sinks(), 2)
	assert.Len(t, beta.Sinks(), 2)
	assert.Equal(t, filepath.Join(dir, "daily", "2024-03-01.txt"), r.Daily().Sinks()[0].(*store.File).Path())
}

func TestRoutedFiles(t *testing.T) {
	dir, ws := load(t)

	process(t, ws, "bought milk", domain.Context{})
	process(t, ws, "kickoff done", domain.Context{Project: "Alpha"})
	process(t, ws, "wireframes", domain.Context{Project: "Beta", Section: "Design"})
	process(t, ws, "talked to #bob about #project-x with @carol", domain.Context{})

	daily := read(t, filepath.Join(dir, "daily", "2024-03-01.txt"))
	assert.Equal(t, "[2024-03-01 09:30] bought milk\n"+
		"[2024-03-01 09:30] (Alpha) kickoff done\n"+
		"[2024-03-01 09:30] (Beta/Design) wireframes\n"+
		"[2024-03-01 09:30] talked to #bob about #project-x with @carol\n", daily)

	assert.Equal(t, "[2024-03-01 09:30] (Alpha) kickoff done\n",
		read(t, filepath.Join(dir, "projects", "Alpha", "project.txt")))
	assert.Equal(t, "[2024-03-01 09:30] (Beta/Design) wireframes\n",
		read(t, filepath.Join(dir, "projects", "beta-dir", "Design.txt")))
	assert.Empty(t, read(t, filepath.Join(dir, "projects", "beta-dir", "project.txt")))

	tagged := "[2024-03-01 09:30] talked to #bob about #project-x with @carol\n"
	assert.Equal(t, tagged, read(t, filepath.Join(dir, "tags", "bob.txt")))
	assert.Equal(t, tagged, read(t, filepath.Join(dir, "tags", "project.txt")))
	assert.Equal(t, tagged, read(t, filepath.Join(dir, "persons", "carol.txt")))
	assert.Empty(t, read(t, filepath.Join(dir, "persons", "dave.txt")))

	n, err := ws.journal.Count("daily", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = ws.journal.Count("section", "Beta/Design")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWrittenLinesParseBack(t *testing.T) {
	dir, ws := load(t)
	process(t, ws, "wireframes v2", domain.Context{Project: "Beta", Section: "Design"})

	line := read(t, filepath.Join(dir, "daily", "2024-03-01.txt"))
	e, err := domain.ParseLine(line, time.Local)
	require.NoError(t, err)
	assert.Equal(t, "wireframes v2", e.Content)
	assert.Equal(t, domain.Context{Project: "Beta", Section: "Design"}, e.Context)
	assert.True(t, today.Equal(e.CreatedAt))
}

func TestLoadWithoutJournal(t *testing.T) {
	cfg, err := config.Parse([]byte("projects: [{name: a}]"))
	require.NoError(t, err)
	cfg.Dir = t.TempDir()

	ws, err := Load(cfg, today)
	require.NoError(t, err)
	assert.Len(t, ws.Registry.Daily().Sinks(), 1)
	assert.NoError(t, ws.Close())
}
