// Package workspace builds the routing graph described by a config and binds
// every routable to its storage.
package workspace

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pbaille/tidybrain/internal/config"
	"github.com/pbaille/tidybrain/internal/routing"
	"github.com/pbaille/tidybrain/internal/store"
)

// Workspace is a loaded registry plus the resources its sinks hold open
type Workspace struct {
	Registry *routing.Registry
	journal  *store.Journal
}

// Load wires daily, projects, sections, tags and persons to file sinks
// (and to the SQLite journal when one is configured). today fixes the
// daily stream for the whole session.
func Load(cfg *config.Config, today time.Time) (*Workspace, error) {
	ws := &Workspace{}

	if cfg.Journal != "" {
		j, err := store.OpenJournal(cfg.Resolve(cfg.Journal))
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		ws.journal = j
	}

	daily := routing.NewDaily(today)
	ws.bind(daily, routing.KindDaily, daily.Name(),
		filepath.Join(cfg.Resolve(cfg.DailyDir), daily.Name()+".txt"))
	registry := routing.NewRegistry(daily)

	projectsDir := cfg.Resolve(cfg.ProjectsDir)
	for _, pc := range cfg.Projects {
		project := routing.NewProject(pc.Name)
		ws.bind(project, routing.KindProject, pc.Name,
			filepath.Join(projectsDir, pc.Path, pc.Filename))

		for _, sc := range pc.Sections {
			section := routing.NewSection(pc.Name, sc.Name)
			ws.bind(section, routing.KindSection, pc.Name+"/"+sc.Name,
				filepath.Join(projectsDir, pc.Path, sc.Filename))
			if err := project.AddSection(section); err != nil {
				return nil, ws.fail(err)
			}
		}
		if err := registry.AddProject(project); err != nil {
			return nil, ws.fail(err)
		}
	}

	tagsDir := cfg.Resolve(cfg.TagsDir)
	for _, tc := range cfg.Tags {
		tag := routing.NewTag(tc.Name)
		ws.bind(tag, routing.KindTag, tc.Name, filepath.Join(tagsDir, tc.Filename))
		if err := registry.AddTag(tag); err != nil {
			return nil, ws.fail(err)
		}
	}

	personsDir := cfg.Resolve(cfg.PersonsDir)
	for _, pc := range cfg.Persons {
		person := routing.NewPerson(pc.ShortName)
		person.FullName = pc.FullName
		person.Email = pc.Email
		person.SetMention(pc.Mention)
		ws.bind(person, routing.KindPerson, pc.ShortName, filepath.Join(personsDir, pc.Filename))
		if err := registry.AddPerson(person); err != nil {
			return nil, ws.fail(err)
		}
	}

	slog.Debug("workspace loaded",
		"daily", daily.Name(),
		"projects", len(registry.Projects()),
		"tags", len(registry.Tags()),
		"persons", len(registry.Persons()),
		"journal", ws.journal != nil)

	ws.Registry = registry
	return ws, nil
}

type registrar interface {
	Register(routing.Sink)
}

func (ws *Workspace) bind(r registrar, kind routing.Kind, stream, path string) {
	r.Register(store.NewFile(path))
	if ws.journal != nil {
		r.Register(ws.journal.Sink(string(kind), stream))
	}
}

func (ws *Workspace) fail(err error) error {
	ws.Close()
	return fmt.Errorf("build workspace: %w", err)
}

// Close releases the journal, if any
func (ws *Workspace) Close() error {
	if ws.journal == nil {
		return nil
	}
	return ws.journal.Close()
}
