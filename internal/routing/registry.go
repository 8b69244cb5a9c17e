package routing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pbaille/tidybrain/internal/domain"
)

// Registry owns every routable of a workspace and broadcasts entries to them.
// It is populated at load time and not modified during a session.
type Registry struct {
	daily    *Daily
	projects []*Project
	tags     []*Tag
	persons  []*Person

	projectIndex map[string]*Project
	tagIndex     map[string]*Tag
	personIndex  map[string]*Person
}

// NewRegistry creates a registry around the day's daily stream
func NewRegistry(daily *Daily) *Registry {
	return &Registry{
		daily:        daily,
		projectIndex: make(map[string]*Project),
		tagIndex:     make(map[string]*Tag),
		personIndex:  make(map[string]*Person),
	}
}

// AddProject registers a project; names are unique
func (r *Registry) AddProject(p *Project) error {
	if _, exists := r.projectIndex[p.name]; exists {
		return fmt.Errorf("duplicate project %q", p.name)
	}
	r.projects = append(r.projects, p)
	r.projectIndex[p.name] = p
	return nil
}

// AddTag registers a tag; names are unique
func (r *Registry) AddTag(t *Tag) error {
	if _, exists := r.tagIndex[t.name]; exists {
		return fmt.Errorf("duplicate tag %q", t.name)
	}
	r.tags = append(r.tags, t)
	r.tagIndex[t.name] = t
	return nil
}

// AddPerson registers a person; short names are unique
func (r *Registry) AddPerson(p *Person) error {
	if _, exists := r.personIndex[p.shortName]; exists {
		return fmt.Errorf("duplicate person %q", p.shortName)
	}
	r.persons = append(r.persons, p)
	r.personIndex[p.shortName] = p
	return nil
}

func (r *Registry) Daily() *Daily { return r.daily }

// Projects returns projects in registration order
func (r *Registry) Projects() []*Project { return r.projects }

// Tags returns tags in registration order
func (r *Registry) Tags() []*Tag { return r.tags }

// Persons returns persons in registration order
func (r *Registry) Persons() []*Person { return r.persons }

// Project looks up a project by name
func (r *Registry) Project(name string) (*Project, bool) {
	p, ok := r.projectIndex[name]
	return p, ok
}

// Tag looks up a tag by name
func (r *Registry) Tag(name string) (*Tag, bool) {
	t, ok := r.tagIndex[name]
	return t, ok
}

// Person looks up a person by short name
func (r *Registry) Person(shortName string) (*Person, bool) {
	p, ok := r.personIndex[shortName]
	return p, ok
}

// Routables lists every top-level routable in broadcast order:
// daily, projects, tags, persons.
func (r *Registry) Routables() []Routable {
	out := make([]Routable, 0, 1+len(r.projects)+len(r.tags)+len(r.persons))
	out = append(out, r.daily)
	for _, p := range r.projects {
		out = append(out, p)
	}
	for _, t := range r.tags {
		out = append(out, t)
	}
	for _, p := range r.persons {
		out = append(out, p)
	}
	return out
}

// Process offers the entry to every routable. A failure in one does not
// keep the entry from the others; all failures are returned joined.
func (r *Registry) Process(e domain.Entry) error {
	var errs []error
	for _, rt := range r.Routables() {
		if err := rt.Accept(e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		slog.Debug("entry not fully recorded", "failures", len(errs))
	}
	return errors.Join(errs...)
}
