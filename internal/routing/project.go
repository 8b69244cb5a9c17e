package routing

import (
	"fmt"

	"github.com/pbaille/tidybrain/internal/domain"
)

// Project receives entries filed under its name. Entries that also name one
// of its sections go to that section instead.
type Project struct {
	sinks
	name     string
	sections []*Section
	index    map[string]*Section
}

// NewProject creates a project with no sections
func NewProject(name string) *Project {
	return &Project{name: name, index: make(map[string]*Section)}
}

func (p *Project) Kind() Kind   { return KindProject }
func (p *Project) Name() string { return p.name }

// AddSection attaches a section. Section names are unique within a project.
func (p *Project) AddSection(s *Section) error {
	if _, exists := p.index[s.name]; exists {
		return fmt.Errorf("project %s: duplicate section %q", p.name, s.name)
	}
	p.sections = append(p.sections, s)
	p.index[s.name] = s
	return nil
}

// Section looks up a section by name
func (p *Project) Section(name string) (*Section, bool) {
	s, ok := p.index[name]
	return s, ok
}

// Sections returns the sections in declaration order
func (p *Project) Sections() []*Section {
	return p.sections
}

// Accept ignores entries for other projects, delegates to a known section,
// and otherwise writes to the project's own sinks. Delegation is exclusive.
func (p *Project) Accept(e domain.Entry) error {
	if e.Context.Project != p.name {
		return nil
	}
	if e.Context.Section != "" {
		if s, ok := p.index[e.Context.Section]; ok {
			return s.Accept(e)
		}
	}
	return p.write(KindProject, p.name, e)
}

// Section is a named part of exactly one project
type Section struct {
	sinks
	name    string
	project string
}

// NewSection creates a section owned by project
func NewSection(project, name string) *Section {
	return &Section{name: name, project: project}
}

func (s *Section) Kind() Kind   { return KindSection }
func (s *Section) Name() string { return s.name }

// Project is the owning project's name
func (s *Section) Project() string { return s.project }

// Accept writes only entries that name this section. Projects already check
// this before delegating; the check is repeated for direct callers.
func (s *Section) Accept(e domain.Entry) error {
	if e.Context.Project != s.project || e.Context.Section != s.name {
		return nil
	}
	return s.write(KindSection, s.project+"/"+s.name, e)
}
