// Package config reads the workspace description: where the logs live and
// which projects, sections, tags and persons exist.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// EnvConfig overrides the default config location
const EnvConfig = "TIDYBRAIN_CONFIG"

// Config is the declarative workspace description. JSON files are accepted
// too since they decode as YAML.
type Config struct {
	DailyDir    string          `yaml:"daily_dir"`
	ProjectsDir string          `yaml:"projects_dir"`
	TagsDir     string          `yaml:"tags_dir"`
	PersonsDir  string          `yaml:"persons_dir"`
	Journal     string          `yaml:"journal"`
	Projects    []ProjectConfig `yaml:"projects"`
	Tags        []TagConfig     `yaml:"tags"`
	Persons     []PersonConfig  `yaml:"persons"`

	// Dir is the directory relative paths resolve against
	Dir string `yaml:"-"`
}

type ProjectConfig struct {
	Name     string          `yaml:"name"`
	Path     string          `yaml:"path"`
	Filename string          `yaml:"filename"`
	Sections []SectionConfig `yaml:"sections"`
}

type SectionConfig struct {
	Name     string `yaml:"name"`
	Filename string `yaml:"filename"`
}

type TagConfig struct {
	Name     string `yaml:"name"`
	Filename string `yaml:"filename"`
}

// PersonConfig describes a person. Mention is the literal that routes an
// entry to the person's log; without it the person never receives entries.
type PersonConfig struct {
	ShortName string `yaml:"short_name"`
	FullName  string `yaml:"full_name"`
	Email     string `yaml:"email"`
	Mention   string `yaml:"mention"`
	Filename  string `yaml:"filename"`
}

// DefaultPath returns $TIDYBRAIN_CONFIG or ~/.tidybrain/brain.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tidybrain", "brain.yaml")
}

// Load reads, defaults and validates the config at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg.Dir = filepath.Dir(abs)
	return cfg, nil
}

// Parse decodes config data, applies defaults and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DailyDir == "" {
		c.DailyDir = "daily"
	}
	if c.ProjectsDir == "" {
		c.ProjectsDir = "projects"
	}
	if c.TagsDir == "" {
		c.TagsDir = "tags"
	}
	if c.PersonsDir == "" {
		c.PersonsDir = "persons"
	}

	for i := range c.Projects {
		p := &c.Projects[i]
		if p.Path == "" {
			p.Path = p.Name
		}
		if p.Filename == "" {
			p.Filename = "project.txt"
		}
		for j := range p.Sections {
			s := &p.Sections[j]
			if s.Filename == "" {
				s.Filename = s.Name + ".txt"
			}
		}
	}
	for i := range c.Tags {
		if c.Tags[i].Filename == "" {
			c.Tags[i].Filename = c.Tags[i].Name + ".txt"
		}
	}
	for i := range c.Persons {
		if c.Persons[i].Filename == "" {
			c.Persons[i].Filename = c.Persons[i].ShortName + ".txt"
		}
	}
}

// Validate checks names: non-empty, no whitespace, unique per collection.
// Project names may not contain '/' since it separates project from section,
// and neither project nor section names may contain parentheses, which
// delimit the context on a journal line.
func (c *Config) Validate() error {
	projects := make(map[string]bool)
	for _, p := range c.Projects {
		if err := checkContextName("project", p.Name); err != nil {
			return err
		}
		if strings.Contains(p.Name, "/") {
			return fmt.Errorf("%w: project %q contains '/'", ErrInvalid, p.Name)
		}
		if projects[p.Name] {
			return fmt.Errorf("%w: duplicate project %q", ErrInvalid, p.Name)
		}
		projects[p.Name] = true

		sections := make(map[string]bool)
		for _, s := range p.Sections {
			if err := checkContextName("section", s.Name); err != nil {
				return fmt.Errorf("project %s: %w", p.Name, err)
			}
			if sections[s.Name] {
				return fmt.Errorf("%w: duplicate section %q in project %q", ErrInvalid, s.Name, p.Name)
			}
			sections[s.Name] = true
		}
	}

	tags := make(map[string]bool)
	for _, t := range c.Tags {
		if err := checkName("tag", t.Name); err != nil {
			return err
		}
		if tags[t.Name] {
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalid, t.Name)
		}
		tags[t.Name] = true
	}

	persons := make(map[string]bool)
	for _, p := range c.Persons {
		if err := checkName("person", p.ShortName); err != nil {
			return err
		}
		if persons[p.ShortName] {
			return fmt.Errorf("%w: duplicate person %q", ErrInvalid, p.ShortName)
		}
		persons[p.ShortName] = true
	}

	return nil
}

func checkName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s without a name", ErrInvalid, kind)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: %s %q contains whitespace", ErrInvalid, kind, name)
	}
	return nil
}

// checkContextName also rejects the characters that frame a context on a line
func checkContextName(kind, name string) error {
	if err := checkName(kind, name); err != nil {
		return err
	}
	if strings.ContainsAny(name, "()") {
		return fmt.Errorf("%w: %s %q contains parentheses", ErrInvalid, kind, name)
	}
	return nil
}

// Resolve makes a configured path absolute relative to the config directory
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}
