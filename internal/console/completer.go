package console

import (
	"sort"
	"strings"

	"github.com/pbaille/tidybrain/internal/routing"
)

// Completer proposes whole-line completions for what the operator is typing:
// command names, project[/section] arguments and #tags.
type Completer struct {
	commands []string
	projects []string
	sections map[string][]string
	tags     []string
}

// NewCompleter snapshots the names in registry. The registry does not change
// during a session, so the snapshot stays valid.
func NewCompleter(registry *routing.Registry) *Completer {
	c := &Completer{
		commands: CommandNames(),
		sections: make(map[string][]string),
	}
	for _, p := range registry.Projects() {
		c.projects = append(c.projects, p.Name())
		for _, s := range p.Sections() {
			c.sections[p.Name()] = append(c.sections[p.Name()], s.Name())
		}
		sort.Strings(c.sections[p.Name()])
	}
	for _, t := range registry.Tags() {
		c.tags = append(c.tags, t.Name())
	}
	sort.Strings(c.commands)
	sort.Strings(c.projects)
	sort.Strings(c.tags)
	return c
}

// Complete returns candidate lines that extend line
func (c *Completer) Complete(line string) []string {
	if strings.HasPrefix(line, CommandPrefix) {
		return c.completeCommand(line)
	}

	// only the word under the cursor is completed, as a tag
	cut := strings.LastIndexAny(line, " \t") + 1
	word := line[cut:]
	if !strings.HasPrefix(word, routing.TagPrefix) {
		return nil
	}
	return withPrefix(line[:cut]+routing.TagPrefix, filter(c.tags, word[len(routing.TagPrefix):]))
}

func (c *Completer) completeCommand(line string) []string {
	body := line[len(CommandPrefix):]
	name, arg, hasArg := strings.Cut(body, " ")
	if !hasArg {
		return withPrefix(CommandPrefix, filter(c.commands, strings.ToLower(name)))
	}

	if cmd, ok := commandIndex[strings.ToLower(name)]; !ok || cmd.Name != "project" {
		return nil
	}
	if strings.ContainsAny(arg, " \t") {
		return nil
	}

	head := line[:len(line)-len(arg)]
	project, section, hasSection := strings.Cut(arg, "/")
	if !hasSection {
		return withPrefix(head, filter(c.projects, project))
	}
	sections, ok := c.sections[project]
	if !ok {
		return nil
	}
	return withPrefix(head+project+"/", filter(sections, section))
}

func filter(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func withPrefix(prefix string, names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}
