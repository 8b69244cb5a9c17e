// Package console is the interactive front of the journal: it keeps the
// active project/section, dispatches backslash commands and turns every
// other line into an entry for the registry.
package console

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pbaille/tidybrain/internal/domain"
	"github.com/pbaille/tidybrain/internal/routing"
)

// CommandPrefix marks a line as a command rather than entry content
const CommandPrefix = `\`

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownProject = errors.New("unknown project")
	ErrUnknownSection = errors.New("unknown section")
	ErrUsage          = errors.New("usage")
)

type handler func(in *Interpreter, args []string) (string, error)

// command is one entry of the dispatch table
type command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	MaxArgs int
	Handler handler
}

var (
	commands     []*command
	commandIndex = make(map[string]*command)
)

// init fills the dispatch table with the built-in commands
func init() {
	registerCommand(&command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   `\help|\h`,
		Help:    "Show this help message",
		Handler: (*Interpreter).help,
	})

	registerCommand(&command{
		Name:    "quit",
		Aliases: []string{"q"},
		Usage:   `\quit|\q`,
		Help:    "Exit the application",
		Handler: (*Interpreter).quit,
	})

	registerCommand(&command{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   `\project|\p [<project>[/<section>]]`,
		Help:    "Set the current project and section (no argument clears them)",
		MaxArgs: 1,
		Handler: (*Interpreter).setProject,
	})
}

// registerCommand indexes a command under its name and aliases
func registerCommand(c *command) {
	commands = append(commands, c)
	commandIndex[c.Name] = c
	for _, a := range c.Aliases {
		commandIndex[a] = c
	}
}

// CommandNames returns every name and alias, in table order
func CommandNames() []string {
	var names []string
	for _, c := range commands {
		names = append(names, c.Name)
		names = append(names, c.Aliases...)
	}
	return names
}

// Interpreter holds the session context and routes input lines
type Interpreter struct {
	registry *routing.Registry
	ctx      domain.Context
	now      func() time.Time
}

// NewInterpreter starts a session with no active project
func NewInterpreter(registry *routing.Registry) *Interpreter {
	return &Interpreter{registry: registry, now: time.Now}
}

// Context returns the active project/section
func (in *Interpreter) Context() domain.Context {
	return in.ctx
}

// Prompt renders the active context followed by "> "
func (in *Interpreter) Prompt() string {
	if in.ctx.IsZero() {
		return "> "
	}
	return in.ctx.String() + " > "
}

// Execute handles one input line and returns text to show the operator.
// Blank lines are ignored. ErrQuit ends the session; any other error is
// reported and the session goes on.
func (in *Interpreter) Execute(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	if strings.HasPrefix(line, CommandPrefix) {
		return in.dispatch(strings.TrimPrefix(line, CommandPrefix))
	}

	e, err := domain.NewEntry(line, in.ctx, in.now())
	if err != nil {
		return "", err
	}
	if err := in.registry.Process(e); err != nil {
		return "", fmt.Errorf("entry not fully recorded: %w", err)
	}
	return "", nil
}

func (in *Interpreter) dispatch(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, CommandPrefix)
	}

	name := strings.ToLower(fields[0])
	cmd, ok := commandIndex[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	args := fields[1:]
	if len(args) > cmd.MaxArgs {
		return "", fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
	}
	return cmd.Handler(in, args)
}

func (in *Interpreter) help(_ []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, c := range commands {
		fmt.Fprintf(&sb, "  %s - %s\n", c.Usage, c.Help)
	}
	sb.WriteString("To add an entry, type it and press Enter. Mention tags with #name.")
	return sb.String(), nil
}

func (in *Interpreter) quit(_ []string) (string, error) {
	return "", ErrQuit
}

// setProject validates the target before changing anything, so a bad
// argument leaves the context as it was
func (in *Interpreter) setProject(args []string) (string, error) {
	if len(args) == 0 {
		in.ctx = domain.Context{}
		return "", nil
	}

	projectName, sectionName, _ := strings.Cut(args[0], "/")
	project, ok := in.registry.Project(projectName)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProject, projectName)
	}
	if sectionName != "" {
		if _, ok := project.Section(sectionName); !ok {
			return "", fmt.Errorf("%w: %s in project %q", ErrUnknownSection, sectionName, projectName)
		}
	}

	in.ctx = domain.Context{Project: projectName, Section: sectionName}
	return "", nil
}
