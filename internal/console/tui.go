package console

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea front-end: a single input line with tab completion.
// Output scrolls above it.
type model struct {
	interp    *Interpreter
	completer *Completer
	input     textinput.Model
}

func newModel(interp *Interpreter, completer *Completer) model {
	ti := textinput.New()
	ti.Focus()
	ti.ShowSuggestions = true
	ti.Prompt = promptStyle.Render(interp.Prompt())
	return model{interp: interp, completer: completer, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.input.SetSuggestions(m.completer.Complete(m.input.Value()))
	return m, cmd
}

// submit executes the current line and echoes it with its result
func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	echo := tea.Println(m.input.Prompt + line)
	m.input.Reset()
	m.input.SetSuggestions(nil)

	out, err := m.interp.Execute(line)
	m.input.Prompt = promptStyle.Render(m.interp.Prompt())

	switch {
	case errors.Is(err, ErrQuit):
		return m, tea.Sequence(echo, tea.Quit)
	case err != nil:
		return m, tea.Sequence(echo, tea.Println(RenderError(err)))
	case out != "":
		return m, tea.Sequence(echo, tea.Println(outputStyle.Render(out)))
	}
	return m, echo
}

func (m model) View() string {
	return m.input.View()
}

// RunTUI runs the interactive loop in the terminal until \quit, Ctrl+C or Ctrl+D
func RunTUI(interp *Interpreter, completer *Completer) error {
	p := tea.NewProgram(newModel(interp, completer))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
