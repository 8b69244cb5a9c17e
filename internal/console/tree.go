package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pbaille/tidybrain/internal/routing"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	sinkStyle    = lipgloss.NewStyle().Foreground(muted)
)

// PrintTree writes the routing graph with the sinks of every node
func PrintTree(w io.Writer, r *routing.Registry) {
	printNode(w, 0, "daily "+r.Daily().Name(), r.Daily().Sinks())

	if len(r.Projects()) > 0 {
		fmt.Fprintln(w, headingStyle.Render("projects"))
	}
	for _, p := range r.Projects() {
		printNode(w, 1, p.Name(), p.Sinks())
		for _, s := range p.Sections() {
			printNode(w, 2, s.Project()+"/"+s.Name(), s.Sinks())
		}
	}

	if len(r.Tags()) > 0 {
		fmt.Fprintln(w, headingStyle.Render("tags"))
	}
	for _, t := range r.Tags() {
		printNode(w, 1, t.Pattern(), t.Sinks())
	}

	if len(r.Persons()) > 0 {
		fmt.Fprintln(w, headingStyle.Render("persons"))
	}
	for _, p := range r.Persons() {
		label := p.Name()
		if p.FullName != "" {
			label += " (" + p.FullName + ")"
		}
		if p.Mention() == "" {
			label += " [silent]"
		} else {
			label += " on " + p.Mention()
		}
		printNode(w, 1, label, p.Sinks())
	}
}

func printNode(w io.Writer, indent int, label string, sinks []routing.Sink) {
	prefix := strings.Repeat("  ", indent)
	if indent == 0 {
		label = headingStyle.Render(label)
	}
	fmt.Fprintf(w, "%s%s\n", prefix, label)
	for _, s := range sinks {
		fmt.Fprintf(w, "%s  %s\n", prefix, sinkStyle.Render("-> "+fmt.Sprint(s)))
	}
}
