package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the minute-precision stamp written at the head of every line
const TimestampLayout = "2006-01-02 15:04"

// ErrMalformedLine is returned by ParseLine for text that was not produced by FormatLine
var ErrMalformedLine = errors.New("malformed journal line")

var linePattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2})\] (?:\(([^/()\s]+)(?:/([^()]+))?\) )?(.*)$`)

// FormatLine renders an entry as it is persisted:
//
//	[2024-03-01 09:30] (alpha/design) content
//
// The parenthetical is omitted when no project is active.
func FormatLine(e Entry) string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(e.CreatedAt.Format(TimestampLayout))
	sb.WriteString("] ")
	if !e.Context.IsZero() {
		sb.WriteString("(")
		sb.WriteString(e.Context.String())
		sb.WriteString(") ")
	}
	sb.WriteString(e.Content)
	sb.WriteString("\n")
	return sb.String()
}

// ParseLine recovers an entry from a line written by FormatLine. The
// timestamp is interpreted in loc and only carries minute precision.
//
// An unscoped entry whose content itself starts with "(word) " cannot be
// told apart from a project-scoped one and parses back with project "word".
func ParseLine(line string, loc *time.Location) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf("parse %q: %w", line, ErrMalformedLine)
	}

	ts, err := time.ParseInLocation(TimestampLayout, m[1], loc)
	if err != nil {
		return Entry{}, fmt.Errorf("parse timestamp: %w", err)
	}
	if m[4] == "" {
		return Entry{}, fmt.Errorf("parse %q: %w", line, ErrEmptyContent)
	}

	return Entry{
		Content:   m[4],
		Context:   Context{Project: m[2], Section: m[3]},
		CreatedAt: ts,
	}, nil
}
