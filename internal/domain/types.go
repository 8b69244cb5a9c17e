package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyContent is returned when an entry is built from blank input
var ErrEmptyContent = errors.New("entry content is empty")

// Context is the active project/section an entry is filed under.
// Section is only meaningful when Project is set.
type Context struct {
	Project string `json:"project,omitempty"`
	Section string `json:"section,omitempty"`
}

// IsZero reports whether no project is active
func (c Context) IsZero() bool {
	return c.Project == ""
}

// String renders the context as project[/section]
func (c Context) String() string {
	if c.Project == "" {
		return ""
	}
	if c.Section == "" {
		return c.Project
	}
	return c.Project + "/" + c.Section
}

// Entry is one timestamped journal line. It is never mutated after creation.
type Entry struct {
	Content   string    `json:"content"`
	Context   Context   `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

// lineBreaks folds multi-line input onto the single line an entry is persisted as
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// NewEntry builds an entry stamped with now. Content must be non-empty
// after trimming; line breaks become spaces; a section without a project
// is dropped.
func NewEntry(content string, ctx Context, now time.Time) (Entry, error) {
	content = strings.TrimSpace(lineBreaks.Replace(content))
	if content == "" {
		return Entry{}, ErrEmptyContent
	}
	if ctx.Project == "" {
		ctx.Section = ""
	}
	return Entry{
		Content:   content,
		Context:   ctx,
		CreatedAt: now,
	}, nil
}
