package routing

import (
	"strings"

	"github.com/pbaille/tidybrain/internal/domain"
)

// TagPrefix marks a tag mention inside entry content
const TagPrefix = "#"

// Tag receives every entry whose content mentions #name anywhere, whatever
// the entry's context. Matching is a case-sensitive substring test, so
// #workshop also matches the tag "work".
type Tag struct {
	sinks
	name string
}

// NewTag creates a tag
func NewTag(name string) *Tag {
	return &Tag{name: name}
}

func (t *Tag) Kind() Kind   { return KindTag }
func (t *Tag) Name() string { return t.name }

// Pattern is the literal searched for in entry content
func (t *Tag) Pattern() string { return TagPrefix + t.name }

// Matches reports whether content mentions the tag
func (t *Tag) Matches(content string) bool {
	return strings.Contains(content, t.Pattern())
}

func (t *Tag) Accept(e domain.Entry) error {
	if !t.Matches(e.Content) {
		return nil
	}
	return t.write(KindTag, t.name, e)
}
