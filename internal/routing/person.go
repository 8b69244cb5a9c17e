package routing

import (
	"strings"

	"github.com/pbaille/tidybrain/internal/domain"
)

// Person is someone the journal can keep a log about. FullName and Email are
// descriptive only. A person writes only when a mention literal is
// configured and appears in the entry content; without one it stays silent.
type Person struct {
	sinks
	shortName string
	FullName  string
	Email     string
	mention   string
}

// NewPerson creates a silent person
func NewPerson(shortName string) *Person {
	return &Person{shortName: shortName}
}

func (p *Person) Kind() Kind   { return KindPerson }
func (p *Person) Name() string { return p.shortName }

// Mention returns the configured matching literal, empty if none
func (p *Person) Mention() string { return p.mention }

// SetMention configures the literal that routes entries to this person
func (p *Person) SetMention(literal string) {
	p.mention = literal
}

func (p *Person) Accept(e domain.Entry) error {
	if p.mention == "" || !strings.Contains(e.Content, p.mention) {
		return nil
	}
	return p.write(KindPerson, p.shortName, e)
}
