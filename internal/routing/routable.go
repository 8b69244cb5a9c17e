// Package routing decides which journal streams an entry belongs to.
//
// Every destination (the daily log, projects and their sections, tags,
// persons) is a Routable. The Registry offers each entry to all of them and
// each one decides on its own whether to write it to its sinks.
package routing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pbaille/tidybrain/internal/domain"
)

// Sink durably records one entry
type Sink interface {
	Write(e domain.Entry) error
}

// Kind identifies the closed set of routable variants
type Kind string

const (
	KindDaily   Kind = "daily"
	KindProject Kind = "project"
	KindSection Kind = "section"
	KindTag     Kind = "tag"
	KindPerson  Kind = "person"
)

// Routable decides whether an entry belongs to it and forwards it to its sinks
type Routable interface {
	Kind() Kind
	Name() string
	Accept(e domain.Entry) error
}

// sinks is the ordered, append-only sink list embedded by every routable
type sinks struct {
	list []Sink
}

// Register appends a sink. Sinks are written in registration order.
func (s *sinks) Register(sink Sink) {
	s.list = append(s.list, sink)
}

// Sinks returns the registered sinks
func (s *sinks) Sinks() []Sink {
	return s.list
}

// write attempts every sink once; a failing sink does not stop the rest
func (s *sinks) write(kind Kind, name string, e domain.Entry) error {
	var errs []error
	for i, sink := range s.list {
		if err := sink.Write(e); err != nil {
			slog.Warn("sink write failed", "routable", string(kind)+":"+name, "sink", i, "error", err)
			errs = append(errs, fmt.Errorf("%s %s: sink %d: %w", kind, name, i, err))
			continue
		}
		slog.Debug("entry written", "routable", string(kind)+":"+name, "sink", i)
	}
	return errors.Join(errs...)
}
