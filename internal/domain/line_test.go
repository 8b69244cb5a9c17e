package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, 3, 1, 9, 30, 42, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("  bought milk \n", Context{}, stamp)
	require.NoError(t, err)
	assert.Equal(t, "bought milk", e.Content)
	assert.True(t, e.Context.IsZero())
	assert.Equal(t, stamp, e.CreatedAt)

	_, err = NewEntry(" \t ", Context{Project: "alpha"}, stamp)
	assert.ErrorIs(t, err, ErrEmptyContent)

	e, err = NewEntry("orphan", Context{Section: "design"}, stamp)
	require.NoError(t, err)
	assert.Empty(t, e.Context.Section)
}

func TestNewEntryFoldsLineBreaks(t *testing.T) {
	e, err := NewEntry("a\nb\r\nc\rd\n", Context{}, stamp)
	require.NoError(t, err)
	assert.Equal(t, "a b c d", e.Content)

	line := FormatLine(e)
	assert.Equal(t, 1, strings.Count(line, "\n"))

	back, err := ParseLine(line, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, e.Content, back.Content)

	_, err = NewEntry("\n\r\n", Context{}, stamp)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"no context", Context{}, "[2024-03-01 09:30] bought milk\n"},
		{"project", Context{Project: "Alpha"}, "[2024-03-01 09:30] (Alpha) bought milk\n"},
		{"section", Context{Project: "Alpha", Section: "Design"}, "[2024-03-01 09:30] (Alpha/Design) bought milk\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry("bought milk", tt.ctx, stamp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatLine(e))
		})
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	entries := []Entry{
		{Content: "bought milk", CreatedAt: stamp},
		{Content: "kickoff done", Context: Context{Project: "Alpha"}, CreatedAt: stamp},
		{Content: "talked to #bob about #project-x", Context: Context{Project: "Alpha", Section: "Design"}, CreatedAt: stamp},
		{Content: "nested/section name", Context: Context{Project: "ops", Section: "infra/dns"}, CreatedAt: stamp},
	}

	for _, want := range entries {
		got, err := ParseLine(FormatLine(want), time.UTC)
		require.NoError(t, err)
		assert.Equal(t, want.Content, got.Content)
		assert.Equal(t, want.Context, got.Context)
		assert.Equal(t, want.CreatedAt.Truncate(time.Minute), got.CreatedAt)
	}
}

// Parentheses in project or section names are rejected by config validation;
// with them the context could not be read back. Content with parentheses
// after the context is fine, as is an unscoped line starting with "(word) "
// which reads back as scoped to "word".
func TestParseLineParenthesesLimit(t *testing.T) {
	scoped := Entry{Content: "(draft) notes (v2)", Context: Context{Project: "ops", Section: "q1"}, CreatedAt: stamp}
	got, err := ParseLine(FormatLine(scoped), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, scoped.Context, got.Context)
	assert.Equal(t, scoped.Content, got.Content)

	unscoped := Entry{Content: "(note) bought milk", CreatedAt: stamp}
	got, err = ParseLine(FormatLine(unscoped), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Context{Project: "note"}, got.Context)
	assert.Equal(t, "bought milk", got.Content)

	got, err = ParseLine("[2024-03-01 09:30] (ops(2024)) kickoff", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Context.IsZero(), "parenthesised project names do not survive the line format")
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"no stamp at all",
		"[2024-03-01] short stamp",
		"[2024-03-01 09:30]",
	} {
		_, err := ParseLine(line, time.UTC)
		assert.ErrorIs(t, err, ErrMalformedLine, line)
	}

	_, err := ParseLine("[2024-13-01 09:30] bad month", time.UTC)
	assert.Error(t, err)
}
