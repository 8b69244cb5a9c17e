package routing

import (
	"time"

	"github.com/pbaille/tidybrain/internal/domain"
)

// DateLayout names a daily stream
const DateLayout = "2006-01-02"

// Daily is the unconditional default stream for one calendar day.
// It is created once at startup and does not roll over at midnight.
type Daily struct {
	sinks
	date time.Time
}

// NewDaily creates the stream for the calendar day containing day
func NewDaily(day time.Time) *Daily {
	y, m, d := day.Date()
	return &Daily{date: time.Date(y, m, d, 0, 0, 0, 0, day.Location())}
}

func (d *Daily) Kind() Kind { return KindDaily }

// Name is the ISO date of the stream
func (d *Daily) Name() string { return d.date.Format(DateLayout) }

// Accept writes every entry
func (d *Daily) Accept(e domain.Entry) error {
	return d.write(KindDaily, d.Name(), e)
}
