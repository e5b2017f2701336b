package main

import (
	"time"
)

// CalendarProvider is a read-only view of a calendar source. The dialing
// pipeline only ever lists a window of upcoming events; it never writes
// back to the calendar.
type CalendarProvider interface {
	GetCalendar(calendarID string) error
	ListEvents(calendarID string, timeMin, timeMax time.Time) ([]*Event, error)
}

type Event struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time // zero for all-day events
	End         time.Time
	AllDay      bool
	Status      string
}
