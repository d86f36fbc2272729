// Package agenda derives bookable dates and time slots from a
// professional's free-text weekly schedule. The text format is the wire
// format stored on professional records ("Segunda: 8h00 às 13h00", closure
// markers, duration/interval/lunch directives); everything past the parser
// works on the structured model only.
//
// All operations are pure functions over their inputs: no I/O, no shared
// state, safe to call concurrently.
package agenda

import (
	"fmt"
	"time"
)

// Defaults applied when the schedule text carries no directive for them.
const (
	DefaultConsultationMinutes = 30
	DefaultIntervalMinutes     = 5
)

// TimeOfDay is a clock time within a single day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// LunchBreak is a single daily unavailability window applied to every open
// day. Slots starting in [Start, End) are emitted but marked unavailable.
type LunchBreak struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Config holds the parameters shared across all days of a schedule.
type Config struct {
	ConsultationMinutes int
	IntervalMinutes     int
	Lunch               *LunchBreak
}

// Step is the distance between consecutive slot start times.
func (c Config) Step() int {
	return c.ConsultationMinutes + c.IntervalMinutes
}

// DaySchedule describes one weekday. Start and End are meaningful only
// when Open is true.
type DaySchedule struct {
	Open  bool
	Start TimeOfDay
	End   TimeOfDay
}

// WeeklySchedule is the parsed form of a schedule text: one entry per
// weekday plus the shared config. Days absent from the text stay closed.
type WeeklySchedule struct {
	Days   map[time.Weekday]DaySchedule
	Config Config
}

// Slot is one bookable time window. LunchBreak slots are kept in the
// sequence so callers can render a dense timeline; they are never
// available.
type Slot struct {
	Time       TimeOfDay
	Available  bool
	LunchBreak bool
}

// Booked is an existing appointment supplied by the caller. Time is the
// appointment start in HH:MM (a leading-zero-less "8:00" also matches).
type Booked struct {
	Date time.Time
	Time string
}

// DateOption is one bookable calendar date within the lookup horizon.
type DateOption struct {
	Date    time.Time
	Weekday time.Weekday
	Day     DaySchedule
}
