package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterBooked_MarksConflicts(t *testing.T) {
	day := date(2026, time.March, 2) // a Monday
	slots := []Slot{
		{Time: TimeOfDay{Hour: 8}, Available: true},
		{Time: TimeOfDay{Hour: 8, Minute: 35}, Available: true},
		{Time: TimeOfDay{Hour: 9, Minute: 10}, Available: true},
	}
	booked := []Booked{
		{Date: day, Time: "08:35"},
		{Date: day.AddDate(0, 0, 1), Time: "08:00"}, // other day, no match
	}

	filtered := FilterBooked(slots, day, booked)

	require.Len(t, filtered, 3)
	assert.True(t, filtered[0].Available)
	assert.False(t, filtered[1].Available)
	assert.True(t, filtered[2].Available)

	// Input is untouched.
	assert.True(t, slots[1].Available)
}

func TestFilterBooked_NormalizesClock(t *testing.T) {
	day := date(2026, time.March, 2)
	slots := []Slot{{Time: TimeOfDay{Hour: 8}, Available: true}}

	filtered := FilterBooked(slots, day, []Booked{{Date: day, Time: "8:00"}})

	assert.False(t, filtered[0].Available)
}

func TestFilterBooked_DropsSecondsFromSQLTime(t *testing.T) {
	day := date(2026, time.March, 2)
	slots := []Slot{{Time: TimeOfDay{Hour: 8}, Available: true}}

	filtered := FilterBooked(slots, day, []Booked{{Date: day, Time: "08:00:00"}})

	assert.False(t, filtered[0].Available)
}

func TestFilterBooked_MalformedEntriesNeverMatch(t *testing.T) {
	day := date(2026, time.March, 2)
	slots := []Slot{{Time: TimeOfDay{Hour: 8}, Available: true}}
	booked := []Booked{
		{Date: day, Time: "morning"},
		{Date: day, Time: "25:00"},
		{Date: day, Time: ""},
	}

	filtered := FilterBooked(slots, day, booked)

	assert.True(t, filtered[0].Available)
}

func TestFilterBooked_Idempotent(t *testing.T) {
	day := date(2026, time.March, 2)
	slots := []Slot{
		{Time: TimeOfDay{Hour: 8}, Available: true},
		{Time: TimeOfDay{Hour: 8, Minute: 35}, Available: true},
	}
	booked := []Booked{{Date: day, Time: "08:00"}}

	once := FilterBooked(slots, day, booked)
	twice := FilterBooked(once, day, booked)

	assert.Equal(t, once, twice)
}

func TestFilterBooked_KeepsLunchUnavailable(t *testing.T) {
	day := date(2026, time.March, 2)
	slots := []Slot{{Time: TimeOfDay{Hour: 12}, Available: false, LunchBreak: true}}

	filtered := FilterBooked(slots, day, []Booked{{Date: day, Time: "12:00"}})

	// Both unavailability reasons collapse to Available=false; the lunch
	// flag survives for rendering.
	assert.False(t, filtered[0].Available)
	assert.True(t, filtered[0].LunchBreak)
}

func TestAvailableDates_OnlyOpenWeekdays(t *testing.T) {
	ws := Parse("Segunda: 8h às 12h\nQuarta: 8h às 12h")

	from := date(2026, time.March, 2) // Monday
	dates := AvailableDates(ws, from, 7)

	require.Len(t, dates, 2)
	assert.Equal(t, time.Monday, dates[0].Weekday)
	assert.Equal(t, from, dates[0].Date)
	assert.Equal(t, time.Wednesday, dates[1].Weekday)
	assert.Equal(t, from.AddDate(0, 0, 2), dates[1].Date)
	assert.True(t, dates[0].Day.Open)
}

func TestAvailableDates_Ascending(t *testing.T) {
	ws := Parse("Segunda: 8h às 12h\nTerça: 8h às 12h\nQuarta: 8h às 12h\nQuinta: 8h às 12h\nSexta: 8h às 12h\nSábado: 8h às 12h\nDomingo: 8h às 12h")

	from := date(2026, time.March, 2)
	dates := AvailableDates(ws, from, 30)

	require.Len(t, dates, 30)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Date.Before(dates[i].Date))
	}
}

func TestAvailableDates_DegenerateInputs(t *testing.T) {
	assert.Nil(t, AvailableDates(nil, date(2026, time.March, 2), 30))
	assert.Nil(t, AvailableDates(Parse("Segunda: 8h às 12h"), date(2026, time.March, 2), 0))
}

func TestAvailableDates_ClosedScheduleYieldsNoDates(t *testing.T) {
	ws := Parse("Segunda: ❌\nTerça: fechado")

	assert.Empty(t, AvailableDates(ws, date(2026, time.March, 2), 30))
}
