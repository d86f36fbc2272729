package converter

import (
	"testing"
	"time"

	"clinic-agenda-api/internal/agenda"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Segunda", WeekdayName(time.Monday))
	assert.Equal(t, "Sábado", WeekdayName(time.Saturday))
	assert.Equal(t, "Domingo", WeekdayName(time.Sunday))
}

func TestSlotsToResponses(t *testing.T) {
	slots := []agenda.Slot{
		{Time: agenda.TimeOfDay{Hour: 8}, Available: true},
		{Time: agenda.TimeOfDay{Hour: 12, Minute: 30}, Available: false, LunchBreak: true},
	}

	responses := SlotsToResponses(slots)
	require.Len(t, responses, 2)

	assert.Equal(t, "08:00", responses[0].Time)
	assert.True(t, responses[0].IsAvailable)
	assert.False(t, responses[0].IsLunchBreak)

	assert.Equal(t, "12:30", responses[1].Time)
	assert.False(t, responses[1].IsAvailable)
	assert.True(t, responses[1].IsLunchBreak)
}

func TestDateOptionsToResponses(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	options := []agenda.DateOption{
		{
			Date:    monday,
			Weekday: monday.Weekday(),
			Day: agenda.DaySchedule{
				Open:  true,
				Start: agenda.TimeOfDay{Hour: 8},
				End:   agenda.TimeOfDay{Hour: 13},
			},
		},
	}

	responses := DateOptionsToResponses(options)
	require.Len(t, responses, 1)
	assert.Equal(t, "2026-03-02", responses[0].Date)
	assert.Equal(t, "Segunda", responses[0].Weekday)
	assert.Equal(t, "08:00", responses[0].StartTime)
	assert.Equal(t, "13:00", responses[0].EndTime)
}
