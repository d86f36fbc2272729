package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_ClosedDayIsEmpty(t *testing.T) {
	slots := GenerateSlots(DaySchedule{}, Config{ConsultationMinutes: 30, IntervalMinutes: 5})

	assert.Empty(t, slots)
}

func TestGenerateSlots_BoundaryFit(t *testing.T) {
	day := DaySchedule{
		Open:  true,
		Start: TimeOfDay{Hour: 8},
		End:   TimeOfDay{Hour: 12},
	}
	cfg := Config{ConsultationMinutes: 30, IntervalMinutes: 5}

	slots := GenerateSlots(day, cfg)

	// Last slot starts at 11:30: 11:30+30 = 12:00 fits exactly.
	expected := []string{"08:00", "08:35", "09:10", "09:45", "10:20", "10:55", "11:30"}
	require.Len(t, slots, len(expected))
	for i, slot := range slots {
		assert.Equal(t, expected[i], slot.Time.String())
		assert.True(t, slot.Available)
		assert.False(t, slot.LunchBreak)
	}
}

func TestGenerateSlots_LunchMarking(t *testing.T) {
	day := DaySchedule{
		Open:  true,
		Start: TimeOfDay{Hour: 8},
		End:   TimeOfDay{Hour: 12},
	}
	cfg := Config{
		ConsultationMinutes: 30,
		IntervalMinutes:     5,
		Lunch:               &LunchBreak{Start: TimeOfDay{Hour: 10}, End: TimeOfDay{Hour: 11}},
	}

	slots := GenerateSlots(day, cfg)
	require.Len(t, slots, 7)

	inLunch := map[string]bool{"10:20": true, "10:55": true}
	for _, slot := range slots {
		if inLunch[slot.Time.String()] {
			assert.True(t, slot.LunchBreak, "slot %s", slot.Time)
			assert.False(t, slot.Available, "slot %s", slot.Time)
		} else {
			assert.False(t, slot.LunchBreak, "slot %s", slot.Time)
			assert.True(t, slot.Available, "slot %s", slot.Time)
		}
	}
}

func TestGenerateSlots_SlotAtLunchEndIsAvailable(t *testing.T) {
	day := DaySchedule{
		Open:  true,
		Start: TimeOfDay{Hour: 12},
		End:   TimeOfDay{Hour: 14},
	}
	cfg := Config{
		ConsultationMinutes: 30,
		IntervalMinutes:     0,
		Lunch:               &LunchBreak{Start: TimeOfDay{Hour: 12}, End: TimeOfDay{Hour: 13}},
	}

	slots := GenerateSlots(day, cfg)
	require.Len(t, slots, 4)

	// [12:00, 13:00): 12:00 and 12:30 blocked, 13:00 open again.
	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
	assert.Equal(t, "13:00", slots[2].Time.String())
	assert.True(t, slots[3].Available)
}

func TestGenerateSlots_InvertedRangeIsEmpty(t *testing.T) {
	cfg := Config{ConsultationMinutes: 30, IntervalMinutes: 5}

	equal := DaySchedule{Open: true, Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 9}}
	assert.Empty(t, GenerateSlots(equal, cfg))

	inverted := DaySchedule{Open: true, Start: TimeOfDay{Hour: 15}, End: TimeOfDay{Hour: 9}}
	assert.Empty(t, GenerateSlots(inverted, cfg))
}

func TestGenerateSlots_LunchSpanningWholeWindow(t *testing.T) {
	day := DaySchedule{
		Open:  true,
		Start: TimeOfDay{Hour: 9},
		End:   TimeOfDay{Hour: 11},
	}
	cfg := Config{
		ConsultationMinutes: 30,
		IntervalMinutes:     0,
		Lunch:               &LunchBreak{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 11}},
	}

	slots := GenerateSlots(day, cfg)

	// Fully unavailable is not the same as closed: slots are still emitted.
	require.Len(t, slots, 4)
	for _, slot := range slots {
		assert.False(t, slot.Available)
		assert.True(t, slot.LunchBreak)
	}
}

func TestGenerateSlots_StepFloor(t *testing.T) {
	day := DaySchedule{
		Open:  true,
		Start: TimeOfDay{Hour: 9},
		End:   TimeOfDay{Hour: 9, Minute: 5},
	}

	slots := GenerateSlots(day, Config{ConsultationMinutes: 0, IntervalMinutes: 0})

	// Degenerate config must not loop forever; one slot per minute.
	assert.Len(t, slots, 6)
}
