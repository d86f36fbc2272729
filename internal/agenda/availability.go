package agenda

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FilterBooked returns a new slot sequence with slots taken by an existing
// appointment on date forced unavailable. Matching is exact on calendar
// date and normalized HH:MM start time; booked entries that match no slot
// are ignored. The transform is idempotent and never re-enables a slot.
func FilterBooked(slots []Slot, date time.Time, booked []Booked) []Slot {
	day := date.Format(dateLayout)

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		if b.Date.Format(dateLayout) != day {
			continue
		}
		if clock, ok := normalizeClock(b.Time); ok {
			taken[clock] = struct{}{}
		}
	}

	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = s
		if _, ok := taken[s.Time.String()]; ok {
			out[i].Available = false
		}
	}
	return out
}

// AvailableDates lists the bookable dates over the next horizonDays
// calendar days starting at from (inclusive), ascending. A date is
// bookable iff its weekday is open in the schedule.
func AvailableDates(ws *WeeklySchedule, from time.Time, horizonDays int) []DateOption {
	if ws == nil || horizonDays <= 0 {
		return nil
	}

	var dates []DateOption
	for i := 0; i < horizonDays; i++ {
		date := from.AddDate(0, 0, i)
		day := ws.Days[date.Weekday()]
		if !day.Open {
			continue
		}
		dates = append(dates, DateOption{
			Date:    date,
			Weekday: date.Weekday(),
			Day:     day,
		})
	}
	return dates
}

// normalizeClock canonicalizes "8:00" or "08:00" to "08:00". A trailing
// seconds component, as produced by a SQL TIME column, is dropped.
// Malformed values report false and simply never match a slot.
func normalizeClock(clock string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return "", false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}
