package converter

import (
	"time"

	"clinic-agenda-api/internal/agenda"
	"clinic-agenda-api/internal/delivery/dto"
)

// Portuguese weekday names, matching the schedule text wire format.
var weekdayNamesPT = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayName returns the Portuguese name for a weekday.
func WeekdayName(weekday time.Weekday) string {
	return weekdayNamesPT[weekday]
}

// SlotsToResponses converts generated slots to TimeSlot DTOs
func SlotsToResponses(slots []agenda.Slot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.TimeSlotResponse{
			Time:         slot.Time.String(),
			IsAvailable:  slot.Available,
			IsLunchBreak: slot.LunchBreak,
		}
	}
	return responses
}

// DateOptionsToResponses converts bookable dates to DTOs
func DateOptionsToResponses(dates []agenda.DateOption) []dto.AvailableDateResponse {
	responses := make([]dto.AvailableDateResponse, len(dates))
	for i, d := range dates {
		responses[i] = dto.AvailableDateResponse{
			Date:      d.Date.Format("2006-01-02"),
			Weekday:   WeekdayName(d.Weekday),
			StartTime: d.Day.Start.String(),
			EndTime:   d.Day.End.String(),
		}
	}
	return responses
}
