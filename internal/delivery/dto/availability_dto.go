package dto

// Response DTOs for the availability endpoints. TimeSlots inside the lunch
// window are kept in the sequence (marked unavailable) so clients can
// render a dense timeline.

type TimeSlotResponse struct {
	Time         string `json:"time"` // Format: HH:MM
	IsAvailable  bool   `json:"is_available"`
	IsLunchBreak bool   `json:"is_lunch_break"`
}

type DayAvailabilityResponse struct {
	Date    string             `json:"date"` // Format: YYYY-MM-DD
	Weekday string             `json:"weekday"`
	IsOpen  bool               `json:"is_open"`
	Slots   []TimeSlotResponse `json:"slots"`
}

type AvailableDateResponse struct {
	Date      string `json:"date"` // Format: YYYY-MM-DD
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"` // Format: HH:MM
	EndTime   string `json:"end_time"`   // Format: HH:MM
}

type AvailableDateListResponse struct {
	Dates []AvailableDateResponse `json:"dates"`
	Total int                     `json:"total"`
}
