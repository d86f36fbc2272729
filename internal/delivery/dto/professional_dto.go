package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateProfessionalRequest struct {
	FullName           string `json:"full_name" validate:"omitempty,min=2"`
	RegistrationNumber string `json:"registration_number" validate:"omitempty"`
	SpecialtyID        int    `json:"specialty_id" validate:"omitempty,min=1"`
	Biography          string `json:"biography" validate:"omitempty"`
}

// UpdateScheduleTextRequest replaces a professional's published weekly
// schedule. An explicit null clears it (schedule unavailable).
type UpdateScheduleTextRequest struct {
	ScheduleText *string `json:"schedule_text"`
}

// Response DTOs

type ProfessionalProfileResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Email              string             `json:"email"`
	FullName           string             `json:"full_name"`
	RegistrationNumber string             `json:"registration_number"`
	Specialty          *SpecialtyResponse `json:"specialty,omitempty"`
	Biography          string             `json:"biography,omitempty"`
	ScheduleText       *string            `json:"schedule_text,omitempty"`
	IsActive           bool               `json:"is_active"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalProfileResponse `json:"professionals"`
	Total         int                           `json:"total"`
}
