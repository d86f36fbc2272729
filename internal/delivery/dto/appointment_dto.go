package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ProfessionalID  uuid.UUID  `json:"professional_id" validate:"required"`
	ServiceID       *uuid.UUID `json:"service_id" validate:"omitempty"`
	AppointmentDate string     `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	StartTime       string     `json:"start_time" validate:"required"`       // Format: HH:MM
	Notes           string     `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID                    `json:"id"`
	BookingCode     string                       `json:"booking_code"`
	AppointmentDate string                       `json:"appointment_date"`
	StartTime       string                       `json:"start_time"`
	Status          string                       `json:"status"`
	Notes           string                       `json:"notes,omitempty"`
	Professional    *ProfessionalProfileResponse `json:"professional,omitempty"`
	Patient         *PatientProfileResponse      `json:"patient,omitempty"`
	Service         *ClinicServiceResponse       `json:"service,omitempty"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
