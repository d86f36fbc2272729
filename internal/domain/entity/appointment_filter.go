package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	ProfessionalID uuid.UUID // Zero value means no professional filter
	StartAt        string    // Format: YYYY-MM-DD
	EndAt          string    // Format: YYYY-MM-DD
	Status         string    // pending/confirmed/cancelled
	PatientName    string    // Filter by patient name (ILIKE)
}
