package converter

import (
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		BookingCode:     appointment.BookingCode,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		StartTime:       clockHHMM(appointment.StartTime),
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Professional.UserID != uuid.Nil {
		response.Professional = ProfessionalProfileToResponse(&appointment.Professional)
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = PatientProfileToResponse(&appointment.Patient)
	}
	if appointment.Service != nil {
		response.Service = ClinicServiceToResponse(appointment.Service)
	}

	return response
}

// AppointmentsToResponses converts a slice of appointments to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// clockHHMM trims the seconds a SQL TIME column carries ("08:00:00").
func clockHHMM(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}
