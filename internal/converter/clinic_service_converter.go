package converter

import (
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
)

// ClinicServiceToResponse converts a ClinicService entity to its DTO
func ClinicServiceToResponse(service *entity.ClinicService) *dto.ClinicServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ClinicServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		IsActive:        service.IsActive,
		CreatedAt:       service.CreatedAt,
		UpdatedAt:       service.UpdatedAt,
	}
}

// ClinicServicesToResponses converts a slice of services to DTOs
func ClinicServicesToResponses(services []entity.ClinicService) []dto.ClinicServiceResponse {
	responses := make([]dto.ClinicServiceResponse, len(services))
	for i := range services {
		responses[i] = *ClinicServiceToResponse(&services[i])
	}
	return responses
}
