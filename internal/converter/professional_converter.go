package converter

import (
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
)

// ProfessionalProfileToResponse converts a ProfessionalProfile entity to its DTO
func ProfessionalProfileToResponse(profile *entity.ProfessionalProfile) *dto.ProfessionalProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.ProfessionalProfileResponse{
		ID:                 profile.UserID,
		Email:              profile.User.Email,
		FullName:           profile.User.FullName,
		RegistrationNumber: profile.RegistrationNumber,
		Biography:          profile.Biography,
		ScheduleText:       profile.ScheduleText,
		IsActive:           profile.User.IsActive,
	}

	if profile.Specialty.ID != 0 {
		response.Specialty = SpecialtyToResponse(&profile.Specialty)
	}

	return response
}

// ProfessionalProfilesToResponses converts a slice of profiles to DTOs
func ProfessionalProfilesToResponses(profiles []entity.ProfessionalProfile) []dto.ProfessionalProfileResponse {
	responses := make([]dto.ProfessionalProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ProfessionalProfileToResponse(&profiles[i])
	}
	return responses
}
