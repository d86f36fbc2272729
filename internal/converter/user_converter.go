package converter

import (
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its DTO, including whichever
// profile is attached.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.ProfessionalProfile != nil {
		profile := *user.ProfessionalProfile
		profile.User = *user
		response.ProfessionalProfile = ProfessionalProfileToResponse(&profile)
	}
	if user.PatientProfile != nil {
		profile := *user.PatientProfile
		profile.User = *user
		response.PatientProfile = PatientProfileToResponse(&profile)
	}

	return response
}
