package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/delivery/http/middleware"
	"clinic-agenda-api/internal/domain/entity"
	"clinic-agenda-api/internal/usecase"
	"clinic-agenda-api/pkg/response"
	"clinic-agenda-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) GetAllProfessionals(w http.ResponseWriter, r *http.Request) {
	if specialtyID := r.URL.Query().Get("specialty_id"); specialtyID != "" {
		id, err := strconv.Atoi(specialtyID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
			return
		}

		professionals, err := h.professionalUsecase.GetProfessionalsBySpecialty(r.Context(), id)
		if err != nil {
			switch err {
			case usecase.ErrSpecialtyNotFound:
				response.NotFound(w, "Specialty not found")
			default:
				response.InternalServerError(w, "Failed to get professionals")
			}
			return
		}

		response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
		return
	}

	professionals, err := h.professionalUsecase.GetAllProfessionals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

// UpdateProfessional updates the caller's own profile, or any profile when
// the caller is an admin hitting /professionals/{id}.
func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveTargetID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrRegistrationAlreadyExists:
			response.Conflict(w, "Registration number already registered")
		default:
			response.InternalServerError(w, "Failed to update professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) UpdateScheduleText(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveTargetID(w, r)
	if !ok {
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.UpdateScheduleTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateScheduleText(r.Context(), userID, &actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to update schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", professional)
}

func (h *ProfessionalHandler) DeactivateProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	if err := h.professionalUsecase.DeactivateProfessional(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to deactivate professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional deactivated successfully", nil)
}

// resolveTargetID returns the profile being acted on: the path {id} when
// present (admin routes), otherwise the authenticated user. Professionals
// may only touch their own profile.
func (h *ProfessionalHandler) resolveTargetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return uuid.Nil, false
	}

	vars := mux.Vars(r)
	raw, hasPathID := vars["id"]
	if !hasPathID {
		return actorID, true
	}

	targetID, err := uuid.Parse(raw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return uuid.Nil, false
	}

	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	if roleID != entity.RoleIDAdmin && targetID != actorID {
		response.Forbidden(w, "You can only manage your own profile")
		return uuid.Nil, false
	}

	return targetID, true
}
