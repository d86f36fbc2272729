package handler

import (
	"encoding/json"
	"net/http"

	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/delivery/http/middleware"
	"clinic-agenda-api/internal/domain/entity"
	"clinic-agenda-api/internal/usecase"
	"clinic-agenda-api/pkg/response"
	"clinic-agenda-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClinicServiceHandler struct {
	serviceUsecase usecase.ClinicServiceUsecase
	validator      *validator.CustomValidator
}

func NewClinicServiceHandler(serviceUsecase usecase.ClinicServiceUsecase, validator *validator.CustomValidator) *ClinicServiceHandler {
	return &ClinicServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *ClinicServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateClinicServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.CreateService(r.Context(), &actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create service")
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

// GetAllServices lists services. Non-admin callers only see active ones.
func (h *ClinicServiceHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())
	activeOnly := roleID != entity.RoleIDAdmin

	services, err := h.serviceUsecase.GetAllServices(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ClinicServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := parseServiceID(w, r)
	if !ok {
		return
	}

	service, err := h.serviceUsecase.GetService(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

func (h *ClinicServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := parseServiceID(w, r)
	if !ok {
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.UpdateClinicServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.UpdateService(r.Context(), &actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *ClinicServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := parseServiceID(w, r)
	if !ok {
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	if err := h.serviceUsecase.DeleteService(r.Context(), &actorID, id); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func parseServiceID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
