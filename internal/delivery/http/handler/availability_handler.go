package handler

import (
	"net/http"

	"clinic-agenda-api/internal/usecase"
	"clinic-agenda-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetDayAvailability handles GET /professionals/{id}/availability?date=YYYY-MM-DD
func (h *AvailabilityHandler) GetDayAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	availability, err := h.availabilityUsecase.GetDayAvailability(r.Context(), professionalID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrScheduleUnavailable:
			response.NotFound(w, "Professional has no published schedule")
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// GetAvailableDates handles GET /professionals/{id}/available-dates
func (h *AvailabilityHandler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	dates, err := h.availabilityUsecase.GetAvailableDates(r.Context(), professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrScheduleUnavailable:
			response.NotFound(w, "Professional has no published schedule")
		default:
			response.InternalServerError(w, "Failed to get available dates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available dates retrieved successfully", dates)
}
