package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityUsecase struct {
	day     *dto.DayAvailabilityResponse
	dates   *dto.AvailableDateListResponse
	err     error
	gotID   uuid.UUID
	gotDate string
}

func (s *stubAvailabilityUsecase) GetDayAvailability(ctx context.Context, professionalID uuid.UUID, date string) (*dto.DayAvailabilityResponse, error) {
	s.gotID = professionalID
	s.gotDate = date
	return s.day, s.err
}

func (s *stubAvailabilityUsecase) GetAvailableDates(ctx context.Context, professionalID uuid.UUID) (*dto.AvailableDateListResponse, error) {
	s.gotID = professionalID
	return s.dates, s.err
}

func newAvailabilityRouter(stub *stubAvailabilityUsecase) *mux.Router {
	h := NewAvailabilityHandler(stub)
	r := mux.NewRouter()
	r.HandleFunc("/professionals/{id}/availability", h.GetDayAvailability).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{id}/available-dates", h.GetAvailableDates).Methods(http.MethodGet)
	return r
}

func TestGetDayAvailability(t *testing.T) {
	professionalID := uuid.New()
	stub := &stubAvailabilityUsecase{
		day: &dto.DayAvailabilityResponse{
			Date:    "2026-03-02",
			Weekday: "Segunda",
			IsOpen:  true,
			Slots: []dto.TimeSlotResponse{
				{Time: "08:00", IsAvailable: true},
				{Time: "09:05", IsAvailable: false},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/professionals/"+professionalID.String()+"/availability?date=2026-03-02", nil)
	rec := httptest.NewRecorder()
	newAvailabilityRouter(stub).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, professionalID, stub.gotID)
	assert.Equal(t, "2026-03-02", stub.gotDate)

	var body struct {
		Success bool                        `json:"success"`
		Data    dto.DayAvailabilityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Segunda", body.Data.Weekday)
	require.Len(t, body.Data.Slots, 2)
	assert.Equal(t, "08:00", body.Data.Slots[0].Time)
	assert.False(t, body.Data.Slots[1].IsAvailable)
}

func TestGetDayAvailabilityMissingDate(t *testing.T) {
	stub := &stubAvailabilityUsecase{}

	req := httptest.NewRequest(http.MethodGet, "/professionals/"+uuid.NewString()+"/availability", nil)
	rec := httptest.NewRecorder()
	newAvailabilityRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDayAvailabilityInvalidProfessionalID(t *testing.T) {
	stub := &stubAvailabilityUsecase{}

	req := httptest.NewRequest(http.MethodGet, "/professionals/not-a-uuid/availability?date=2026-03-02", nil)
	rec := httptest.NewRecorder()
	newAvailabilityRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDayAvailabilityNoSchedule(t *testing.T) {
	stub := &stubAvailabilityUsecase{err: usecase.ErrScheduleUnavailable}

	req := httptest.NewRequest(http.MethodGet, "/professionals/"+uuid.NewString()+"/availability?date=2026-03-02", nil)
	rec := httptest.NewRecorder()
	newAvailabilityRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAvailableDates(t *testing.T) {
	stub := &stubAvailabilityUsecase{
		dates: &dto.AvailableDateListResponse{
			Dates: []dto.AvailableDateResponse{
				{Date: "2026-03-02", Weekday: "Segunda", StartTime: "08:00", EndTime: "13:00"},
			},
			Total: 1,
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/professionals/"+uuid.NewString()+"/available-dates", nil)
	rec := httptest.NewRecorder()
	newAvailabilityRouter(stub).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.AvailableDateListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Total)
	assert.Equal(t, "Segunda", body.Data.Dates[0].Weekday)
}

func TestGetAvailableDatesProfessionalNotFound(t *testing.T) {
	stub := &stubAvailabilityUsecase{err: usecase.ErrProfessionalNotFound}

	req := httptest.NewRequest(http.MethodGet, "/professionals/"+uuid.NewString()+"/available-dates", nil)
	rec := httptest.NewRecorder()
	newAvailabilityRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
