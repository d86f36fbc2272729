package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-agenda-api/internal/agenda"
	"clinic-agenda-api/internal/converter"
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
	"clinic-agenda-api/internal/domain/repository"
	"clinic-agenda-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrScheduleUnavailable = errors.New("professional has no published schedule")

// AvailableDatesHorizonDays is how far ahead the date lookup reaches,
// counting from today inclusive.
const AvailableDatesHorizonDays = 30

type AvailabilityUsecase interface {
	GetDayAvailability(ctx context.Context, professionalID uuid.UUID, date string) (*dto.DayAvailabilityResponse, error)
	GetAvailableDates(ctx context.Context, professionalID uuid.UUID) (*dto.AvailableDateListResponse, error)
}

type availabilityUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	profRepo          repository.ProfessionalProfileRepository
	appointmentRepo   repository.AppointmentRepository
	availabilityCache *service.AvailabilityCache
	now               func() time.Time
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profRepo repository.ProfessionalProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	availabilityCache *service.AvailabilityCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                db,
		log:               log,
		profRepo:          profRepo,
		appointmentRepo:   appointmentRepo,
		availabilityCache: availabilityCache,
		now:               time.Now,
	}
}

// GetDayAvailability computes the slot timeline for one professional and
// date: parse the published schedule text, generate the day's slots, then
// mark slots already taken by non-cancelled appointments. Results are
// cached briefly in Redis; booking and schedule changes invalidate them.
func (u *availabilityUsecase) GetDayAvailability(ctx context.Context, professionalID uuid.UUID, date string) (*dto.DayAvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var cached dto.DayAvailabilityResponse
	if u.availabilityCache.Get(ctx, professionalID, date, &cached) {
		return &cached, nil
	}

	schedule, err := u.loadSchedule(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	daySchedule := schedule.Days[day.Weekday()]
	response := &dto.DayAvailabilityResponse{
		Date:    date,
		Weekday: converter.WeekdayName(day.Weekday()),
		IsOpen:  daySchedule.Open,
	}

	if daySchedule.Open {
		slots := agenda.GenerateSlots(daySchedule, schedule.Config)

		appointments, err := u.appointmentRepo.FindBooked(u.db.WithContext(ctx), professionalID, day)
		if err != nil {
			u.log.Warnf("Failed to find booked appointments: %+v", err)
			return nil, err
		}
		slots = agenda.FilterBooked(slots, day, bookedFromAppointments(appointments))

		response.Slots = converter.SlotsToResponses(slots)
	}

	u.availabilityCache.Set(ctx, professionalID, date, response)

	return response, nil
}

// GetAvailableDates lists the bookable dates for the next 30 days starting
// today. A date qualifies when its weekday is open in the schedule; slot
// occupancy is not consulted here.
func (u *availabilityUsecase) GetAvailableDates(ctx context.Context, professionalID uuid.UUID) (*dto.AvailableDateListResponse, error) {
	schedule, err := u.loadSchedule(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	from := u.now()
	dates := agenda.AvailableDates(schedule, from, AvailableDatesHorizonDays)

	return &dto.AvailableDateListResponse{
		Dates: converter.DateOptionsToResponses(dates),
		Total: len(dates),
	}, nil
}

func (u *availabilityUsecase) loadSchedule(ctx context.Context, professionalID uuid.UUID) (*agenda.WeeklySchedule, error) {
	profile, err := u.profRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}
	if profile.ScheduleText == nil {
		return nil, ErrScheduleUnavailable
	}

	return agenda.Parse(*profile.ScheduleText), nil
}

func bookedFromAppointments(appointments []entity.Appointment) []agenda.Booked {
	booked := make([]agenda.Booked, len(appointments))
	for i, a := range appointments {
		booked[i] = agenda.Booked{
			Date: a.AppointmentDate,
			Time: a.StartTime,
		}
	}
	return booked
}
