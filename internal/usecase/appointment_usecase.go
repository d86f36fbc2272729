package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
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

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrSlotUnavailable       = errors.New("slot is not available")
	ErrPastDate              = errors.New("appointment date is in the past")
	ErrAppointmentNotPending = errors.New("appointment is not pending")
	ErrAppointmentCancelled  = errors.New("appointment is already cancelled")
	ErrForbidden             = errors.New("not allowed to access this appointment")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID, actorID uuid.UUID, roleID int) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	ConfirmAppointment(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uuid.UUID, actorID uuid.UUID, roleID int) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	profRepo          repository.ProfessionalProfileRepository
	patientRepo       repository.PatientProfileRepository
	serviceRepo       repository.ClinicServiceRepository
	auditService      service.AuditService
	availabilityCache *service.AvailabilityCache
	now               func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	profRepo repository.ProfessionalProfileRepository,
	patientRepo repository.PatientProfileRepository,
	serviceRepo repository.ClinicServiceRepository,
	auditService service.AuditService,
	availabilityCache *service.AvailabilityCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		profRepo:          profRepo,
		patientRepo:       patientRepo,
		serviceRepo:       serviceRepo,
		auditService:      auditService,
		availabilityCache: availabilityCache,
		now:               time.Now,
	}
}

// CreateAppointment books a slot for a patient. The requested start time
// must be one of the slots the professional's schedule generates for that
// date and must still be free once existing bookings are applied. The
// uniqueness constraint on (professional, date, start time) backstops the
// check under concurrent requests.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := u.now()
	if date.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())) {
		return nil, ErrPastDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	profile, err := u.profRepo.FindByUserID(tx, req.ProfessionalID)
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

	if req.ServiceID != nil {
		svc, err := u.serviceRepo.FindByID(tx, *req.ServiceID)
		if err != nil {
			u.log.Warnf("Failed to find service: %+v", err)
			return nil, err
		}
		if svc == nil || !svc.IsActive {
			return nil, ErrServiceNotFound
		}
	}

	schedule := agenda.Parse(*profile.ScheduleText)
	slots := agenda.GenerateSlots(schedule.Days[date.Weekday()], schedule.Config)

	booked, err := u.appointmentRepo.FindBooked(tx, req.ProfessionalID, date)
	if err != nil {
		u.log.Warnf("Failed to find booked appointments: %+v", err)
		return nil, err
	}
	slots = agenda.FilterBooked(slots, date, bookedFromAppointments(booked))

	startTime, ok := matchSlot(slots, req.StartTime)
	if !ok {
		return nil, ErrSlotUnavailable
	}

	appointment := &entity.Appointment{
		ProfessionalID:  req.ProfessionalID,
		PatientID:       patientID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		StartTime:       startTime,
		BookingCode:     generateBookingCode(date),
		Status:          entity.AppointmentStatusPending,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "live_slot") {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.availabilityCache.Invalidate(ctx, req.ProfessionalID, req.AppointmentDate)

	created, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || created == nil {
		// The write committed; fall back to the sparse record.
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID, actorID uuid.UUID, roleID int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !canAccessAppointment(appointment, actorID, roleID) {
		return nil, ErrForbidden
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindWithFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ConfirmAppointment moves a pending appointment to confirmed. Only the
// booked professional may confirm.
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.ProfessionalID != actorID {
		return nil, ErrForbidden
	}
	if !appointment.IsPending() {
		return nil, ErrAppointmentNotPending
	}

	appointment.Confirm()
	if err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusConfirmed); err != nil {
		u.log.Warnf("Failed to confirm appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentConfirm, "appointment", id.String(), entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment cancels a pending or confirmed appointment. Patients
// may cancel their own bookings; professionals theirs; admins any. The
// freed slot becomes bookable again, so the cached day is invalidated.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID, actorID uuid.UUID, roleID int) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !canAccessAppointment(appointment, actorID, roleID) {
		return nil, ErrForbidden
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	previous := appointment.Status
	appointment.Cancel()
	if err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", id.String(), previous, entity.AppointmentStatusCancelled); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.availabilityCache.Invalidate(ctx, appointment.ProfessionalID, appointment.AppointmentDate.Format("2006-01-02"))

	return converter.AppointmentToResponse(appointment), nil
}

func canAccessAppointment(appointment *entity.Appointment, actorID uuid.UUID, roleID int) bool {
	switch roleID {
	case entity.RoleIDAdmin:
		return true
	case entity.RoleIDProfessional:
		return appointment.ProfessionalID == actorID
	default:
		return appointment.PatientID == actorID
	}
}

// matchSlot finds the generated slot whose time equals the requested HH:MM
// start and reports whether it is still available. Returns the canonical
// slot time so a "8:00" request is stored as "08:00".
func matchSlot(slots []agenda.Slot, startTime string) (string, bool) {
	for _, s := range slots {
		if !slotTimeEquals(s.Time, startTime) {
			continue
		}
		return s.Time.String(), s.Available
	}
	return "", false
}

func slotTimeEquals(t agenda.TimeOfDay, clock string) bool {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return false
	}
	return t.Hour == h && t.Minute == m
}

// generateBookingCode builds a human-readable code like AG-20260301-9F2C41.
func generateBookingCode(date time.Time) string {
	b := make([]byte, 3)
	rand.Read(b)
	return fmt.Sprintf("AG-%s-%02X%02X%02X", date.Format("20060102"), b[0], b[1], b[2])
}
