package usecase

import (
	"context"
	"time"

	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
	"clinic-agenda-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientProfileRepository
	profRepo        repository.ProfessionalProfileRepository
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	profRepo repository.ProfessionalProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		profRepo:        profRepo,
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)

	totalPatients, err := u.patientRepo.CountAll(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	professionals, err := u.profRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to count professionals: %+v", err)
		return nil, err
	}

	appointmentsToday, err := u.appointmentRepo.CountByDate(db, u.now())
	if err != nil {
		u.log.Warnf("Failed to count appointments for today: %+v", err)
		return nil, err
	}

	pendingAppointments, err := u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending appointments: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalPatients:       totalPatients,
		TotalProfessionals:  int64(len(professionals)),
		AppointmentsToday:   appointmentsToday,
		PendingAppointments: pendingAppointments,
	}, nil
}
