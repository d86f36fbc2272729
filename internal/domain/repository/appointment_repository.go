package repository

import (
	"time"

	"clinic-agenda-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindBooked returns non-cancelled appointments for a professional on a
	// date; this is the booked-slot input of the availability filter.
	FindBooked(db *gorm.DB, professionalID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindBookedRange(db *gorm.DB, professionalID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	CountByDate(db *gorm.DB, date time.Time) (int64, error)
	CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
}
