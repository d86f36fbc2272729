package repository

import (
	"errors"
	"time"

	"clinic-agenda-api/internal/domain/entity"
	domainRepo "clinic-agenda-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Professional.User").Preload("Professional.Specialty").
		Preload("Patient.User").Preload("Service").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Professional.User").Preload("Professional.Specialty").Preload("Service").
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBooked(db *gorm.DB, professionalID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("professional_id = ?", professionalID).
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Where("status <> ?", entity.AppointmentStatusCancelled).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedRange(db *gorm.DB, professionalID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("professional_id = ?", professionalID).
		Where("appointment_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("status <> ?", entity.AppointmentStatusCancelled).
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.
		Preload("Professional.User").Preload("Patient.User").Preload("Service")

	if filter != nil {
		if filter.ProfessionalID != uuid.Nil {
			query = query.Where("professional_id = ?", filter.ProfessionalID)
		}
		if filter.StartAt != "" {
			query = query.Where("appointment_date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("appointment_date <= ?", filter.EndAt)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.PatientName != "" {
			query = query.
				Joins("JOIN patient_profiles ON patient_profiles.user_id = appointments.patient_id").
				Joins("JOIN users ON users.id = patient_profiles.user_id").
				Where("users.full_name ILIKE ?", "%"+filter.PatientName+"%")
		}
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_date ASC, start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByDate(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Where("status <> ?", entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status).Error
}
