package repository

import (
	"clinic-agenda-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ProfessionalProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	FindAll(db *gorm.DB) ([]entity.ProfessionalProfile, error)
	FindBySpecialtyID(db *gorm.DB, specialtyID int) ([]entity.ProfessionalProfile, error)
	Update(db *gorm.DB, profile *entity.ProfessionalProfile) error
	UpdateScheduleText(db *gorm.DB, userID uuid.UUID, scheduleText *string) error
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
}
