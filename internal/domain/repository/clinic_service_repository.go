package repository

import (
	"clinic-agenda-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicServiceRepository interface {
	Create(db *gorm.DB, service *entity.ClinicService) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ClinicService, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.ClinicService, error)
	Update(db *gorm.DB, service *entity.ClinicService) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
