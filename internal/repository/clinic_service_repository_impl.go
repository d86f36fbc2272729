package repository

import (
	"errors"

	"clinic-agenda-api/internal/domain/entity"
	domainRepo "clinic-agenda-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicServiceRepository struct{}

func NewClinicServiceRepository() domainRepo.ClinicServiceRepository {
	return &clinicServiceRepository{}
}

func (r *clinicServiceRepository) Create(db *gorm.DB, service *entity.ClinicService) error {
	return db.Create(service).Error
}

func (r *clinicServiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ClinicService, error) {
	var service entity.ClinicService
	err := db.Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *clinicServiceRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.ClinicService, error) {
	var services []entity.ClinicService
	query := db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *clinicServiceRepository) Update(db *gorm.DB, service *entity.ClinicService) error {
	return db.Save(service).Error
}

func (r *clinicServiceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ClinicService{})
	return affected.RowsAffected, affected.Error
}
