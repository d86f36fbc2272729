package repository

import (
	"errors"

	"clinic-agenda-api/internal/domain/entity"
	domainRepo "clinic-agenda-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalProfileRepository struct{}

func NewProfessionalProfileRepository() domainRepo.ProfessionalProfileRepository {
	return &professionalProfileRepository{}
}

func (r *professionalProfileRepository) Create(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Create(profile).Error
}

func (r *professionalProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error) {
	var profile entity.ProfessionalProfile
	err := db.Preload("User").Preload("Specialty").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *professionalProfileRepository) FindAll(db *gorm.DB) ([]entity.ProfessionalProfile, error) {
	var profiles []entity.ProfessionalProfile
	err := db.
		Joins("JOIN users ON users.id = professional_profiles.user_id").
		Where("users.is_active = ?", true).
		Preload("User").Preload("Specialty").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *professionalProfileRepository) FindBySpecialtyID(db *gorm.DB, specialtyID int) ([]entity.ProfessionalProfile, error) {
	var profiles []entity.ProfessionalProfile
	err := db.
		Joins("JOIN users ON users.id = professional_profiles.user_id").
		Where("users.is_active = ?", true).
		Where("professional_profiles.specialty_id = ?", specialtyID).
		Preload("User").Preload("Specialty").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *professionalProfileRepository) Update(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Omit("User", "Specialty", "Appointments").Save(profile).Error
}

func (r *professionalProfileRepository) UpdateScheduleText(db *gorm.DB, userID uuid.UUID, scheduleText *string) error {
	return db.Model(&entity.ProfessionalProfile{}).
		Where("user_id = ?", userID).
		Update("schedule_text", scheduleText).Error
}

func (r *professionalProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	affected := db.Where("user_id = ?", userID).Delete(&entity.ProfessionalProfile{})
	return affected.RowsAffected, affected.Error
}
