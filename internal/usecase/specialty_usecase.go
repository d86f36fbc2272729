package usecase

import (
	"context"
	"errors"

	"clinic-agenda-api/internal/converter"
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
	"clinic-agenda-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialtyNotFound      = errors.New("specialty not found")
	ErrSpecialtyAlreadyExists = errors.New("specialty already exists")
	ErrSpecialtyInUse         = errors.New("specialty is referenced by professionals")
)

type SpecialtyUsecase interface {
	CreateSpecialty(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetSpecialty(ctx context.Context, id int) (*dto.SpecialtyResponse, error)
	GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	UpdateSpecialty(ctx context.Context, id int, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	DeleteSpecialty(ctx context.Context, id int) error
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyUsecase(db *gorm.DB, log *logrus.Logger, specialtyRepo repository.SpecialtyRepository) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
	}
}

func (u *specialtyUsecase) CreateSpecialty(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty := &entity.Specialty{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.specialtyRepo.Create(u.db.WithContext(ctx), specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyAlreadyExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetSpecialty(ctx context.Context, id int) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}

func (u *specialtyUsecase) UpdateSpecialty(ctx context.Context, id int, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	if req.Name != "" {
		specialty.Name = req.Name
	}
	if req.Description != "" {
		specialty.Description = req.Description
	}

	if err := u.specialtyRepo.Update(u.db.WithContext(ctx), specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyAlreadyExists
		}
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) DeleteSpecialty(ctx context.Context, id int) error {
	affected, err := u.specialtyRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "specialty") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}

	return nil
}
