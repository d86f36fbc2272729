package usecase

import (
	"context"
	"errors"

	"clinic-agenda-api/internal/converter"
	"clinic-agenda-api/internal/delivery/dto"
	"clinic-agenda-api/internal/domain/entity"
	"clinic-agenda-api/internal/domain/repository"
	"clinic-agenda-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ClinicServiceUsecase interface {
	CreateService(ctx context.Context, actorID *uuid.UUID, req *dto.CreateClinicServiceRequest) (*dto.ClinicServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*dto.ClinicServiceResponse, error)
	GetAllServices(ctx context.Context, activeOnly bool) (*dto.ClinicServiceListResponse, error)
	UpdateService(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateClinicServiceRequest) (*dto.ClinicServiceResponse, error)
	DeleteService(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error
}

type clinicServiceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ClinicServiceRepository
	auditService service.AuditService
}

func NewClinicServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ClinicServiceRepository,
	auditService service.AuditService,
) ClinicServiceUsecase {
	return &clinicServiceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func (u *clinicServiceUsecase) CreateService(ctx context.Context, actorID *uuid.UUID, req *dto.CreateClinicServiceRequest) (*dto.ClinicServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc := &entity.ClinicService{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionServiceCreate, "clinic_service", svc.ID.String(), svc); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicServiceToResponse(svc), nil
}

func (u *clinicServiceUsecase) GetService(ctx context.Context, id uuid.UUID) (*dto.ClinicServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ClinicServiceToResponse(svc), nil
}

func (u *clinicServiceUsecase) GetAllServices(ctx context.Context, activeOnly bool) (*dto.ClinicServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.ClinicServiceListResponse{
		Services: converter.ClinicServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *clinicServiceUsecase) UpdateService(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateClinicServiceRequest) (*dto.ClinicServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	old := *svc

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionServiceUpdate, "clinic_service", svc.ID.String(), old, svc); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicServiceToResponse(svc), nil
}

func (u *clinicServiceUsecase) DeleteService(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if _, err := u.serviceRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionServiceDelete, "clinic_service", id.String(), svc); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
