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

var ErrProfessionalNotFound = errors.New("professional not found")

type ProfessionalUsecase interface {
	GetProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalProfileResponse, error)
	GetAllProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error)
	GetProfessionalsBySpecialty(ctx context.Context, specialtyID int) (*dto.ProfessionalListResponse, error)
	UpdateProfessional(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalProfileResponse, error)
	UpdateScheduleText(ctx context.Context, userID uuid.UUID, actorID *uuid.UUID, req *dto.UpdateScheduleTextRequest) (*dto.ProfessionalProfileResponse, error)
	DeactivateProfessional(ctx context.Context, userID uuid.UUID) error
}

type professionalUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	profRepo          repository.ProfessionalProfileRepository
	specialtyRepo     repository.SpecialtyRepository
	auditService      service.AuditService
	availabilityCache *service.AvailabilityCache
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profRepo repository.ProfessionalProfileRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
	availabilityCache *service.AvailabilityCache,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		profRepo:          profRepo,
		specialtyRepo:     specialtyRepo,
		auditService:      auditService,
		availabilityCache: availabilityCache,
	}
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalProfileResponse, error) {
	profile, err := u.profRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalProfileToResponse(profile), nil
}

func (u *professionalUsecase) GetAllProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	profiles, err := u.profRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalProfilesToResponses(profiles),
		Total:         len(profiles),
	}, nil
}

func (u *professionalUsecase) GetProfessionalsBySpecialty(ctx context.Context, specialtyID int) (*dto.ProfessionalListResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	profiles, err := u.profRepo.FindBySpecialtyID(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find professionals by specialty: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalProfilesToResponses(profiles),
		Total:         len(profiles),
	}, nil
}

func (u *professionalUsecase) UpdateProfessional(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	if req.FullName != "" {
		user := profile.User
		user.FullName = req.FullName
		if err := u.userRepo.Update(tx, &user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
		profile.User = user
	}
	if req.RegistrationNumber != "" {
		profile.RegistrationNumber = req.RegistrationNumber
	}
	if req.SpecialtyID != 0 {
		specialty, err := u.specialtyRepo.FindByID(tx, req.SpecialtyID)
		if err != nil {
			return nil, err
		}
		if specialty == nil {
			return nil, ErrSpecialtyNotFound
		}
		profile.SpecialtyID = req.SpecialtyID
		profile.Specialty = *specialty
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}

	if err := u.profRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrRegistrationAlreadyExists
		}
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfessionalProfileToResponse(profile), nil
}

// UpdateScheduleText replaces the published weekly schedule text. The text
// is stored as-is: malformed lines degrade to closed days at parse time,
// never to a rejected write. Cached availability for the professional is
// dropped so clients see the new schedule immediately.
func (u *professionalUsecase) UpdateScheduleText(ctx context.Context, userID uuid.UUID, actorID *uuid.UUID, req *dto.UpdateScheduleTextRequest) (*dto.ProfessionalProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	oldText := profile.ScheduleText

	if err := u.profRepo.UpdateScheduleText(tx, userID, req.ScheduleText); err != nil {
		u.log.Warnf("Failed to update schedule text: %+v", err)
		return nil, err
	}
	profile.ScheduleText = req.ScheduleText

	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionScheduleUpdate, "professional_profile", userID.String(), oldText, req.ScheduleText); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.availabilityCache.InvalidateAll(ctx, userID)

	return converter.ProfessionalProfileToResponse(profile), nil
}

func (u *professionalUsecase) DeactivateProfessional(ctx context.Context, userID uuid.UUID) error {
	profile, err := u.profRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return err
	}
	if profile == nil {
		return ErrProfessionalNotFound
	}

	user := profile.User
	user.IsActive = false
	if err := u.userRepo.Update(u.db.WithContext(ctx), &user); err != nil {
		u.log.Warnf("Failed to deactivate professional: %+v", err)
		return err
	}

	u.availabilityCache.InvalidateAll(ctx, userID)
	return nil
}
