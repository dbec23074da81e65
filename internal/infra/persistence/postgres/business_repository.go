// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create persists a new business profile.
func (repo *businessRepository) Create(ctx context.Context, business *entity.BusinessProfile) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		// The unique index on public_slug closes the race between the
		// availability check and the insert.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business profile")
	}

	// Update the entity with generated values
	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByIDAndOwner retrieves a profile by ID scoped to its owner. A profile
// owned by someone else reads the same as one that does not exist.
func (repo *businessRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var businessM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID and owner")
	}

	return toBusinessDomain(&businessM), nil
}

// ListByOwner retrieves all profiles owned by the caller, newest first.
func (repo *businessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BusinessProfile, error) {
	var businessModels []*model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by owner")
	}

	businesses := make([]*entity.BusinessProfile, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// SlugExists reports whether any profile already uses the slug.
func (repo *businessRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("public_slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessProfileModel to a domain BusinessProfile entity.
func toBusinessDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		ID:                    data.ID,
		OwnerID:               data.OwnerID,
		BusinessName:          data.BusinessName,
		BusinessType:          data.BusinessType,
		Hours:                 data.Hours,
		PublicSlug:            data.PublicSlug,
		Status:                entity.BusinessStatus(data.Status),
		Plan:                  entity.Plan(data.Plan),
		TrialEndsAt:           data.TrialEndsAt,
		MessageLimitPerMonth:  data.MessageLimitPerMonth,
		MessageCountThisMonth: data.MessageCountThisMonth,
		BusinessAddress:       data.BusinessAddress,
		ServiceArea:           data.ServiceArea,
		DeliveryArea:          data.DeliveryArea,
		Tagline:               data.Tagline,
		About:                 data.About,
		BookingMethod:         entity.BookingMethod(data.BookingMethod),
		PrimaryLanguage:       data.PrimaryLanguage,
		BrandTone:             entity.BrandTone(data.BrandTone),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain BusinessProfile entity to a GORM BusinessProfileModel.
func fromBusinessDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	if data == nil {
		return nil
	}

	return &model.BusinessProfileModel{
		ID:                    data.ID,
		OwnerID:               data.OwnerID,
		BusinessName:          data.BusinessName,
		BusinessType:          data.BusinessType,
		Hours:                 data.Hours,
		PublicSlug:            data.PublicSlug,
		Status:                string(data.Status),
		Plan:                  string(data.Plan),
		TrialEndsAt:           data.TrialEndsAt,
		MessageLimitPerMonth:  data.MessageLimitPerMonth,
		MessageCountThisMonth: data.MessageCountThisMonth,
		BusinessAddress:       data.BusinessAddress,
		ServiceArea:           data.ServiceArea,
		DeliveryArea:          data.DeliveryArea,
		Tagline:               data.Tagline,
		About:                 data.About,
		BookingMethod:         string(data.BookingMethod),
		PrimaryLanguage:       data.PrimaryLanguage,
		BrandTone:             string(data.BrandTone),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
