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

// offeringRepository implements the repository.OfferingRepository interface.
type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository is the constructor for offeringRepository.
func NewOfferingRepository(db *gorm.DB) repository.OfferingRepository {
	return &offeringRepository{
		db: db,
	}
}

// Create persists a new offering for its owning business.
func (repo *offeringRepository) Create(ctx context.Context, offering *entity.Offering) error {
	offeringM := fromOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOfferingCreationFailed.WrapMessage("missing required offering information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offering")
	}

	// Update the entity with generated values
	offering.ID = offeringM.ID
	offering.CreatedAt = offeringM.CreatedAt

	return nil
}

// ListByBusiness retrieves all offerings of one business, oldest first.
func (repo *offeringRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offering, error) {
	var offeringModels []*model.BusinessOfferingModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offerings by business")
	}

	offerings := make([]*entity.Offering, 0, len(offeringModels))
	for _, offeringM := range offeringModels {
		offerings = append(offerings, toOfferingDomain(offeringM))
	}

	return offerings, nil
}

// --- Mapper Functions ---

// toOfferingDomain converts a GORM BusinessOfferingModel to a domain Offering entity.
func toOfferingDomain(data *model.BusinessOfferingModel) *entity.Offering {
	if data == nil {
		return nil
	}

	return &entity.Offering{
		ID:               data.ID,
		BusinessID:       data.BusinessID,
		Kind:             entity.OfferingKind(data.Kind),
		Name:             data.Name,
		Category:         data.Category,
		StartingPrice:    data.StartingPrice,
		ShortDescription: data.ShortDescription,
		CreatedAt:        data.CreatedAt,
	}
}

// fromOfferingDomain converts a domain Offering entity to a GORM BusinessOfferingModel.
func fromOfferingDomain(data *entity.Offering) *model.BusinessOfferingModel {
	if data == nil {
		return nil
	}

	return &model.BusinessOfferingModel{
		ID:               data.ID,
		BusinessID:       data.BusinessID,
		Kind:             string(data.Kind),
		Name:             data.Name,
		Category:         data.Category,
		StartingPrice:    data.StartingPrice,
		ShortDescription: data.ShortDescription,
		CreatedAt:        data.CreatedAt,
	}
}
