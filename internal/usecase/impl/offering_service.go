package impl

import (
	"context"
	"strings"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type offeringService struct {
	businessRepo repository.BusinessRepository
	offeringRepo repository.OfferingRepository
}

// OfferingServiceParams holds dependencies for OfferingService, injected by Fx.
type OfferingServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	OfferingRepo repository.OfferingRepository
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(params OfferingServiceParams) usecase.OfferingUsecase {
	return &offeringService{
		businessRepo: params.BusinessRepo,
		offeringRepo: params.OfferingRepo,
	}
}

// AddOffering appends one offering to an owned business. The ownership check
// runs first so a foreign business reads as not found before any write.
func (s *offeringService) AddOffering(ctx context.Context, ownerID, businessID uuid.UUID, input *usecase.OfferingInput) (*entity.Offering, error) {
	if _, err := s.businessRepo.FindByIDAndOwner(ctx, businessID, ownerID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if !entity.OfferingKind(input.Kind).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind: debe ser SERVICE o PRODUCT")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name: el nombre de la oferta es obligatorio")
	}

	offering := offeringFromInput(input)
	offering.BusinessID = businessID

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create offering")
	}

	return offering, nil
}

// ListOfferings retrieves the offerings of an owned business, oldest first.
func (s *offeringService) ListOfferings(ctx context.Context, ownerID, businessID uuid.UUID) ([]*entity.Offering, error) {
	if _, err := s.businessRepo.FindByIDAndOwner(ctx, businessID, ownerID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	offerings, err := s.offeringRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offerings")
	}

	return offerings, nil
}
