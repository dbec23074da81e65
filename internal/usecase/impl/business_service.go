// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"strings"
	"time"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxSlugInsertAttempts bounds the regenerate-and-retry loop for the rare
// case where the uniqueness constraint rejects a slug that checked as free.
const maxSlugInsertAttempts = 3

type businessService struct {
	businessRepo repository.BusinessRepository
	offeringRepo repository.OfferingRepository
	txManager    repository.TransactionManager
	slugService  service.SlugService
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	OfferingRepo repository.OfferingRepository
	TxManager    repository.TransactionManager
	SlugService  service.SlugService
}

// NewBusinessService creates a new business service instance
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		offeringRepo: params.OfferingRepo,
		txManager:    params.TxManager,
		slugService:  params.SlugService,
	}
}

// CreateBusiness registers a new profile with its inline offerings in a
// single transaction. The slug is derived from the business name; if the
// insert still hits the uniqueness constraint the whole transaction is
// retried with a fresh slug.
func (s *businessService) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.BusinessProfile, error) {
	coverage, fieldErrs := resolveCoverage(input)
	if len(fieldErrs) > 0 {
		return nil, validationError(fieldErrs)
	}

	business := s.buildProfile(input, coverage)

	for attempt := 0; attempt < maxSlugInsertAttempts; attempt++ {
		slug, err := s.slugService.Generate(ctx, input.BusinessName, s.businessRepo.SlugExists)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate slug")
		}
		business.PublicSlug = slug

		err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			txBusinessRepo := repoFactory.NewBusinessRepository()
			if err := txBusinessRepo.Create(ctx, business); err != nil {
				return err
			}

			txOfferingRepo := repoFactory.NewOfferingRepository()
			for _, offering := range business.Offerings {
				offering.BusinessID = business.ID
				if err := txOfferingRepo.Create(ctx, offering); err != nil {
					return err
				}
			}

			return nil
		})
		if err == nil {
			return business, nil
		}
		if errors.Is(err, repository.ErrDuplicateSlug) {
			continue
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	return nil, domainerrors.ErrSlugConflict
}

// GetBusiness retrieves one owned profile with its offerings.
func (s *businessService) GetBusiness(ctx context.Context, ownerID, businessID uuid.UUID) (*entity.BusinessProfile, error) {
	business, err := s.businessRepo.FindByIDAndOwner(ctx, businessID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	offerings, err := s.offeringRepo.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offerings")
	}
	business.Offerings = offerings

	return business, nil
}

// ListBusinesses retrieves all profiles of the owner, newest first.
func (s *businessService) ListBusinesses(ctx context.Context, ownerID uuid.UUID) ([]*entity.BusinessProfile, error) {
	businesses, err := s.businessRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// buildProfile assembles the entity with creation defaults applied.
func (s *businessService) buildProfile(input *usecase.CreateBusinessInput, coverage entity.Coverage) *entity.BusinessProfile {
	now := time.Now()

	hours := strings.TrimSpace(input.Hours)
	if hours == "" {
		hours = entity.DefaultHours
	}

	brandTone := entity.BrandTone(input.BrandTone)
	if !brandTone.IsValid() {
		brandTone = entity.ToneFriendly
	}

	business := &entity.BusinessProfile{
		OwnerID:               input.OwnerID,
		BusinessName:          strings.TrimSpace(input.BusinessName),
		BusinessType:          entity.FormatBusinessType(input.Category, input.Subcategory, input.CustomCategoryText),
		Hours:                 hours,
		Status:                entity.StatusDraft,
		Plan:                  entity.PlanTrial,
		TrialEndsAt:           now.Add(entity.TrialDuration),
		MessageLimitPerMonth:  entity.DefaultMessageLimit,
		MessageCountThisMonth: 0,
		Tagline:               strings.TrimSpace(input.Tagline),
		About:                 strings.TrimSpace(input.About),
		BookingMethod:         entity.BookingMethod(input.BookingMethod),
		PrimaryLanguage:       entity.DefaultPrimaryLanguage,
		BrandTone:             brandTone,
	}
	coverage.Apply(business)

	offerings := make([]*entity.Offering, 0, len(input.Offerings))
	for _, in := range input.Offerings {
		offerings = append(offerings, offeringFromInput(&in))
	}
	business.Offerings = offerings

	return business
}

// resolveCoverage maps the form's category inputs to a coverage mode and
// validates the location fields against that mode's contract.
func resolveCoverage(input *usecase.CreateBusinessInput) (entity.Coverage, []entity.FieldError) {
	var fieldErrs []entity.FieldError

	if !entity.IsKnownCategory(input.Category) {
		fieldErrs = append(fieldErrs, entity.FieldError{
			Field:   "category",
			Message: "Selecciona una categoría del catálogo",
		})
	}

	mode, ok := entity.ResolveMode(input.Category, input.OtroSelection, input.BellezaMobile)
	if !ok {
		fieldErrs = append(fieldErrs, entity.FieldError{
			Field:   "business_type",
			Message: "Selecciona una categoría de negocio",
		})

		return entity.Coverage{}, fieldErrs
	}

	coverage := entity.NewCoverage(mode)
	coverage.BusinessAddress = input.BusinessAddress
	coverage.ServiceAreas = entity.SplitAreas(input.ServiceArea)
	coverage.DeliveryAreas = entity.SplitAreas(input.DeliveryArea)
	coverage.HasOffice = input.HasOffice == entity.ToggleYes
	coverage.OffersDelivery = input.OffersDelivery == entity.ToggleYes

	fieldErrs = append(fieldErrs, coverage.Validate()...)

	return coverage.Normalize(), fieldErrs
}

// offeringFromInput maps one submitted offering to its entity.
func offeringFromInput(input *usecase.OfferingInput) *entity.Offering {
	return &entity.Offering{
		Kind:             entity.OfferingKind(input.Kind),
		Name:             strings.TrimSpace(input.Name),
		Category:         strings.TrimSpace(input.Category),
		StartingPrice:    strings.TrimSpace(input.StartingPrice),
		ShortDescription: strings.TrimSpace(input.ShortDescription),
	}
}

// validationError folds field errors into the shared validation error so the
// HTTP layer renders them in the details slot of the response envelope.
func validationError(fieldErrs []entity.FieldError) error {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Error())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}
