package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferingUsecase defines the interface for offering use cases. Every
// operation is scoped to the owner; acting on someone else's business reads
// as not found.
type OfferingUsecase interface {
	// AddOffering appends one offering to an owned business.
	AddOffering(ctx context.Context, ownerID, businessID uuid.UUID, input *OfferingInput) (*entity.Offering, error)

	// ListOfferings retrieves the offerings of an owned business, oldest first.
	ListOfferings(ctx context.Context, ownerID, businessID uuid.UUID) ([]*entity.Offering, error)
}
