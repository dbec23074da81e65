package repository

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferingRepository defines the standard operations for offering persistence.
type OfferingRepository interface {
	// Create persists a new offering for its owning business.
	Create(ctx context.Context, offering *entity.Offering) error

	// ListByBusiness retrieves all offerings of one business, oldest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offering, error)
}
