// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business does not exist or is not
// owned by the caller; the two cases are indistinguishable on purpose.
var ErrBusinessNotFound = errors.New("business not found")

// ErrDuplicateSlug is returned when an insert violates the store-level
// uniqueness constraint on public_slug.
var ErrDuplicateSlug = errors.New("public slug already taken")

// BusinessRepository defines the standard operations for business profile
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type BusinessRepository interface {
	// Create persists a new business profile.
	Create(ctx context.Context, business *entity.BusinessProfile) error

	// FindByIDAndOwner retrieves a profile by ID scoped to its owner.
	// Returns ErrBusinessNotFound on absence or owner mismatch.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// ListByOwner retrieves all profiles owned by the caller, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BusinessProfile, error)

	// SlugExists reports whether any profile already uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
}
