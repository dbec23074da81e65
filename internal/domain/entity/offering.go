package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferingKind distinguishes services from products.
type OfferingKind string

const (
	KindService OfferingKind = "SERVICE"
	KindProduct OfferingKind = "PRODUCT"
)

// String returns the string representation of the OfferingKind.
func (k OfferingKind) String() string {
	return string(k)
}

// IsValid checks if the OfferingKind is a valid value.
func (k OfferingKind) IsValid() bool {
	switch k {
	case KindService, KindProduct:
		return true
	default:
		return false
	}
}

// Offering is a service or product entry owned by exactly one
// BusinessProfile. Offerings are created either inline at business-creation
// time or individually afterward; they are never edited in place.
type Offering struct {
	ID               uuid.UUID    `json:"id"`
	BusinessID       uuid.UUID    `json:"business_id"`
	Kind             OfferingKind `json:"kind"`
	Name             string       `json:"name"`
	Category         string       `json:"category,omitempty"`
	StartingPrice    string       `json:"starting_price,omitempty"`
	ShortDescription string       `json:"short_description,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}
