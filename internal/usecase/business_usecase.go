// Package usecase defines the application's use case interfaces and their
// data transfer objects. Interfaces are consumed by the delivery layer and
// implemented under impl.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferingInput is one service or product entry submitted by the owner.
type OfferingInput struct {
	Kind             string `json:"kind" validate:"required,oneof=SERVICE PRODUCT"`
	Name             string `json:"name" validate:"required,max=200"`
	Category         string `json:"category" validate:"max=100"`
	StartingPrice    string `json:"starting_price" validate:"max=50"`
	ShortDescription string `json:"short_description" validate:"max=500"`
}

// CreateBusinessInput carries the full registration form. Category,
// OtroSelection and BellezaMobile feed mode resolution; the location fields
// are interpreted according to the resolved mode and everything the mode
// does not collect is discarded.
type CreateBusinessInput struct {
	OwnerID uuid.UUID `json:"-"`

	BusinessName string `json:"business_name" validate:"required,max=200"`

	Category           string `json:"category" validate:"required"`
	Subcategory        string `json:"subcategory" validate:"max=100"`
	CustomCategoryText string `json:"custom_category_text" validate:"max=100"`
	// OtroSelection is the manual mode choice shown for "Otro":
	// fixed, mobile or digital.
	OtroSelection string `json:"otro_selection" validate:"omitempty,oneof=fixed mobile digital"`
	// BellezaMobile is "yes" when a Belleza business works at the
	// customer's location.
	BellezaMobile string `json:"belleza_mobile" validate:"omitempty,oneof=yes no"`

	Hours string `json:"hours" validate:"max=500"`

	BusinessAddress string `json:"business_address" validate:"max=300"`
	ServiceArea     string `json:"service_area" validate:"max=500"`
	DeliveryArea    string `json:"delivery_area" validate:"max=500"`
	HasOffice       string `json:"has_office" validate:"omitempty,oneof=yes no"`
	OffersDelivery  string `json:"offers_delivery" validate:"omitempty,oneof=yes no"`

	Tagline       string `json:"tagline" validate:"max=200"`
	About         string `json:"about" validate:"max=2000"`
	BookingMethod string `json:"booking_method" validate:"omitempty,oneof=WALK_IN APPOINTMENT ONLINE PHONE MESSAGE"`
	BrandTone     string `json:"brand_tone" validate:"omitempty,oneof=FRIENDLY PROFESSIONAL CASUAL FORMAL"`

	Offerings []OfferingInput `json:"offerings" validate:"max=50,dive"`
}

// BusinessUsecase defines the interface for business profile use cases.
type BusinessUsecase interface {
	// CreateBusiness registers a new profile with its inline offerings in a
	// single transaction and returns the stored aggregate.
	CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.BusinessProfile, error)

	// GetBusiness retrieves one owned profile with its offerings.
	GetBusiness(ctx context.Context, ownerID, businessID uuid.UUID) (*entity.BusinessProfile, error)

	// ListBusinesses retrieves all profiles of the owner, newest first.
	ListBusinesses(ctx context.Context, ownerID uuid.UUID) ([]*entity.BusinessProfile, error)
}
