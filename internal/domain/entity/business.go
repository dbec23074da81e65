// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessStatus represents the publication state of a business profile.
type BusinessStatus string

const (
	// StatusDraft is the state every profile is created in.
	StatusDraft BusinessStatus = "DRAFT"
	// StatusPublished marks a profile visible through its public slug.
	StatusPublished BusinessStatus = "PUBLISHED"
)

// Plan represents the billing plan of a business profile.
type Plan string

const (
	// PlanTrial is assigned at creation; billing logic upgrades it later.
	PlanTrial Plan = "TRIAL"
)

// BookingMethod represents how customers book with the business.
type BookingMethod string

const (
	BookingWalkIn      BookingMethod = "WALK_IN"
	BookingAppointment BookingMethod = "APPOINTMENT"
	BookingOnline      BookingMethod = "ONLINE"
	BookingPhone       BookingMethod = "PHONE"
	BookingMessage     BookingMethod = "MESSAGE"
)

// IsValid checks if the BookingMethod is a valid value.
func (b BookingMethod) IsValid() bool {
	switch b {
	case BookingWalkIn, BookingAppointment, BookingOnline, BookingPhone, BookingMessage:
		return true
	default:
		return false
	}
}

// BrandTone represents the messaging tone configured for the business.
type BrandTone string

const (
	ToneFriendly     BrandTone = "FRIENDLY"
	ToneProfessional BrandTone = "PROFESSIONAL"
	ToneCasual       BrandTone = "CASUAL"
	ToneFormal       BrandTone = "FORMAL"
)

// IsValid checks if the BrandTone is a valid value.
func (b BrandTone) IsValid() bool {
	switch b {
	case ToneFriendly, ToneProfessional, ToneCasual, ToneFormal:
		return true
	default:
		return false
	}
}

// Creation defaults applied by the business record service.
const (
	// DefaultHours replaces an empty opening-hours field.
	DefaultHours = "Varía, confirmar por mensaje"
	// TrialDuration is how long a new profile stays on the TRIAL plan.
	TrialDuration = 30 * 24 * time.Hour
	// DefaultMessageLimit is the monthly message quota of the TRIAL plan.
	DefaultMessageLimit = 500
	// DefaultPrimaryLanguage is the language new profiles answer in.
	DefaultPrimaryLanguage = "es"
)

// BusinessProfile is the central aggregate of the system: one registered
// business owned by one authenticated principal. PublicSlug is globally
// unique and immutable after assignment; OwnerID never changes.
type BusinessProfile struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	BusinessName string    `json:"business_name"`
	// BusinessType encodes "<Category>: <Subcategory>" or "Otro: <text>".
	BusinessType string `json:"business_type"`
	Hours        string `json:"hours"`
	PublicSlug   string `json:"public_slug"`

	Status BusinessStatus `json:"status"`

	// Billing and usage fields; set to defaults at creation and mutated only
	// by billing logic outside this service.
	Plan                  Plan      `json:"plan"`
	TrialEndsAt           time.Time `json:"trial_ends_at"`
	MessageLimitPerMonth  int       `json:"message_limit_per_month"`
	MessageCountThisMonth int       `json:"message_count_this_month"`

	// Location fields. Exactly one coverage field-set is populated per the
	// resolved mode; see Coverage.
	BusinessAddress string `json:"business_address,omitempty"`
	ServiceArea     string `json:"service_area,omitempty"`
	DeliveryArea    string `json:"delivery_area,omitempty"`

	Tagline         string        `json:"tagline,omitempty"`
	About           string        `json:"about,omitempty"`
	BookingMethod   BookingMethod `json:"booking_method,omitempty"`
	PrimaryLanguage string        `json:"primary_language"`
	BrandTone       BrandTone     `json:"brand_tone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Offerings owned by this profile. Populated on detail lookups.
	Offerings []*Offering `json:"offerings,omitempty"`
}
