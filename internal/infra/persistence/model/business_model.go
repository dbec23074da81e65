// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel is the GORM-specific struct for the 'business_profiles' table.
type BusinessProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName string    `gorm:"type:varchar(200);not null"`
	BusinessType string    `gorm:"type:varchar(200);not null"`
	Hours        string    `gorm:"type:text;not null"`
	PublicSlug   string    `gorm:"type:varchar(120);not null;uniqueIndex"`

	Status string `gorm:"type:varchar(20);not null;default:'DRAFT'"`

	Plan                  string    `gorm:"type:varchar(20);not null;default:'TRIAL'"`
	TrialEndsAt           time.Time `gorm:"not null"`
	MessageLimitPerMonth  int       `gorm:"not null;default:500"`
	MessageCountThisMonth int       `gorm:"not null;default:0"`

	BusinessAddress string `gorm:"type:text"`
	ServiceArea     string `gorm:"type:text"`
	DeliveryArea    string `gorm:"type:text"`

	Tagline         string `gorm:"type:varchar(200)"`
	About           string `gorm:"type:text"`
	BookingMethod   string `gorm:"type:varchar(20)"`
	PrimaryLanguage string `gorm:"type:varchar(10);not null;default:'es'"`
	BrandTone       string `gorm:"type:varchar(20);not null;default:'FRIENDLY'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
