package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessOfferingModel is the GORM-specific struct for the 'business_offerings' table.
// Rows are removed by the database cascade when their business is deleted.
type BusinessOfferingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind             string    `gorm:"type:varchar(10);not null"`
	Name             string    `gorm:"type:varchar(200);not null"`
	Category         string    `gorm:"type:varchar(100)"`
	StartingPrice    string    `gorm:"type:varchar(50)"`
	ShortDescription string    `gorm:"type:text"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessOfferingModel) TableName() string {
	return "business_offerings"
}
