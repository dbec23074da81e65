package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ShareLink is the WhatsApp entry point of a published profile.
type ShareLink struct {
	URL          string `json:"url"`
	Slug         string `json:"slug"`
	BusinessName string `json:"business_name"`
}

// ShareUsecase builds the shareable artifacts of an owned business.
type ShareUsecase interface {
	// GetShareLink returns the wa.me deep link for the business.
	GetShareLink(ctx context.Context, ownerID, businessID uuid.UUID) (*ShareLink, error)

	// GetShareQR renders the share link as a PNG QR code.
	GetShareQR(ctx context.Context, ownerID, businessID uuid.UUID) ([]byte, error)
}
