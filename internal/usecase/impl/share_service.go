package impl

import (
	"context"

	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shareService struct {
	businessRepo  repository.BusinessRepository
	linkService   service.LinkService
	qrcodeService service.QRCodeService
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	BusinessRepo  repository.BusinessRepository
	LinkService   service.LinkService
	QRCodeService service.QRCodeService
}

// NewShareService creates a new share service instance
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	return &shareService{
		businessRepo:  params.BusinessRepo,
		linkService:   params.LinkService,
		qrcodeService: params.QRCodeService,
	}
}

// GetShareLink returns the wa.me deep link for an owned business.
func (s *shareService) GetShareLink(ctx context.Context, ownerID, businessID uuid.UUID) (*usecase.ShareLink, error) {
	business, err := s.businessRepo.FindByIDAndOwner(ctx, businessID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return &usecase.ShareLink{
		URL:          s.linkService.BuildLink(business.BusinessName, business.PublicSlug),
		Slug:         business.PublicSlug,
		BusinessName: business.BusinessName,
	}, nil
}

// GetShareQR renders the share link as a PNG QR code.
func (s *shareService) GetShareQR(ctx context.Context, ownerID, businessID uuid.UUID) ([]byte, error) {
	link, err := s.GetShareLink(ctx, ownerID, businessID)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateShareQR(link.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return qrCode, nil
}
