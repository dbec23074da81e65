package impl

import (
	"context"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	mockRepo "vitrina/internal/mocks/repository"
	mockSvc "vitrina/internal/mocks/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShareServiceForTest(t *testing.T) (usecase.ShareUsecase, *mockRepo.MockBusinessRepository, *mockSvc.MockLinkService, *mockSvc.MockQRCodeService) {
	t.Helper()

	businessRepo := mockRepo.NewMockBusinessRepository(t)
	linkService := mockSvc.NewMockLinkService(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewShareService(ShareServiceParams{
		BusinessRepo:  businessRepo,
		LinkService:   linkService,
		QRCodeService: qrcodeService,
	})

	return service, businessRepo, linkService, qrcodeService
}

func TestShareService_GetShareLink(t *testing.T) {
	service, businessRepo, linkService, _ := newShareServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()

	businessRepo.EXPECT().
		FindByIDAndOwner(ctx, businessID, ownerID).
		Return(&entity.BusinessProfile{
			ID:           businessID,
			OwnerID:      ownerID,
			BusinessName: "Tacos El Sol",
			PublicSlug:   "tacos-el-sol-ab12",
		}, nil)

	linkService.EXPECT().
		BuildLink("Tacos El Sol", "tacos-el-sol-ab12").
		Return("https://wa.me/1555000111?text=hola%20Tacos%20El%20Sol%20%5Btacos-el-sol-ab12%5D")

	link, err := service.GetShareLink(ctx, ownerID, businessID)
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/1555000111?text=hola%20Tacos%20El%20Sol%20%5Btacos-el-sol-ab12%5D", link.URL)
	assert.Equal(t, "tacos-el-sol-ab12", link.Slug)
	assert.Equal(t, "Tacos El Sol", link.BusinessName)
}

func TestShareService_GetShareLink_NotFound(t *testing.T) {
	service, businessRepo, _, _ := newShareServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()

	businessRepo.EXPECT().
		FindByIDAndOwner(ctx, businessID, ownerID).
		Return(nil, repository.ErrBusinessNotFound)

	_, err := service.GetShareLink(ctx, ownerID, businessID)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestShareService_GetShareQR(t *testing.T) {
	service, businessRepo, linkService, qrcodeService := newShareServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()

	businessRepo.EXPECT().
		FindByIDAndOwner(ctx, businessID, ownerID).
		Return(&entity.BusinessProfile{
			ID:           businessID,
			OwnerID:      ownerID,
			BusinessName: "Tacos El Sol",
			PublicSlug:   "tacos-el-sol-ab12",
		}, nil)

	linkService.EXPECT().
		BuildLink("Tacos El Sol", "tacos-el-sol-ab12").
		Return("https://wa.me/1555000111?text=x")

	qrcodeService.EXPECT().
		GenerateShareQR("https://wa.me/1555000111?text=x").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	data, err := service.GetShareQR(ctx, ownerID, businessID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data)
}

func TestShareService_GetShareQR_PropagatesEncoderError(t *testing.T) {
	service, businessRepo, linkService, qrcodeService := newShareServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()

	businessRepo.EXPECT().
		FindByIDAndOwner(ctx, businessID, ownerID).
		Return(&entity.BusinessProfile{ID: businessID, OwnerID: ownerID, BusinessName: "X", PublicSlug: "x-ab12"}, nil)

	linkService.EXPECT().
		BuildLink("X", "x-ab12").
		Return("https://wa.me/1?text=x")

	qrcodeService.EXPECT().
		GenerateShareQR("https://wa.me/1?text=x").
		Return(nil, errors.New("content too long"))

	_, err := service.GetShareQR(ctx, ownerID, businessID)
	assert.ErrorContains(t, err, "failed to generate share QR")
}
