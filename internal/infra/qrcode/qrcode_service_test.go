package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareQR_ReturnsPNG(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	data, err := svc.GenerateShareQR("https://wa.me/5713761694?text=hola%20Tacos%20%5Btacos-ab12%5D")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestGenerateShareQR_UnknownLevelFallsBackToMedium(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(128, "X")

	data, err := svc.GenerateShareQR("https://wa.me/5713761694")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateShareQR_EmptyLinkFails(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "H")

	_, err := svc.GenerateShareQR("")
	assert.Error(t, err)
}
