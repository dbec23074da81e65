package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateShareQR renders the share link as a PNG QR code so any phone
	// camera opens the WhatsApp chat directly.
	GenerateShareQR(link string) ([]byte, error)
}
