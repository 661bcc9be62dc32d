package service

// QRCodeService renders share links as QR code images.
type QRCodeService interface {
	// GenerateShareQR encodes link as a PNG.
	GenerateShareQR(link string) ([]byte, error)
}
