package service

// QRCodeService generates QR code images.
type QRCodeService interface {
	// GeneratePNG encodes the content as a QR code PNG of the given pixel size.
	GeneratePNG(content string, size int) ([]byte, error)
}
