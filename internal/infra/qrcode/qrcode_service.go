// Package qrcode renders QR code images, used as the fallback payment QR when
// no image has been uploaded by an administrator.
package qrcode

import (
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"arbolitos/config"
	"arbolitos/internal/domain/service"
)

const defaultSize = 256

type qrcodeService struct {
	defaultSize          int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}

		switch cfg.QRCode.ErrorCorrectionLevel {
		case "low", "L":
			level = qrcode.Low
		case "medium", "M":
			level = qrcode.Medium
		case "high", "Q":
			level = qrcode.High
		case "highest", "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		defaultSize:          size,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG encodes the content as a QR code PNG image.
func (s *qrcodeService) GeneratePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = s.defaultSize
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
