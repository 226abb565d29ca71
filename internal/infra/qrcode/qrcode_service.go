package qrcode

import (
	"net/url"
	"strings"

	"loyalty/internal/domain/service"
	"loyalty/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultBaseURL = "https://loyalty.example.com/t/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// Tag URIs are baseURL followed by the escaped tag id.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// TagURI returns the URI encoded in the QR code of a tag
func (s *qrcodeService) TagURI(tagID string) string {
	return s.baseURL + url.PathEscape(tagID)
}

// GenerateTagQR generates a PNG QR code carrying the tag URI
func (s *qrcodeService) GenerateTagQR(tagID string) ([]byte, error) {
	if strings.TrimSpace(tagID) == "" {
		return nil, errors.New("tag id is required")
	}

	qrCode, err := qrcode.New(s.TagURI(tagID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
