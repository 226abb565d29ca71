package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTagQR generates a printable QR code carrying the tag URI,
	// a fallback for phones without NFC.
	GenerateTagQR(tagID string) ([]byte, error)

	// TagURI returns the URI encoded in the QR code of a tag.
	TagURI(tagID string) string
}
