package service

// QRCodeService renders QR codes for authenticator enrollment.
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG QR image.
	GeneratePNG(content string) ([]byte, error)

	// GenerateDataURI encodes content as a data:image/png;base64 URI.
	GenerateDataURI(content string) (string, error)
}
