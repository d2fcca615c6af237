package qrcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	// DataURIPrefix precedes the base64 PNG payload returned to clients.
	DataURIPrefix = "data:image/png;base64,"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from blackout.qrcode
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return NewQRCodeServiceWith(cfg.Blackout.QRCode.Size, cfg.Blackout.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeServiceWith creates a QR code service with explicit settings
func NewQRCodeServiceWith(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG encodes content as a square PNG image
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// GenerateDataURI encodes content as an inline PNG data URI
func (s *qrcodeService) GenerateDataURI(content string) (string, error) {
	pngBytes, err := s.GeneratePNG(content)
	if err != nil {
		return "", err
	}

	return DataURIPrefix + base64.StdEncoding.EncodeToString(pngBytes), nil
}
