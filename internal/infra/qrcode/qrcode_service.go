// Package qrcode renders and reads pickup QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"pickup/config"
	"pickup/internal/domain/service"
	"pickup/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	pickupType = "pickup"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// New builds the QR code service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePickupQR renders a PNG QR code that identifies the order at the counter.
func (s *qrcodeService) GeneratePickupQR(orderNumber string) ([]byte, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errors.New("order number is required")
	}

	jsonData, err := json.Marshal(QRCodeData{
		OrderNumber: orderNumber,
		Type:        pickupType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR data and returns the order number
func (s *qrcodeService) ParsePickupQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pickupType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if strings.TrimSpace(data.OrderNumber) == "" {
		return "", errors.New("missing order number")
	}

	return data.OrderNumber, nil
}
