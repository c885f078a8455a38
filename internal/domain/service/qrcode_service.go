package service

// QRCodeService generates and parses pickup QR codes.
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code that identifies an order at the counter.
	GeneratePickupQR(orderNumber string) ([]byte, error)

	// ParsePickupQR extracts the order number from scanned QR data.
	ParsePickupQR(qrData string) (string, error)
}
