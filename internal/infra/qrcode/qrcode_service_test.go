package qrcode

import (
	"encoding/json"
	"testing"

	"pickup/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrderNumber = "ORD-20260301-0A1B2C3D"

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)

			qrBytes, err := service.GeneratePickupQR(testOrderNumber)
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	withoutSection := New(&config.Config{})
	assert.Equal(t, defaultSize, withoutSection.(*qrcodeService).size)

	configured := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}})
	assert.Equal(t, 512, configured.(*qrcodeService).size)
}

func TestQRCodeService_GeneratePickupQR_RequiresOrderNumber(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePickupQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(QRCodeData{OrderNumber: testOrderNumber, Type: "pickup"})
	require.NoError(t, err)

	orderNumber, err := service.ParsePickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, testOrderNumber, orderNumber)
}

func TestQRCodeService_ParsePickupQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{name: "not json", data: "invalid json", message: "failed to unmarshal QR code data"},
		{name: "wrong type", data: `{"order_number":"ORD-1","type":"subscription"}`, message: "invalid QR code type"},
		{name: "missing number", data: `{"type":"pickup"}`, message: "missing order number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePickupQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
