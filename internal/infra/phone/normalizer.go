// Package phone normalizes customer phone numbers with libphonenumber metadata.
package phone

import (
	"strings"

	"pickup/config"
	"pickup/internal/domain/service"
	"pickup/internal/errors"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidPhone is returned when input cannot be read as a valid phone number.
var ErrInvalidPhone = errors.New("invalid phone number")

type normalizer struct {
	defaultRegion string
}

// NewNormalizer creates a PhoneNormalizer that reads numbers without a country code
// as belonging to the configured default region.
func NewNormalizer(cfg *config.Config) service.PhoneNormalizer {
	region := "TW"
	if cfg.Order != nil && cfg.Order.DefaultPhoneRegion != "" {
		region = strings.ToUpper(cfg.Order.DefaultPhoneRegion)
	}

	return &normalizer{defaultRegion: region}
}

// Normalize returns the E.164 form of raw.
func (n *normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhone
	}

	number, err := phonenumbers.Parse(raw, n.defaultRegion)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidPhone, "parse %q: %v", raw, err)
	}

	if !phonenumbers.IsValidNumber(number) {
		return "", errors.Wrapf(ErrInvalidPhone, "%q", raw)
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
