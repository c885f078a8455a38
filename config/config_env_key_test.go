package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redis": map[string]any{
			"keyPrefix": "pickup",
		},
		"order": map[string]any{
			"submitMaxRetries":   3,
			"defaultPhoneRegion": "TW",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "ORDER_SUBMITMAXRETRIES", want: "order.submitMaxRetries"},
		{envKey: "ORDER_DEFAULTPHONEREGION", want: "order.defaultPhoneRegion"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills empty order section", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		if assert.NotNil(t, cfg.Order) {
			assert.Equal(t, "ORD", cfg.Order.NumberPrefix)
			assert.Equal(t, 3, cfg.Order.SubmitMaxRetries)
			assert.Equal(t, 3, cfg.Order.LookupMaxRetries)
			assert.Equal(t, "TW", cfg.Order.DefaultPhoneRegion)
			assert.Equal(t, 100, cfg.Order.MerchantQueueLimit)
		}
	})

	t.Run("keeps configured values", func(t *testing.T) {
		cfg := &Config{Order: &OrderConfig{NumberPrefix: "PU", SubmitMaxRetries: 5, DefaultPhoneRegion: "JP"}}
		cfg.HTTP.MaxRequestBodySize = "1MB"
		applyDefaults(cfg)

		assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, "PU", cfg.Order.NumberPrefix)
		assert.Equal(t, 5, cfg.Order.SubmitMaxRetries)
		assert.Equal(t, "JP", cfg.Order.DefaultPhoneRegion)
	})
}
