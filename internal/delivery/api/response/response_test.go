package response

import (
	"context"
	"testing"

	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestPublicError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantOK   bool
	}{
		{
			name:     "phone mismatch is shown as not found",
			err:      domainerrors.ErrPhoneMismatch,
			wantCode: "ORDER_NOT_FOUND",
			wantOK:   true,
		},
		{
			name:     "wrapped lookup timeout is shown as not found",
			err:      errors.Wrap(domainerrors.ErrLookupTimeout, "lookup"),
			wantCode: "ORDER_NOT_FOUND",
			wantOK:   true,
		},
		{
			name:     "transient backend keeps its code",
			err:      errors.Mark(context.DeadlineExceeded, domainerrors.ErrTransientBackend),
			wantCode: "TRANSIENT_BACKEND",
			wantOK:   true,
		},
		{
			name:     "reused idempotency key keeps its code",
			err:      domainerrors.ErrIdempotencyKeyReused,
			wantCode: "IDEMPOTENCY_KEY_REUSED",
			wantOK:   true,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr, ok := PublicError(tt.err)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			}
		})
	}
}
