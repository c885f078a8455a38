package usecase

import (
	"context"
	"time"

	"pickup/internal/domain/entity"
)

// NoticeWindow is how long a detected status change stays visible.
const NoticeWindow = 5 * time.Second

// OrderFetcher loads the current state of the watched order.
type OrderFetcher func(ctx context.Context) (*entity.Order, error)

// StatusChange is a status difference observed between two polls of the same viewer.
type StatusChange struct {
	OrderNumber    string             `json:"order_number"`
	PreviousStatus entity.OrderStatus `json:"previous_status"`
	CurrentStatus  entity.OrderStatus `json:"current_status"`
	Message        string             `json:"message"`
	DetectedAt     time.Time          `json:"detected_at"`
	ExpiresAt      time.Time          `json:"expires_at"`
}

// PollResult carries the freshly fetched order and the change detected by this poll, if any.
type PollResult struct {
	Order  *entity.Order `json:"order"`
	Change *StatusChange `json:"change,omitempty"`
}

// StatusNotifier detects status changes across repeated fetches by one viewer.
// The first fetch only records the status; later fetches report a change when it differs.
type StatusNotifier interface {
	Poll(ctx context.Context, viewerID, orderNumber string, fetch OrderFetcher) (*PollResult, error)
}
