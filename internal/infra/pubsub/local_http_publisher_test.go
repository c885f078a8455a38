package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pickup/config"
	"pickup/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:           service.OrderEventStatusChanged,
		RequestID:      "req-1",
		OrderID:        "0190f3f2-7a1c-7000-8000-000000000001",
		OrderNumber:    "ORD-20260301-0A1B2C3D",
		StoreSlug:      "noodle-bar",
		PreviousStatus: "pending",
		Status:         "accepted",
		OccurredAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newOrderEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.OrderID, received.Message.OrderingKey)
	assert.Equal(t, "accepted", received.Message.Attributes["status"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishOrderEvent(context.Background(), newOrderEvent())
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: newDiscardLogger(),
		}
	}

	t.Run("unconfigured is a no-op", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishOrderEvent(context.Background(), newOrderEvent()))
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9/push"}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: ProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "pickup"}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})
}
