package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolodex/internal/domain/service"
)

func TestLocalHTTPPublisher_PublishContactEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.Default())

	event := &service.ContactEvent{
		RequestID:  "req-123",
		EventType:  service.ContactEventCreated,
		ContactID:  uuid.New(),
		OwnerID:    uuid.New(),
		OccurredAt: time.Now().UTC(),
	}

	err := publisher.PublishContactEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, service.ContactEventCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, event.ContactID.String(), received.Message.Attributes["contact_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ContactEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ContactID, decoded.ContactID)
	assert.Equal(t, event.EventType, decoded.EventType)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.Default())

	err := publisher.PublishContactEvent(context.Background(), &service.ContactEvent{
		EventType: service.ContactEventDeleted,
		ContactID: uuid.New(),
		OwnerID:   uuid.New(),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
