package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	domainNotification "freight-tms/internal/domain/notification"

	"github.com/google/uuid"
)

type recordingPublisher struct {
	topic   string
	qos     byte
	payload []byte
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, qos byte, _ bool, payload []byte) error {
	p.topic, p.qos, p.payload = topic, qos, payload
	return p.err
}

func TestBroadcast_PublishesToRecipientTopic(t *testing.T) {
	pub := &recordingPublisher{}
	b := NewBroadcaster(pub, "tms/notifications/")

	n := &domainNotification.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TaskID:    uuid.New(),
		Type:      domainNotification.TypeAssigned,
		Message:   "New task assigned: Call shipper",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := b.Broadcast(context.Background(), n); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	if want := "tms/notifications/" + n.UserID.String(); pub.topic != want {
		t.Fatalf("expected topic %q, got %q", want, pub.topic)
	}
	if pub.qos != qosAtLeastOnce {
		t.Fatalf("expected qos 1, got %d", pub.qos)
	}

	var msg notificationMessage
	if err := json.Unmarshal(pub.payload, &msg); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if msg.TaskID != n.TaskID || msg.Type != "assigned" || msg.Message != n.Message {
		t.Fatalf("unexpected payload %+v", msg)
	}
}

func TestBroadcast_ReturnsPublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	b := NewBroadcaster(pub, "tms/notifications")

	if err := b.Broadcast(context.Background(), &domainNotification.Notification{UserID: uuid.New()}); err == nil {
		t.Fatal("expected publish error")
	}
}
