package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	domainNotification "freight-tms/internal/domain/notification"
	"strings"
	"time"

	"github.com/google/uuid"
)

const qosAtLeastOnce byte = 1

// Publisher is the slice of pkg/mqtt.Client the broadcaster needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error
}

type notificationMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TaskID    uuid.UUID `json:"task_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster publishes each notification to <topic>/<recipient profile id>.
type Broadcaster struct {
	publisher Publisher
	topic     string
}

func NewBroadcaster(publisher Publisher, topic string) *Broadcaster {
	return &Broadcaster{publisher: publisher, topic: strings.TrimRight(topic, "/")}
}

func (b *Broadcaster) Broadcast(ctx context.Context, n *domainNotification.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		ID:        n.ID,
		UserID:    n.UserID,
		TaskID:    n.TaskID,
		Type:      string(n.Type),
		Message:   n.Message,
		IsRead:    n.IsRead,
		Timestamp: n.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	return b.publisher.Publish(ctx, b.Topic(n.UserID), qosAtLeastOnce, false, payload)
}

func (b *Broadcaster) Topic(recipient uuid.UUID) string {
	return b.topic + "/" + recipient.String()
}

// NoopBroadcaster stands in when no broker is configured.
type NoopBroadcaster struct{}

func (NoopBroadcaster) Broadcast(context.Context, *domainNotification.Notification) error {
	return nil
}
