package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"
)

const changeQueue = "fittrack.changes"

// ChangeEvent is a data-change notification published after writes so the
// managed realtime backend can fan it out to connected clients. The service
// only produces these; delivery to devices stays external.
type ChangeEvent struct {
	Collection string      `json:"collection"`
	Action     string      `json:"action"`
	UserID     uint        `json:"user_id"`
	RecordID   uint        `json:"record_id,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher pushes change events to RabbitMQ. A nil *Publisher is valid and
// drops every event, so the service runs fine without a broker.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(amqpURL string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	_, err = channel.QueueDeclare(
		changeQueue, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %v", err)
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// Publish sends a change event. Failures are logged, not returned: a write
// that already committed should never be reported as failed because the
// notification side-channel hiccupped.
func (p *Publisher) Publish(collection, action string, userID, recordID uint, payload interface{}) {
	if p == nil {
		return
	}

	event := ChangeEvent{
		Collection: collection,
		Action:     action,
		UserID:     userID,
		RecordID:   recordID,
		Payload:    payload,
		OccurredAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal change event: %v", err)
		return
	}

	err = p.channel.Publish(
		"",          // exchange
		changeQueue, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		log.Printf("Failed to publish change event for %s.%s: %v", collection, action, err)
	}
}
