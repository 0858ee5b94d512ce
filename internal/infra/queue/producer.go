package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StatusChangedPayload is published whenever a lead actually changes status.
// Downstream consumers (notifications, CRM sync) bind their own queues.
type StatusChangedPayload struct {
	LeadID     int       `json:"lead_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedAt  time.Time `json:"changed_at"`
}

// LeadCapturedPayload is what the public website form publishes for the
// intake worker.
type LeadCapturedPayload struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	JobImportance      string `json:"jobImportance"`
	CustomerExperience string `json:"customerExperience"`
	ContactTime        string `json:"contactTime"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishStatusChange(ctx context.Context, payload StatusChangedPayload) error {
	if payload.ChangedAt.IsZero() {
		payload.ChangedAt = time.Now()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		StatusKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("publish status change: %w", err)
	}

	return nil
}
