package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bytewerk/leadboard/internal/entity"
)

// LeadIntake is implemented by the lead service; the worker stays decoupled
// from the database.
type LeadIntake interface {
	CreateFromIntake(ctx context.Context, payload LeadCapturedPayload) (*entity.Lead, error)
}

type Worker struct {
	Channel *amqp.Channel
	Intake  LeadIntake
}

func NewWorker(ch *amqp.Channel, intake LeadIntake) *Worker {
	return &Worker{
		Channel: ch,
		Intake:  intake,
	}
}

// Start consumes lead-captured messages until the channel closes. Messages
// that cannot be parsed or inserted are nacked without requeue and end up in
// the DLQ.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		slog.Error("intake consume failed", "queue", queueName, "error", err)
		return
	}

	slog.Info("intake worker started", "queue", queueName)

	for delivery := range msgs {
		w.handle(delivery)
	}
}

func (w *Worker) handle(delivery amqp.Delivery) {
	var payload LeadCapturedPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		slog.Error("intake message unreadable", "error", err)
		delivery.Nack(false, false)
		return
	}

	lead, err := w.Intake.CreateFromIntake(context.Background(), payload)
	if err != nil {
		slog.Error("intake lead rejected", "email", payload.Email, "error", err)
		delivery.Nack(false, false)
		return
	}

	slog.Info("lead captured", "lead_id", lead.ID)
	delivery.Ack(false)
}
