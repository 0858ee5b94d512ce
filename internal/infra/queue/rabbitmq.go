package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.leads"
	IntakeQueue  = "q.lead.intake"
	IntakeDLQ    = "q.lead.intake.dlq"
	DLXName      = "ex.dlx" // Dead Letter Exchange
	IntakeKey    = "k.intake"
	StatusKey    = "k.status"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(IntakeDLQ, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(IntakeDLQ, IntakeKey, DLXName, false, nil)
	if err != nil {
		return err
	}

	// Nacked intake messages land in the DLQ instead of looping forever.
	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": IntakeKey,
	}

	err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(IntakeQueue, true, false, false, false, args)
	if err != nil {
		return err
	}

	return ch.QueueBind(IntakeQueue, IntakeKey, ExchangeName, false, nil)
}

func (r *RabbitMQ) Close() {
	if r.Ch != nil {
		r.Ch.Close()
	}
	if r.Conn != nil {
		r.Conn.Close()
	}
}
