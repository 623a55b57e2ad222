package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DispatchOutcome is the event published after a delivery attempt reaches a
// terminal status. The contact-log worker consumes it and appends the
// matching record to the lead's contact history.
type DispatchOutcome struct {
	JobID     string `json:"job_id"`
	Channel   string `json:"channel"` // email | postal
	LeadID    string `json:"lead_id"`
	UserID    string `json:"user_id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Status    string `json:"status"` // sent | failed
	Error     string `json:"error,omitempty"`
}

type OutcomePublisherInterface interface {
	PublishOutcome(ctx context.Context, payload DispatchOutcome) error
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

func (p *RabbitMQProducer) PublishOutcome(ctx context.Context, payload DispatchOutcome) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
