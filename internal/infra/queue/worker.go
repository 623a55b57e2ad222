package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// Worker consumes dispatch outcomes and appends them to the contact history
// of the lead they were sent for.
type Worker struct {
	Channel  *amqp.Channel
	Leads    entity.LeadRepository
	Contacts entity.ContactRepository
}

func NewWorker(ch *amqp.Channel, leads entity.LeadRepository, contacts entity.ContactRepository) *Worker {
	return &Worker{
		Channel:  ch,
		Leads:    leads,
		Contacts: contacts,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DispatchOutcome
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Poison message. Reject without requeue so it goes to the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Recording %s outcome for lead %s (job %s)",
				payload.Channel, payload.LeadID, payload.JobID)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Failed to record outcome: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Contact-log worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload DispatchOutcome) error {
	if payload.LeadID == "" {
		return nil
	}

	if _, err := w.Leads.FindByID(ctx, payload.LeadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			// Lead was deleted between dispatch and consumption. The cascade
			// would have purged this record anyway, so drop the event.
			log.Printf("⚠️ [WORKER] Lead %s no longer exists, dropping outcome", payload.LeadID)
			return nil
		}
		return err
	}

	record := entity.NewContactRecord(
		payload.LeadID,
		contactTypeFor(payload.Channel),
		payload.Recipient,
		payload.Subject,
		payload.Content,
		payload.Status,
		payload.UserID,
	)

	return w.Contacts.Insert(ctx, record)
}

func contactTypeFor(channel string) string {
	switch channel {
	case entity.ChannelEmail:
		return entity.ContactTypeEmail
	case entity.ChannelPostal:
		return entity.ContactTypeMail
	default:
		return entity.ContactTypeOther
	}
}
