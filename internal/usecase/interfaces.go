package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// Transport is the single outbound capability the dispatch flow depends on.
// Implementations wrap SMTP for the email channel and the letter-printing
// provider for the postal channel.
type Transport interface {
	Send(ctx context.Context, channel, recipient, subject, content string) error
}

// OutcomePublisher hands a finished delivery attempt to the queue so the
// contact-log worker can record it against the lead.
type OutcomePublisher interface {
	PublishOutcome(ctx context.Context, payload queue.DispatchOutcome) error
}
